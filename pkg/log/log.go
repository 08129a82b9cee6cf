// Copyright 2025 Mikaza Sukaza LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/mikaza-sukaza/i18ntool/pkg/subst"
)

// 🎨 Display configuration
const (
	ruleIndent = 4  // spaces to indent rule entries
	nameWidth  = 40 // Base width for rule identity
	countWidth = 12 // Width for the replacement count column
)

// 🎯 Logger renders engine reports on the console and mirrors them to
// structured logs. The engine returns data, not text; all formatting
// lives here.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRuleEntry formats one rule's outcome for display
func (l *Logger) formatRuleEntry(rr subst.RuleReport) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	var countText string
	switch {
	case rr.Count > 0:
		symbol = '✓'
		symbolColor = color.FgGreen
		countText = fmt.Sprintf("%d replaced", rr.Count)
	default:
		symbol = '•'
		symbolColor = color.FgYellow
		countText = "no matches"
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, truncate(rr.Rule, nameWidth)),
		fmt.Sprintf("%-*s", countWidth, countText))
}

// truncate shortens a rule identity to fit its display column.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// 📝 LogReport prints the file header, every rule's outcome, and a
// summary line as one block. The lock is held for the whole block so
// reports from concurrently processed files never interleave.
// Zero-match rules stay visible so operators can tell a rule that
// is a no-op on already-migrated text from one that needs revision.
func (l *Logger) LogReport(ctx context.Context, path string, report subst.Report) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(path))

	for _, rr := range report.Rules {
		fmt.Fprintln(l.console, l.formatRuleEntry(rr))

		l.zlog.Info().
			Str("file", path).
			Str("rule", rr.Rule).
			Int("replacements", rr.Count).
			Msg("rule applied")
	}

	zero := len(report.ZeroMatchRules())
	summary := fmt.Sprintf("%d rules fired, %d replacements, %d no-ops",
		report.Fired(), report.TotalReplacements(), zero)
	fmt.Fprintf(l.console, "%s%s %s\n",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(color.Faint).Sprint("→"),
		summary)

	l.zlog.Info().
		Str("file", path).
		Int("rules", len(report.Rules)).
		Int("fired", report.Fired()).
		Int("replacements", report.TotalReplacements()).
		Int("zero_match", zero).
		Msg("catalog applied")
}

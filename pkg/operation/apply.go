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

// Package operation orchestrates one catalog run: it hands source texts
// from storage to the engine and writes the transformed texts back.
package operation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mikaza-sukaza/i18ntool/pkg/config"
	"github.com/mikaza-sukaza/i18ntool/pkg/log"
	"github.com/mikaza-sukaza/i18ntool/pkg/storage"
	"github.com/mikaza-sukaza/i18ntool/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the apply operation
type Options struct {
	// Config is the migration catalog
	Config *config.Config
	// Store reads and writes source files
	Store *storage.Manager
	// Logger renders per-rule reports
	Logger *log.Logger
	// User gives file-level feedback
	User *log.UserLogger
	// DryRun reports what would change without writing anything
	DryRun bool
}

// 🏭 NewApplyOperation creates a new apply operation
func NewApplyOperation(opts Options) (*ApplyOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Store == nil {
		return nil, errors.Errorf("store is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.User == nil {
		return nil, errors.Errorf("user logger is required")
	}
	return &ApplyOperation{opts: opts}, nil
}

// 🎮 ApplyOperation runs a catalog against its source files
type ApplyOperation struct {
	opts Options
}

// 🏃 Execute compiles the catalog once and runs it against every source
// file. A rule that does not compile aborts the whole run before any
// file is touched; a file that fails aborts the run with no attempt to
// finish the rest (all-or-nothing). Files run concurrently: compiled
// rule sets are read-only and each file owns its own text.
func (op *ApplyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("rules", len(op.opts.Config.Rules)).Int("sources", len(op.opts.Config.Sources)).Msg("starting apply")

	rules, err := subst.Compile(op.opts.Config.EngineRules())
	if err != nil {
		return errors.Errorf("compiling catalog: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, src := range op.opts.Config.Sources {
		src := src
		g.Go(func() error {
			if err := op.processFile(ctx, rules, src); err != nil {
				op.opts.User.LogFileChange(log.FileChange{
					Type:  log.FileError,
					Path:  src,
					Error: err,
				})
				return errors.Errorf("processing file %s: %w", src, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// 📄 processFile runs the catalog against a single source file
func (op *ApplyOperation) processFile(ctx context.Context, rules *subst.RuleSet, path string) error {
	content, err := op.opts.Store.ReadFile(ctx, path)
	if err != nil {
		return errors.Errorf("reading source: %w", err)
	}

	// Keep only the rules whose files glob matches this source
	view := rules.Select(func(r subst.Rule) bool {
		return ruleAppliesTo(r, path)
	})

	out, report := view.Apply(string(content))
	op.opts.Logger.LogReport(ctx, path, report)

	if !report.Changed() {
		op.opts.User.LogFileChange(log.FileChange{
			Type:        log.FileUnchanged,
			Path:        path,
			Description: "no rules matched",
		})
		return nil
	}

	desc := fmt.Sprintf("%d replacements", report.TotalReplacements())
	if op.opts.DryRun {
		op.opts.User.LogFileChange(log.FileChange{
			Type:        log.FileSkipped,
			Path:        path,
			Description: desc + ", dry run",
		})
		return nil
	}

	if err := op.opts.Store.WriteFile(ctx, path, []byte(out)); err != nil {
		return errors.Errorf("writing transformed source: %w", err)
	}

	op.opts.User.LogFileChange(log.FileChange{
		Type:        log.FileUpdated,
		Path:        path,
		Description: desc,
	})
	return nil
}

// 🔍 ruleAppliesTo checks a rule's files glob against a source path
func ruleAppliesTo(r subst.Rule, path string) bool {
	if r.Files == "" {
		return true
	}
	// Globs are validated at catalog load time, so Match cannot fail here.
	matched, _ := doublestar.Match(r.Files, filepath.ToSlash(path))
	return matched
}

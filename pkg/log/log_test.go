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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikaza-sukaza/i18ntool/pkg/subst"
)

func TestLogger_LogReport(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)
	ctx := context.Background()

	logger.LogReport(ctx, "src/PropertyForm.tsx", subst.Report{
		Rules: []subst.RuleReport{
			{Rule: "propertyForm.capacity", Count: 1, First: &subst.Span{Start: 0, End: 31}},
			{Rule: "propertyForm.addUnit", Count: 2, First: &subst.Span{Start: 40, End: 60}},
			{Rule: "propertyForm.remove", Count: 0},
		},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// One LogReport call emits the whole block: header first, then one
	// line per rule, then the summary.
	require.Len(t, lines, 5)
	assert.Equal(t, "◆ src/PropertyForm.tsx", lines[0])
	assert.Contains(t, out, "✓ propertyForm.capacity")
	assert.Contains(t, out, "1 replaced")
	assert.Contains(t, out, "2 replaced")
	assert.Contains(t, out, "• propertyForm.remove")
	assert.Contains(t, out, "no matches")
	assert.Contains(t, out, "2 rules fired, 3 replacements, 1 no-ops")
}

func TestLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	require.Panics(t, func() {
		FromContext(context.Background())
	})
}

func TestUserLogger_LogFileChange_UnknownType(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	u := NewUserLogger(ctx)

	require.NotPanics(t, func() {
		u.LogFileChange(FileChange{Type: FileChangeType(99), Path: "a.tsx"})
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a-very-...", truncate("a-very-long-rule-identity", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

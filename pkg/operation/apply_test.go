package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikaza-sukaza/i18ntool/pkg/config"
	"github.com/mikaza-sukaza/i18ntool/pkg/log"
	"github.com/mikaza-sukaza/i18ntool/pkg/storage"
)

type fixture struct {
	dir     string
	console *bytes.Buffer
	opts    Options
}

func newFixture(t *testing.T, cfg *config.Config, dryRun bool) *fixture {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	logger := zerolog.Nop()
	console := &bytes.Buffer{}

	ctx := zerolog.Nop().WithContext(context.Background())
	return &fixture{
		dir:     dir,
		console: console,
		opts: Options{
			Config: cfg,
			Store:  storage.New(dir, &logger),
			Logger: log.New(console, zerolog.Disabled),
			User:   log.NewUserLogger(ctx),
			DryRun: dryRun,
		},
	}
}

func (f *fixture) writeSource(t *testing.T, path, content string) {
	t.Helper()
	abs := filepath.Join(f.dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}

func (f *fixture) readSource(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(f.dir, path))
	require.NoError(t, err)
	return string(content)
}

func TestApplyOperation_Execute(t *testing.T) {
	cfg := &config.Config{
		Sources: []string{"src/PropertyForm.tsx", "src/UnitForm.tsx"},
		Rules: []config.Rule{
			{
				Name:    "propertyForm.capacity",
				Match:   config.MatchLiteral,
				Pattern: "<FormLabel>Capacity</FormLabel>",
				Replace: "<FormLabel>{t('propertyForm.capacity')}</FormLabel>",
			},
			{
				Name:    "propertyForm.addUnit",
				Match:   config.MatchRegex,
				Pattern: `Add Unit\s*</Button>`,
				Replace: "{t('propertyForm.addUnit')}</Button>",
			},
		},
	}

	f := newFixture(t, cfg, false)
	f.writeSource(t, "src/PropertyForm.tsx", "<FormLabel>Capacity</FormLabel>\n<Button>Add Unit\n</Button>")
	f.writeSource(t, "src/UnitForm.tsx", "nothing to do here")

	op, err := NewApplyOperation(f.opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	got := f.readSource(t, "src/PropertyForm.tsx")
	assert.Equal(t, "<FormLabel>{t('propertyForm.capacity')}</FormLabel>\n<Button>{t('propertyForm.addUnit')}</Button>", got)
	assert.Equal(t, "nothing to do here", f.readSource(t, "src/UnitForm.tsx"))

	out := f.console.String()
	assert.Contains(t, out, "propertyForm.capacity")
	assert.Contains(t, out, "no matches")
}

func TestApplyOperation_Execute_DryRun(t *testing.T) {
	cfg := &config.Config{
		Sources: []string{"a.tsx"},
		Rules: []config.Rule{
			{Match: config.MatchLiteral, Pattern: "old", Replace: "new"},
		},
	}

	f := newFixture(t, cfg, true)
	f.writeSource(t, "a.tsx", "old text")

	op, err := NewApplyOperation(f.opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, "old text", f.readSource(t, "a.tsx"))
}

func TestApplyOperation_Execute_FilesGlob(t *testing.T) {
	cfg := &config.Config{
		Sources: []string{"src/a.tsx", "src/b.css"},
		Rules: []config.Rule{
			{Name: "tsx-only", Match: config.MatchLiteral, Pattern: "old", Replace: "new", Files: "**/*.tsx"},
		},
	}

	f := newFixture(t, cfg, false)
	f.writeSource(t, "src/a.tsx", "old")
	f.writeSource(t, "src/b.css", "old")

	op, err := NewApplyOperation(f.opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, "new", f.readSource(t, "src/a.tsx"))
	assert.Equal(t, "old", f.readSource(t, "src/b.css"))
}

func TestApplyOperation_Execute_CompileFailureAbortsBeforeAnyWrite(t *testing.T) {
	cfg := &config.Config{
		Sources: []string{"a.tsx"},
		Rules: []config.Rule{
			{Match: config.MatchLiteral, Pattern: "old", Replace: "new"},
			{Name: "broken", Match: config.MatchRegex, Pattern: `([unclosed`},
		},
	}

	f := newFixture(t, cfg, false)
	f.writeSource(t, "a.tsx", "old")

	op, err := NewApplyOperation(f.opts)
	require.NoError(t, err)
	err = op.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling catalog")

	// Nothing was transformed
	assert.Equal(t, "old", f.readSource(t, "a.tsx"))
}

func TestApplyOperation_Execute_MissingSourceFails(t *testing.T) {
	cfg := &config.Config{
		Sources: []string{"missing.tsx"},
		Rules:   []config.Rule{{Match: config.MatchLiteral, Pattern: "x", Replace: "y"}},
	}

	f := newFixture(t, cfg, false)
	op, err := NewApplyOperation(f.opts)
	require.NoError(t, err)

	err = op.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processing file missing.tsx")
}

func TestNewApplyOperation_RequiresCollaborators(t *testing.T) {
	_, err := NewApplyOperation(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")
}

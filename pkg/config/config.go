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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mikaza-sukaza/i18ntool/pkg/subst"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔖 Match kinds a rule must declare. There is no default: a catalog that
// omits the kind is rejected, because whether a pattern is literal text
// or a regular expression changes what it matches.
const (
	MatchLiteral = "literal"
	MatchRegex   = "regex"
)

// 🔄 Rule is one replacement entry in a migration catalog
type Rule struct {
	Name    string // Translation key or other identity for reports (optional)
	Match   string // "literal" or "regex" (required, never inferred)
	Pattern string // Text or expression to find
	Replace string // Replacement template
	Files   string // Optional doublestar glob limiting which sources the rule touches
}

// 📚 Config is a migration catalog: the source files it applies to and
// the ordered rules to run against them. Rule order is preserved from
// the document and is semantically meaningful.
type Config struct {
	Sources []string // Files to transform, relative to the workspace root
	Rules   []Rule   // Applied strictly in listed order
}

// 🔌 Parser is the interface for catalog parsers
type Parser interface {
	// 📝 Parse parses the catalog from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load loads a catalog from a file, picking the parser by extension
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading catalog file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing catalog: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating catalog: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the catalog is valid
func (cfg *Config) Validate() error {
	if len(cfg.Sources) == 0 {
		return errors.Errorf("sources is required")
	}
	for i, src := range cfg.Sources {
		if src == "" {
			return errors.Errorf("sources[%d]: path is empty", i)
		}
		cfg.Sources[i] = filepath.Clean(src)
	}

	for i, rule := range cfg.Rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		switch rule.Match {
		case MatchLiteral, MatchRegex:
		case "":
			return errors.Errorf("rule %d: match is required (%q or %q, no default is assumed)", i, MatchLiteral, MatchRegex)
		default:
			return errors.Errorf("rule %d: match must be %q or %q, got %q", i, MatchLiteral, MatchRegex, rule.Match)
		}
		if rule.Files != "" && !doublestar.ValidatePattern(rule.Files) {
			return errors.Errorf("rule %d: files glob %q is invalid", i, rule.Files)
		}
	}

	return nil
}

// ⚙️ EngineRules converts the catalog into engine rules, preserving order
func (cfg *Config) EngineRules() []subst.Rule {
	rules := make([]subst.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, subst.Rule{
			Name:    r.Name,
			Pattern: r.Pattern,
			Regex:   r.Match == MatchRegex,
			Replace: r.Replace,
			Files:   r.Files,
		})
	}
	return rules
}

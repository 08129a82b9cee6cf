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
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&JSONParser{})
}

// 🔧 JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *JSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

// 📝 Parse parses the catalog from JSON
func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define JSON schema
	type jsonRule struct {
		Name    string `json:"name,omitempty"`
		Match   string `json:"match"`
		Pattern string `json:"pattern"`
		Replace string `json:"replace,omitempty"`
		Files   string `json:"files,omitempty"`
	}
	type jsonConfig struct {
		Sources []string   `json:"sources"`
		Rules   []jsonRule `json:"rules,omitempty"`
	}

	// Parse JSON
	var jsonCfg jsonConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}

	// Convert to model
	cfg := &Config{
		Sources: jsonCfg.Sources,
	}
	for _, r := range jsonCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{
			Name:    r.Name,
			Match:   r.Match,
			Pattern: r.Pattern,
			Replace: r.Replace,
			Files:   r.Files,
		})
	}

	return cfg, nil
}

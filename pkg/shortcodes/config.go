// Copyright (c) 2024  The Go-Enjin Authors
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

package shortcodes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-corelibs/maps"
)

// Config is the file form of a set of static shortcode definitions, a
// mapping of shortcode name to replacement content
type Config struct {
	Shortcodes map[string]string `json:"shortcodes" yaml:"shortcodes" toml:"shortcodes"`
}

// Statics returns the configured definitions as Static registrations, in
// sorted name order for consistency
func (cfg Config) Statics() (statics []Static) {
	for _, name := range maps.SortedKeys(cfg.Shortcodes) {
		statics = append(statics, Static{Name: name, Content: cfg.Shortcodes[name]})
	}
	return
}

// LoadConfig reads static shortcode definitions from the given file,
// unmarshalled as TOML for the .toml extension and as YAML otherwise
func LoadConfig(path string) (statics []Static, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		statics, err = ParseTomlConfig(data)
	default:
		statics, err = ParseYamlConfig(data)
	}
	return
}

// ParseYamlConfig unmarshalls YAML static shortcode definitions
func ParseYamlConfig(data []byte) (statics []Static, err error) {
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	statics = cfg.Statics()
	return
}

// ParseTomlConfig unmarshalls TOML static shortcode definitions
func ParseTomlConfig(data []byte) (statics []Static, err error) {
	var cfg Config
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return
	}
	statics = cfg.Statics()
	return
}

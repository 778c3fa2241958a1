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
	beContext "github.com/go-enjin/slickcodes/pkg/context"
)

// Static is a fixed-replacement shortcode: every %%<name>%% token becomes the
// configured content, attributes ignored
type Static struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Content string   `json:"content" yaml:"content" toml:"content"`
}

// Shortcode returns the Shortcode registration for this Static
func (s Static) Shortcode() (sc Shortcode) {
	replacement := s.Content
	sc = Shortcode{
		Name:    s.Name,
		Aliases: s.Aliases,
		Handler: func(value string, token *Token, content string, ctx beContext.Context) (output string) {
			output = replacement
			return
		},
	}
	return
}

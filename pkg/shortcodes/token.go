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
	"regexp"

	"github.com/samber/lo"
)

var (
	rxShortcode = regexp.MustCompile(`%%\S+?(?::[^\n]*?)*?%%`)
)

// Token is one parsed %%...%% occurrence; Raw is the matched text including
// delimiters, Name is the handler name and Attributes the decoded positional
// arguments
type Token struct {
	Raw        string
	Name       string
	Attributes []string
}

// Attr returns the positional attribute at the given index, or an empty
// string when not present
func (t *Token) Attr(idx int) (value string) {
	if idx >= 0 && idx < len(t.Attributes) {
		value = t.Attributes[idx]
	}
	return
}

func (t *Token) String() (output string) {
	output = t.Raw
	return
}

// FindTokens scans the given content for %%...%% tokens, leftmost first and
// non-overlapping, reporting each distinct token text once in order of first
// appearance
func FindTokens(content string) (tokens []string) {
	if matches := rxShortcode.FindAllString(content, -1); len(matches) > 0 {
		tokens = lo.Uniq(matches)
	}
	return
}

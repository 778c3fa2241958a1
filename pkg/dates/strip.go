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

package dates

import (
	"strings"
)

const (
	// TimeTokens are the PHP date() pattern letters denoting time-of-day,
	// timezone and related values
	TimeTokens = "aABgGhHisuveIOPpTZ"
	// DateTokens are the PHP date() pattern letters denoting day, week,
	// month and year values
	DateTokens = "dDjlNSwzWFmMntLoyY"
)

// StripTimeTokens removes all time-of-day pattern letters from the given
// layout, leaving literals, separators and backslash-escaped letters intact
func StripTimeTokens(layout string) (stripped string) {
	stripped = stripTokens(layout, TimeTokens)
	return
}

// StripDateTokens removes all date pattern letters from the given layout,
// leaving literals, separators and backslash-escaped letters intact
func StripDateTokens(layout string) (stripped string) {
	stripped = stripTokens(layout, DateTokens)
	return
}

func stripTokens(layout, class string) (stripped string) {
	var escaped bool
	for _, r := range layout {
		if escaped {
			stripped += `\` + string(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if strings.ContainsRune(class, r) {
			continue
		}
		stripped += string(r)
	}
	if escaped {
		stripped += `\`
	}
	return
}

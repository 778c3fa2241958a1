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
	"net/url"
	"strings"

	clStrings "github.com/go-corelibs/strings"
)

const colonEntity = "&#58;"

// ParseToken transforms one token's raw text into its name and decoded
// positional attributes:
//
//  1. quoted attribute runs have one matching quote pair stripped and any
//     colons within escaped so they survive the split
//  2. the leading and trailing %% delimiters are trimmed
//  3. the remainder is split on colons
//  4. every element is URL-decoded and protected colons are restored
//
// None of these steps can fail; malformed input degrades to unexpected
// attribute values which the resolver then leaves unhandled.
func ParseToken(raw string) (token *Token) {
	token = &Token{Raw: raw}
	body := protectQuotedColons(strings.Trim(raw, "%"))
	for idx, part := range strings.Split(body, ":") {
		if decoded, err := url.QueryUnescape(part); err == nil {
			part = decoded
		}
		part = strings.ReplaceAll(part, colonEntity, ":")
		if idx == 0 {
			token.Name = part
			continue
		}
		token.Attributes = append(token.Attributes, part)
	}
	return
}

// protectQuotedColons walks the token body looking for attribute runs that
// start with a single or double quote and end with the matching quote just
// before the next colon separator (or the end of the body). Each such run has
// exactly one quote stripped from each end and its interior colons replaced
// with the colonEntity escape; interior quotes are kept as-is, so a literal
// leading or trailing quote is written doubled. Anything else passes through
// untouched, colons intact.
func protectQuotedColons(body string) (protected string) {
	runes := []rune(body)
	last := len(runes) - 1
	idx := 0
	for idx <= last {
		if clStrings.IsQuote(runes[idx]) {
			if end := findQuotedRunEnd(runes, idx); end > idx {
				interior := string(runes[idx+1 : end])
				protected += strings.ReplaceAll(interior, ":", colonEntity)
				idx = end + 1
				continue
			}
		}
		// plain run, copy through the next separator
		for ; idx <= last; idx++ {
			protected += string(runes[idx])
			if runes[idx] == ':' {
				idx += 1
				break
			}
		}
	}
	return
}

// findQuotedRunEnd returns the index of the first rune matching the opening
// quote at start that sits immediately before a colon separator or at the end
// of the body; returns -1 when the run is not closed that way
func findQuotedRunEnd(runes []rune, start int) (end int) {
	end = -1
	q := runes[start]
	last := len(runes) - 1
	for j := start + 1; j <= last; j++ {
		if runes[j] == q && (j == last || runes[j+1] == ':') {
			end = j
			return
		}
	}
	return
}

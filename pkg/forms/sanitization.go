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

package forms

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Sanitize uses bluemonday.UGCPolicy to sanitize the given input
func Sanitize(input string) (sanitized string) {
	p := bluemonday.UGCPolicy()
	sanitized = p.Sanitize(input)
	return
}

// StrictSanitize uses bluemonday.StrictPolicy to sanitize the given input
func StrictSanitize(input string) (sanitized string) {
	p := bluemonday.StrictPolicy()
	sanitized = p.Sanitize(input)
	return
}

// Clean unescapes any HTML entities after using Sanitize on the given input
func Clean(input string) (cleaned string) {
	cleaned = html.UnescapeString(Sanitize(input))
	return
}

// StrictClean is the same as Clean except it uses StrictSanitize on the given input
func StrictClean(input string) (cleaned string) {
	cleaned = html.UnescapeString(StrictSanitize(input))
	return
}

// KebabValue uses StrictClean on the given string, replaces all slashes with
// dashes and renders the string in kebab-cased format
func KebabValue(name string) (cleaned string) {
	cleaned = strings.ReplaceAll(StrictClean(name), "/", "-")
	cleaned = strcase.ToKebab(cleaned)
	return
}

// SlugValue renders the given string as a URL slug: strict-cleaned,
// kebab-cased and with any remaining spaces collapsed into single dashes
func SlugValue(input string) (slug string) {
	slug = KebabValue(input)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	return
}

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
	"strings"

	"github.com/go-enjin/slickcodes/pkg/log"
)

// Translate substitutes all resolved shortcode tokens within the given
// content, leaving unresolved tokens verbatim; position identifies the
// pipeline stage invoking the transformation
func (p *Processor) Translate(content, position string) (modified string) {
	modified = p.TranslateWith(content, position)
	return
}

// TranslateWith is Translate with the caller's original argument list made
// available to handlers under the ArgvKey context key
func (p *Processor) TranslateWith(content, position string, argv ...interface{}) (modified string) {
	modified = content
	tokens := FindTokens(content)
	if len(tokens) == 0 {
		return
	}
	var pairs []string
	for _, raw := range tokens {
		token := ParseToken(raw)
		ctx := p.ctx.Copy()
		ctx.SetSpecific(PositionKey, position)
		ctx.SetSpecific(ArgvKey, argv)
		value := p.registry.ApplyFilters(token.Name, token.Name, token, content, ctx)
		if value == token.Name {
			// not a valid shortcode, keep the original text
			log.TraceF("unhandled shortcode token: %v", raw)
			continue
		}
		log.DebugF("resolved %v shortcode (%d attributes)", token.Name, len(token.Attributes))
		pairs = append(pairs, raw, value)
	}
	if len(pairs) == 0 {
		return
	}
	// single pass over the original input; handler output is never re-scanned
	modified = strings.NewReplacer(pairs...).Replace(content)
	return
}

// TranslateSlug applies shortcode substitution during a slug-sanitization
// stage: slug is the independently sanitized string, raw the pre-sanitized
// original. Sanitization strips the %% delimiters so the transformation runs
// against raw; when a shortcode changed the text the result is re-sanitized,
// otherwise the incoming slug is returned untouched.
func (p *Processor) TranslateSlug(slug, raw string, sanitize SanitizerFn) (modified string) {
	modified = slug
	if changed := p.TranslateWith(raw, PositionSlug, slug, raw); changed != raw {
		if sanitize != nil {
			modified = sanitize(changed)
		} else {
			modified = changed
		}
	}
	return
}

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

// HandlerFn is one link of a shortcode filter chain; value is the previous
// link's return (starting with the token name itself) and output feeds the
// next link. A chain whose final output equals the token name marks the token
// as unhandled and it is kept verbatim.
type HandlerFn = func(value string, token *Token, content string, ctx beContext.Context) (output string)

// SanitizerFn is a host slug-sanitization stage
type SanitizerFn = func(input string) (sanitized string)

type Shortcode struct {
	Name     string
	Aliases  []string
	Priority int
	Handler  HandlerFn
}

func (sc Shortcode) Is(name string) (is bool) {
	if is = sc.Name == name; is {
		return
	}
	for _, alias := range sc.Aliases {
		if is = alias == name; is {
			return
		}
	}
	return
}

const (
	// DefaultPriority is used when a Shortcode declares no Priority
	DefaultPriority = 10

	// KeyPrefix derives filter chain keys from shortcode names
	KeyPrefix = "shortcode_"

	PositionContent = "content"
	PositionTitle   = "title"
	PositionSlug    = "slug"

	// PositionKey and ArgvKey carry the originating pipeline stage and the
	// caller's argument list in the per-call context
	PositionKey = "position"
	ArgvKey     = "argv"

	SiteUrlKey    = "site-url"
	DateFormatKey = "date-format"
	PublishedKey  = "published"
	NowKey        = "now"
)

// FilterKey returns the registry key for the given shortcode name
func FilterKey(name string) (key string) {
	key = KeyPrefix + name
	return
}

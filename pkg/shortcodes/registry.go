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
	"sort"
	"strings"

	"github.com/maruel/natural"

	beContext "github.com/go-enjin/slickcodes/pkg/context"
)

type filterEntry struct {
	priority int
	fn       HandlerFn
}

// Registry maps derived shortcode keys to priority-ordered handler chains.
// Registration is append-only and happens before any content is transformed;
// transformation calls only read the registry and are safe to run
// concurrently.
type Registry struct {
	known map[string][]filterEntry
}

func NewRegistry() (registry *Registry) {
	registry = &Registry{
		known: make(map[string][]filterEntry),
	}
	return
}

// AddFilter appends the given handler to the chain registered under the key
// derived from name, keeping the chain in ascending priority order (stable
// for equal priorities)
func (r *Registry) AddFilter(name string, priority int, fn HandlerFn) {
	if name == "" || fn == nil {
		return
	}
	key := FilterKey(name)
	entries := append(r.known[key], filterEntry{priority: priority, fn: fn})
	sort.SliceStable(entries, func(i, j int) (less bool) {
		less = entries[i].priority < entries[j].priority
		return
	})
	r.known[key] = entries
}

// HasFilter returns true if at least one handler is registered under the key
// derived from name
func (r *Registry) HasFilter(name string) (present bool) {
	_, present = r.known[FilterKey(name)]
	return
}

// Names returns the list of registered shortcode names, sorted in natural
// order for consistency
func (r *Registry) Names() (names []string) {
	for key := range r.known {
		names = append(names, strings.TrimPrefix(key, KeyPrefix))
	}
	sort.Sort(natural.StringSlice(names))
	return
}

// ApplyFilters runs the handler chain registered under the key derived from
// name, each handler receiving the previous handler's return value; with no
// handlers registered the given value is returned unchanged
func (r *Registry) ApplyFilters(name, value string, token *Token, content string, ctx beContext.Context) (output string) {
	output = value
	for _, entry := range r.known[FilterKey(name)] {
		output = entry.fn(output, token, content, ctx)
	}
	return
}

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
	"testing"

	"github.com/stretchr/testify/assert"

	beContext "github.com/go-enjin/slickcodes/pkg/context"
)

func makeAppender(suffix string) (fn HandlerFn) {
	fn = func(value string, token *Token, content string, ctx beContext.Context) (output string) {
		output = value + suffix
		return
	}
	return
}

func TestFilterKey(t *testing.T) {
	assert.Equal(t, "shortcode_date", FilterKey("date"))
}

func TestRegistryAddAndLookup(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.HasFilter("greet"))

	r.AddFilter("greet", DefaultPriority, makeAppender("!"))
	assert.True(t, r.HasFilter("greet"))
	assert.False(t, r.HasFilter("Greet"))

	r.AddFilter("", DefaultPriority, makeAppender("!"))
	r.AddFilter("nil-handler", DefaultPriority, nil)
	assert.False(t, r.HasFilter(""))
	assert.False(t, r.HasFilter("nil-handler"))
}

func TestRegistryNamesNaturalOrder(t *testing.T) {
	r := NewRegistry()
	r.AddFilter("item10", DefaultPriority, makeAppender("a"))
	r.AddFilter("item2", DefaultPriority, makeAppender("b"))
	r.AddFilter("date", DefaultPriority, makeAppender("c"))
	assert.Equal(t, []string{"date", "item2", "item10"}, r.Names())
}

func TestRegistryChainPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.AddFilter("x", 20, makeAppender("-second"))
	r.AddFilter("x", 10, makeAppender("-first"))

	token := &Token{Raw: "%%x%%", Name: "x"}
	output := r.ApplyFilters("x", "x", token, "%%x%%", beContext.New())
	assert.Equal(t, "x-first-second", output)
}

func TestRegistryChainStableForEqualPriorities(t *testing.T) {
	r := NewRegistry()
	r.AddFilter("x", DefaultPriority, makeAppender("-a"))
	r.AddFilter("x", DefaultPriority, makeAppender("-b"))

	token := &Token{Raw: "%%x%%", Name: "x"}
	output := r.ApplyFilters("x", "x", token, "%%x%%", beContext.New())
	assert.Equal(t, "x-a-b", output)
}

func TestRegistryApplyFiltersWithoutHandlers(t *testing.T) {
	r := NewRegistry()
	token := &Token{Raw: "%%missing%%", Name: "missing"}
	output := r.ApplyFilters("missing", "missing", token, "%%missing%%", beContext.New())
	assert.Equal(t, "missing", output)
}

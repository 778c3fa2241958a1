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

package context

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromOsEnviron(t *testing.T) {
	ctx := NewFromOsEnviron([]string{
		`SITE_URL="https://example.com"`,
		`PLAIN=value`,
		`NOT A PAIR`,
	})
	assert.Equal(t, 2, ctx.Len())
	assert.Equal(t, "https://example.com", ctx.String("SITE_URL", ""))
	assert.Equal(t, "value", ctx.String("PLAIN", ""))
}

func TestKeysNaturalOrder(t *testing.T) {
	ctx := New().
		SetSpecific("item10", 1).
		SetSpecific("item2", 1).
		SetSpecific("alpha", 1)
	assert.Equal(t, []string{"alpha", "item2", "item10"}, ctx.Keys())
}

func TestSetAndGetKeyVariations(t *testing.T) {
	ctx := New()
	ctx.Set("date-format", "Y-m-d")
	// Set camel-cases the key
	assert.True(t, ctx.HasExact("DateFormat"))
	assert.False(t, ctx.HasExact("date-format"))
	// Get finds camel, kebab and snake variations
	assert.Equal(t, "Y-m-d", ctx.String("date-format", ""))
	assert.Equal(t, "Y-m-d", ctx.String("date_format", ""))
	assert.Equal(t, "Y-m-d", ctx.String("DateFormat", ""))

	ctx.SetSpecific("site-url", "https://example.com")
	k, v := ctx.GetKV("SiteUrl")
	assert.Equal(t, "site-url", k)
	assert.Equal(t, "https://example.com", v)

	k, v = ctx.GetKV("nope")
	assert.Equal(t, "", k)
	assert.Nil(t, v)
}

func TestDelete(t *testing.T) {
	ctx := New().SetSpecific("site-url", "here")
	assert.True(t, ctx.Delete("SiteUrl"))
	assert.False(t, ctx.Has("site-url"))
	assert.False(t, ctx.Delete("SiteUrl"))
}

func TestCopyIsolation(t *testing.T) {
	ctx := New()
	ctx.SetSpecific("nested", Context{"key": "original"})
	ctx.SetSpecific("plain", map[string]interface{}{"key": "original"})

	cloned := ctx.Copy()
	cloned["top"] = "added"
	cloned["nested"].(Context)["key"] = "changed"
	cloned["plain"].(Context)["key"] = "changed"

	assert.False(t, ctx.Has("top"))
	assert.Equal(t, "original", ctx["nested"].(Context)["key"])
	assert.Equal(t, "original", ctx["plain"].(map[string]interface{})["key"])
}

func TestApply(t *testing.T) {
	ctx := New()
	ctx.Apply(nil, Context{"one-key": 1}, Context{"two": 2})
	assert.True(t, ctx.HasExact("OneKey"))
	assert.Equal(t, 2, ctx.Int("two", 0))

	specific := New()
	specific.ApplySpecific(Context{"one-key": 1})
	assert.True(t, specific.HasExact("one-key"))
}

func TestValueGetters(t *testing.T) {
	ctx := New().
		SetSpecific("string", "value").
		SetSpecific("strings", []string{"a", "b"}).
		SetSpecific("mixed", []interface{}{"a", 1, "b"}).
		SetSpecific("bool", true).
		SetSpecific("int", 42).
		SetSpecific("float", 42.9).
		SetSpecific("numeric", "42").
		SetSpecific("big", int64(946684800))

	assert.Equal(t, "value", ctx.String("string", "def"))
	assert.Equal(t, "def", ctx.String("bool", "def"))
	assert.Equal(t, []string{"a", "b"}, ctx.Strings("strings"))
	assert.Equal(t, []string{"a", "b"}, ctx.Strings("mixed"))
	assert.True(t, ctx.Bool("bool", false))
	assert.False(t, ctx.Bool("string", false))
	assert.Equal(t, 42, ctx.Int("int", 0))
	assert.Equal(t, 42, ctx.Int("float", 0))
	assert.Equal(t, 42, ctx.Int("numeric", 0))
	assert.Equal(t, 10, ctx.Int("missing", 10))
	assert.Equal(t, int64(946684800), ctx.Int64("big", 0))
	assert.Equal(t, int64(42), ctx.Int64("int", 0))
}

func TestTime(t *testing.T) {
	when := time.Date(2000, 3, 15, 10, 30, 45, 0, time.UTC)
	def := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := New().
		SetSpecific("moment", when).
		SetSpecific("pointer", &when).
		SetSpecific("epoch", int64(946684800)).
		SetSpecific("text", "2000-03-15").
		SetSpecific("bogus", "not a time")

	assert.Equal(t, when, ctx.Time("moment", def))
	assert.Equal(t, when, ctx.Time("pointer", def))
	assert.Equal(t, int64(946684800), ctx.Time("epoch", def).Unix())
	assert.Equal(t, "2000-03-15", ctx.Time("text", def).Format(time.DateOnly))
	assert.Equal(t, def, ctx.Time("bogus", def))
	assert.Equal(t, def, ctx.Time("missing", def))
}

func TestAsMapStrings(t *testing.T) {
	ctx := New().
		SetSpecific("string", "value").
		SetSpecific("int", 42)
	assert.Equal(t, map[string]string{"string": "value", "int": "42"}, ctx.AsMapStrings())
}

func TestAsSerialized(t *testing.T) {
	ctx := New().SetSpecific("key", "value")

	data, err := ctx.AsJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"key": "value"`)

	data, err = ctx.AsYAML()
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", string(data))

	data, err = ctx.AsTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), `key = 'value'`)
}

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
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/maruel/natural"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	clStrings "github.com/go-corelibs/strings"
)

// Context is a wrapper around a map[string]interface{} structure, used
// throughout slickcodes for passing handler settings and per-call state.
type Context map[string]interface{}

// New constructs a new Context instance
func New() (ctx Context) {
	ctx = make(Context)
	return
}

// NewFromMap casts an existing map[string]interface{} as a Context
func NewFromMap(m map[string]interface{}) Context {
	return Context(m)
}

// NewFromOsEnviron constructs a new Context from os.Environ() string K=V slices
func NewFromOsEnviron(slices ...[]string) (c Context) {
	c = New()
	for _, slice := range slices {
		for _, pair := range slice {
			if key, value, ok := strings.Cut(pair, "="); ok {
				c.SetSpecific(key, clStrings.TrimQuotes(value))
			}
		}
	}
	return
}

// Len returns the number of keys in the Context
func (c Context) Len() (count int) {
	count = len(c)
	return
}

// Empty returns true if there is nothing stored in the Context
func (c Context) Empty() (empty bool) {
	empty = c.Len() == 0
	return
}

// Keys returns a list of all the map keys in the Context, sorted in natural
// order for consistency
func (c Context) Keys() (keys []string) {
	for k := range c {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return
}

// Copy makes a copy of this Context; nested Context and
// map[string]interface{} values are copied as new maps
func (c Context) Copy() (ctx Context) {
	ctx = New()
	for k, v := range c {
		switch t := v.(type) {
		case Context:
			ctx[k] = t.Copy()
		case map[string]interface{}:
			ctx[k] = Context(t).Copy()
		default:
			ctx[k] = v
		}
	}
	return
}

// Apply takes a list of contexts and merges their contents into this one
func (c Context) Apply(contexts ...Context) {
	for _, cc := range contexts {
		if cc != nil {
			for k, v := range cc {
				c.Set(k, v)
			}
		}
	}
	return
}

// ApplySpecific takes a list of contexts and merges their contents into this
// one, keeping the keys specifically
func (c Context) ApplySpecific(contexts ...Context) {
	for _, cc := range contexts {
		if cc != nil {
			for k, v := range cc {
				c.SetSpecific(k, v)
			}
		}
	}
	return
}

// Has returns true if the given Context key exists and is not nil
func (c Context) Has(key string) (present bool) {
	present = c.Get(key) != nil
	return
}

// HasExact returns true if the specific Context key given exists and is not nil
func (c Context) HasExact(key string) (present bool) {
	if v, ok := c[key]; ok {
		present = v != nil
	}
	return
}

// Set CamelCases the given key and sets that within this Context
func (c Context) Set(key string, value interface{}) Context {
	key = strcase.ToCamel(key)
	c[key] = value
	return c
}

// SetSpecific is like Set(), without CamelCasing the key
func (c Context) SetSpecific(key string, value interface{}) Context {
	c[key] = value
	return c
}

// Get is a convenience wrapper around GetKV
func (c Context) Get(key string) (value interface{}) {
	_, value = c.GetKV(key)
	return
}

// GetKV looks for the key as given first and if not found looks for
// CamelCased, kebab-case and snake_cased variations; returning the actual key
// found and the generic value; returns an empty key and nil value if nothing
// found at all
func (c Context) GetKV(key string) (k string, v interface{}) {
	k = key
	var ok bool
	if v, ok = c[k]; ok {
		return
	}
	k = strcase.ToCamel(key)
	if v, ok = c[k]; ok {
		return
	}
	k = strcase.ToKebab(key)
	if v, ok = c[k]; ok {
		return
	}
	k = strcase.ToSnake(key)
	if v, ok = c[k]; ok {
		return
	}
	k = ""
	v = nil
	return
}

// Delete deletes the given key from the Context, following the same key lookup
// process as Get(), deleting only the first matching key format found
func (c Context) Delete(key string) (deleted bool) {
	if k, v := c.GetKV(key); v != nil {
		delete(c, k)
		deleted = true
	}
	return
}

// String returns the key's value as a string, returning the given default if
// not found or not actually a string value.
func (c Context) String(key, def string) string {
	if v := c.Get(key); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Strings returns the key's value as a list of strings, returning an empty
// list if not found or not actually a list of strings
func (c Context) Strings(key string) (values []string) {
	if v := c.Get(key); v != nil {
		if vs, ok := v.([]string); ok {
			values = vs
			return
		} else if vi, ok := v.([]interface{}); ok {
			for _, vii := range vi {
				if viis, ok := vii.(string); ok {
					values = append(values, viis)
				}
			}
			return
		}
	}
	return
}

func (c Context) Bool(key string, def bool) bool {
	if v := c.Get(key); v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func (c Context) Int(key string, def int) int {
	if v := c.Get(key); v != nil {
		switch t := v.(type) {
		case int:
			return t
		case int8:
			return int(t)
		case int16:
			return int(t)
		case int32:
			return int(t)
		case int64:
			return int(t)
		case float32:
			return int(t)
		case float64:
			return int(t)
		case string:
			i, _ := strconv.Atoi(t)
			return i
		case []byte:
			i, _ := strconv.Atoi(string(t))
			return i
		}
	}
	return def
}

func (c Context) Int64(key string, def int64) int64 {
	if v := c.Get(key); v != nil {
		switch t := v.(type) {
		case int:
			return int64(t)
		case int64:
			return t
		case float64:
			return int64(t)
		case string:
			i, _ := strconv.ParseInt(t, 10, 64)
			return i
		}
	}
	return def
}

// Time returns the key's value as a time.Time, returning the given default if
// not found, not a time.Time value and not a string parsable with
// ParseTimeStructure
func (c Context) Time(key string, def time.Time) time.Time {
	if v := c.Get(key); v != nil {
		if t, err := TimeValue(v); err == nil {
			return t
		}
	}
	return def
}

// AsMap returns this Context, shallowly copied, as a new
// map[string]interface{} instance.
func (c Context) AsMap() (out map[string]interface{}) {
	out = make(map[string]interface{})
	for k, v := range c {
		out[k] = v
	}
	return
}

// AsMapStrings returns this Context as a transformed map[string]string
// structure, where each key's value is checked and if it's a string, use it
// as-is and if it's anything else, run it through fmt.Sprintf("%v") to make it
// a string.
func (c Context) AsMapStrings() (out map[string]string) {
	out = make(map[string]string)
	for k, v := range c {
		switch t := v.(type) {
		case string:
			out[k] = t
		default:
			out[k] = fmt.Sprintf("%v", t)
		}
	}
	return
}

func (c Context) AsJSON() (data []byte, err error) {
	data, err = json.MarshalIndent(c, "", "  ")
	return
}

func (c Context) AsTOML() (data []byte, err error) {
	data, err = toml.Marshal(c)
	return
}

func (c Context) AsYAML() (data []byte, err error) {
	data, err = yaml.Marshal(c)
	return
}

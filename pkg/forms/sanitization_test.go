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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, `<p>hello</p>`, Sanitize(`<p onclick="evil()">hello</p>`))
	assert.Equal(t, `hello`, Sanitize(`<script>evil()</script>hello`))
}

func TestStrictSanitize(t *testing.T) {
	assert.Equal(t, `hello`, StrictSanitize(`<p>hello</p>`))
	assert.Equal(t, `hello there`, StrictSanitize(`<em>hello</em> there`))
}

func TestClean(t *testing.T) {
	assert.Equal(t, `<p>this & that</p>`, Clean(`<p>this &amp; that</p>`))
	assert.Equal(t, `this & that`, StrictClean(`<em>this &amp; that</em>`))
}

func TestKebabValue(t *testing.T) {
	assert.Equal(t, "path-to-thing", KebabValue("path/to/thing"))
	assert.Equal(t, "hello-there-world", KebabValue("Hello There World"))
	assert.Equal(t, "hello", KebabValue("<b>Hello</b>"))
}

func TestSlugValue(t *testing.T) {
	assert.Equal(t, "hello-world", SlugValue("Hello World"))
	assert.Equal(t, "a-b-c", SlugValue("-a--b---c-"))
	assert.Equal(t, "about-us", SlugValue("/about/us/"))
}

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
)

func TestFindTokens(t *testing.T) {
	assert.Empty(t, FindTokens("no tokens here"))
	assert.Empty(t, FindTokens(""))

	assert.Equal(t, []string{"%%siteurl%%"}, FindTokens("see %%siteurl%% for more"))

	assert.Equal(t,
		[]string{"%%date:Y%%", "%%siteurl%%"},
		FindTokens("%%date:Y%% %%siteurl%%"),
	)
}

func TestFindTokensDeduplicates(t *testing.T) {
	tokens := FindTokens("%%siteurl%%/one and %%siteurl%%/two")
	assert.Equal(t, []string{"%%siteurl%%"}, tokens)
}

func TestFindTokensArgumentsMaySpanSpaces(t *testing.T) {
	// the name segment cannot contain whitespace, colon arguments can
	assert.Equal(t,
		[]string{"%%date:F j, Y%%"},
		FindTokens("posted %%date:F j, Y%% by admin"),
	)
	assert.Empty(t, FindTokens("%% date:Y%%"))
}

func TestFindTokensNeverCrossNewlines(t *testing.T) {
	assert.Empty(t, FindTokens("%%date:\nY%%"))
	assert.Empty(t, FindTokens("%%da\nte%%"))
}

func TestFindTokensLeftmostNonOverlapping(t *testing.T) {
	// the leftmost candidate wins and scanning resumes after its closing
	// delimiters, so the middle "%%b%%" is never considered
	tokens := FindTokens("%%a%%b%%c%%")
	assert.Equal(t, []string{"%%a%%", "%%c%%"}, tokens)
}

func TestTokenAttr(t *testing.T) {
	token := &Token{Raw: "%%date:Y:now%%", Name: "date", Attributes: []string{"Y", "now"}}
	assert.Equal(t, "Y", token.Attr(0))
	assert.Equal(t, "now", token.Attr(1))
	assert.Equal(t, "", token.Attr(2))
	assert.Equal(t, "", token.Attr(-1))
	assert.Equal(t, "%%date:Y:now%%", token.String())
}

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
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-corelibs/slices"
	"github.com/go-corelibs/values"
)

var (
	DateLayout     = "Jan 02, 2006"
	TimeLayout     = "15:04 -0700"
	DateTimeLayout = "2006-01-02 15:04 MST"

	gDateTime = struct {
		formats []string
		sync.RWMutex
	}{
		formats: []string{
			DateLayout,
			TimeLayout,
			DateTimeLayout,
			time.DateOnly,
			time.DateTime,
			time.TimeOnly,
			time.RFC1123,
			time.RFC1123Z,
			time.RFC3339,
			"2006-01-02T15:04",
			"January 2, 2006",
			"January 2 2006",
			"Jan 2, 2006",
			"2006/01/02",
			"01/02/2006",
		},
	}
)

// AddDateTimeFormat appends the given time layout to the list of formats
// ParseTimeStructure tries, ignoring layouts already present
func AddDateTimeFormat(format string) {
	gDateTime.Lock()
	defer gDateTime.Unlock()
	if !slices.Within(format, gDateTime.formats) {
		gDateTime.formats = append(gDateTime.formats, format)
	}
}

// ParseTimeStructure tries each of the registered datetime formats in order
// and returns the first successfully parsed time
func ParseTimeStructure(input string) (parsed time.Time, err error) {
	input = strings.TrimSpace(input)
	gDateTime.RLock()
	defer gDateTime.RUnlock()
	for _, format := range gDateTime.formats {
		if v, e := time.Parse(format, input); e == nil {
			parsed = v
			return
		}
	}
	err = errors.New("not a time format value")
	return
}

// TimeValue converts the given value to a time.Time, parsing strings with
// ParseTimeStructure and treating integer values as unix epoch seconds
func TimeValue(input interface{}) (parsed time.Time, err error) {
	switch t := input.(type) {
	case time.Time:
		parsed = t
	case *time.Time:
		if t != nil {
			parsed = *t
		}
	case int:
		parsed = time.Unix(int64(t), 0)
	case int64:
		parsed = time.Unix(t, 0)
	case string:
		parsed, err = ParseTimeStructure(t)
	default:
		err = fmt.Errorf("unsupported type: %s", values.TypeOf(input))
	}
	return
}

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

// Package dates renders PHP date() style layout strings against time.Time
// values, including the backslash escaping of pattern letters
package dates

import (
	"fmt"
	"strconv"
	"time"
)

var (
	// DefaultFormat is the layout used when no format attribute or context
	// setting is present
	DefaultFormat = "F j, Y"
)

// Format renders the given PHP date() layout using the given moment in time;
// pattern letters preceded by a backslash are emitted literally
func Format(layout string, t time.Time) (formatted string) {
	var escaped bool
	for _, r := range layout {
		if escaped {
			formatted += string(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		formatted += formatToken(r, t)
	}
	if escaped {
		formatted += `\`
	}
	return
}

func formatToken(r rune, t time.Time) (output string) {
	switch r {

	// day tokens

	case 'd':
		output = fmt.Sprintf("%02d", t.Day())
	case 'D':
		output = t.Format("Mon")
	case 'j':
		output = strconv.Itoa(t.Day())
	case 'l':
		output = t.Format("Monday")
	case 'N':
		if wd := int(t.Weekday()); wd == 0 {
			output = "7"
		} else {
			output = strconv.Itoa(wd)
		}
	case 'S':
		output = ordinalSuffix(t.Day())
	case 'w':
		output = strconv.Itoa(int(t.Weekday()))
	case 'z':
		output = strconv.Itoa(t.YearDay() - 1)

	// week tokens

	case 'W':
		_, week := t.ISOWeek()
		output = fmt.Sprintf("%02d", week)

	// month tokens

	case 'F':
		output = t.Format("January")
	case 'm':
		output = fmt.Sprintf("%02d", int(t.Month()))
	case 'M':
		output = t.Format("Jan")
	case 'n':
		output = strconv.Itoa(int(t.Month()))
	case 't':
		output = strconv.Itoa(daysInMonth(t))

	// year tokens

	case 'L':
		if isLeapYear(t.Year()) {
			output = "1"
		} else {
			output = "0"
		}
	case 'o':
		year, _ := t.ISOWeek()
		output = strconv.Itoa(year)
	case 'Y':
		output = strconv.Itoa(t.Year())
	case 'y':
		output = fmt.Sprintf("%02d", t.Year()%100)

	// time tokens

	case 'a':
		output = t.Format("pm")
	case 'A':
		output = t.Format("PM")
	case 'B':
		output = fmt.Sprintf("%03d", swatchBeats(t))
	case 'g':
		output = t.Format("3")
	case 'G':
		output = strconv.Itoa(t.Hour())
	case 'h':
		output = t.Format("03")
	case 'H':
		output = fmt.Sprintf("%02d", t.Hour())
	case 'i':
		output = fmt.Sprintf("%02d", t.Minute())
	case 's':
		output = fmt.Sprintf("%02d", t.Second())
	case 'u':
		output = fmt.Sprintf("%06d", t.Nanosecond()/1e3)
	case 'v':
		output = fmt.Sprintf("%03d", t.Nanosecond()/1e6)

	// timezone tokens

	case 'e':
		output = t.Location().String()
	case 'I':
		if t.IsDST() {
			output = "1"
		} else {
			output = "0"
		}
	case 'O':
		output = t.Format("-0700")
	case 'P':
		output = t.Format("-07:00")
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			output = "Z"
		} else {
			output = t.Format("-07:00")
		}
	case 'T':
		output = t.Format("MST")
	case 'Z':
		_, offset := t.Zone()
		output = strconv.Itoa(offset)

	// full date/time tokens

	case 'c':
		output = t.Format("2006-01-02T15:04:05-07:00")
	case 'r':
		output = t.Format("Mon, 02 Jan 2006 15:04:05 -0700")
	case 'U':
		output = strconv.FormatInt(t.Unix(), 10)

	default:
		output = string(r)
	}
	return
}

func ordinalSuffix(day int) (suffix string) {
	suffix = "th"
	if day >= 11 && day <= 13 {
		return
	}
	switch day % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return
}

func daysInMonth(t time.Time) (days int) {
	days = time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return
}

func isLeapYear(year int) (leap bool) {
	leap = year%4 == 0 && (year%100 != 0 || year%400 == 0)
	return
}

func swatchBeats(t time.Time) (beats int) {
	// internet time is measured from Biel mean time, UTC+1
	bmt := t.In(time.FixedZone("BMT", 3600))
	seconds := bmt.Hour()*3600 + bmt.Minute()*60 + bmt.Second()
	beats = int(float64(seconds)/86.4) % 1000
	return
}

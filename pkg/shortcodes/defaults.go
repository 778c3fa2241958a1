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
	"strconv"
	"time"

	beContext "github.com/go-enjin/slickcodes/pkg/context"
	"github.com/go-enjin/slickcodes/pkg/dates"
	"github.com/go-enjin/slickcodes/pkg/log"
)

type stripMode int

const (
	stripNone stripMode = iota
	stripTime
	stripDate
)

var (

	// DateShortcode renders %%date%%, %%date:<format>%% and
	// %%date:<format>:<reference>%% tokens; the format is a PHP date()
	// layout defaulting to the DateFormatKey context setting, the reference
	// is "now" when absent, the published sentinel, a unix epoch or a
	// free-form parseable date/time string
	DateShortcode = Shortcode{
		Name:    "date",
		Handler: makeDateTimeHandler(stripNone),
	}

	// DaysShortcode is DateShortcode with all time-of-day pattern letters
	// removed from the format before rendering
	DaysShortcode = Shortcode{
		Name:    "days",
		Handler: makeDateTimeHandler(stripTime),
	}

	// TimeShortcode is DateShortcode with all date pattern letters removed
	// from the format before rendering
	TimeShortcode = Shortcode{
		Name:    "time",
		Handler: makeDateTimeHandler(stripDate),
	}

	// SiteUrlShortcode replaces %%siteurl%% tokens with the SiteUrlKey
	// context setting, consulting no attributes; with no site URL configured
	// the token is left unhandled
	SiteUrlShortcode = Shortcode{
		Name:    "siteurl",
		Handler: siteUrlHandler,
	}
)

func makeDateTimeHandler(mode stripMode) (handler HandlerFn) {
	handler = func(value string, token *Token, content string, ctx beContext.Context) (output string) {
		format := token.Attr(0)
		if format == "" {
			format = ctx.String(DateFormatKey, dates.DefaultFormat)
		}
		switch mode {
		case stripTime:
			format = dates.StripTimeTokens(format)
		case stripDate:
			format = dates.StripDateTokens(format)
		}
		output = dates.Format(format, resolveTimeReference(token.Attr(1), ctx))
		return
	}
	return
}

// resolveTimeReference interprets the optional second attribute of the
// date/days/time shortcodes; unparseable references fall back to the call
// "now" (the NowKey context setting when present, the wall clock otherwise)
func resolveTimeReference(ref string, ctx beContext.Context) (when time.Time) {
	when = ctx.Time(NowKey, time.Now())
	switch ref {
	case "", "now":
	case PublishedKey, "post":
		when = ctx.Time(PublishedKey, when)
	default:
		if epoch, err := strconv.ParseInt(ref, 10, 64); err == nil {
			when = time.Unix(epoch, 0)
		} else if parsed, ee := beContext.ParseTimeStructure(ref); ee == nil {
			when = parsed
		} else {
			log.DebugF("unparseable time reference: %v", ref)
		}
	}
	return
}

func siteUrlHandler(value string, token *Token, content string, ctx beContext.Context) (output string) {
	output = value
	if siteUrl := ctx.String(SiteUrlKey, ""); siteUrl != "" {
		output = siteUrl
	}
	return
}

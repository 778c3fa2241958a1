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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	beContext "github.com/go-enjin/slickcodes/pkg/context"
	"github.com/go-enjin/slickcodes/pkg/forms"
	"github.com/go-enjin/slickcodes/pkg/globals"
	"github.com/go-enjin/slickcodes/pkg/log"
	"github.com/go-enjin/slickcodes/pkg/shortcodes"
)

func main() {
	app := &cli.App{
		Name:    globals.BinName,
		Usage:   globals.Summary,
		Version: globals.BuildVersion(),
		Description: "Transforms the given text (or standard input when no text" +
			" arguments are present), substituting %%name:attr1:attr2%% inline" +
			" shortcode tokens and leaving unrecognized tokens verbatim.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "site-url",
				Usage:    "specify the value %%siteurl%% tokens resolve to",
				EnvVars:  []string{globals.EnvPrefix + "_SITE_URL"},
				Category: "settings",
			},
			&cli.StringFlag{
				Name:     "date-format",
				Usage:    "specify the default %%date%% format",
				EnvVars:  []string{globals.EnvPrefix + "_DATE_FORMAT"},
				Category: "settings",
			},
			&cli.StringFlag{
				Name:     "published",
				Usage:    "specify the timestamp %%date::published%% tokens resolve to",
				EnvVars:  []string{globals.EnvPrefix + "_PUBLISHED"},
				Category: "settings",
			},
			&cli.StringFlag{
				Name:     "position",
				Usage:    "specify the pipeline stage label: content, title or slug",
				Value:    shortcodes.PositionContent,
				EnvVars:  []string{globals.EnvPrefix + "_POSITION"},
				Category: "settings",
			},
			&cli.StringFlag{
				Name:     "shortcodes",
				Usage:    "load static shortcode definitions from a YAML or TOML file",
				Aliases:  []string{"c"},
				EnvVars:  []string{globals.EnvPrefix + "_SHORTCODES"},
				Category: "settings",
			},
			&cli.BoolFlag{
				Name:     "slug",
				Usage:    "sanitize the transformed output as a URL slug",
				Aliases:  []string{"s"},
				EnvVars:  []string{globals.EnvPrefix + "_SLUG"},
				Category: "settings",
			},
			&cli.StringFlag{
				Name:     "log-level",
				Usage:    "set logging level: error, warn, info, debug or trace",
				EnvVars:  []string{globals.EnvPrefix + "_LOG_LEVEL"},
				Category: "general",
			},
		},
		Action: action,
	}
	if err := app.Run(os.Args); err != nil {
		log.ErrorF("%v", err)
		os.Exit(1)
	}
}

func action(ctx *cli.Context) (err error) {
	log.Config.LogLevel = log.ParseLevel(ctx.String("log-level"), log.LevelError)
	log.Config.AppName = globals.BinName
	log.Config.Apply()

	maker := shortcodes.New().Defaults()

	if path := ctx.String("shortcodes"); path != "" {
		var statics []shortcodes.Static
		if statics, err = shortcodes.LoadConfig(path); err != nil {
			err = fmt.Errorf("error loading shortcodes config: %w", err)
			return
		}
		maker.AddStatic(statics...)
	}

	settings := beContext.New()
	if v := ctx.String("site-url"); v != "" {
		settings.SetSpecific(shortcodes.SiteUrlKey, v)
	}
	if v := ctx.String("date-format"); v != "" {
		settings.SetSpecific(shortcodes.DateFormatKey, v)
	}
	if v := ctx.String("published"); v != "" {
		if published, ee := beContext.TimeValue(v); ee == nil {
			settings.SetSpecific(shortcodes.PublishedKey, published)
		} else {
			log.WarnF("invalid --published value: %v", v)
		}
	}
	p := maker.SetContext(settings).Make()

	var input string
	if input, err = gatherInput(ctx); err != nil {
		return
	}

	var output string
	if ctx.Bool("slug") {
		output = p.TranslateSlug(forms.SlugValue(input), input, forms.SlugValue)
	} else {
		output = p.Translate(input, ctx.String("position"))
	}
	_, err = fmt.Fprintln(os.Stdout, output)
	return
}

func gatherInput(ctx *cli.Context) (input string, err error) {
	if argv := ctx.Args().Slice(); len(argv) > 0 {
		input = strings.Join(argv, " ")
		return
	}
	var data []byte
	if data, err = io.ReadAll(os.Stdin); err != nil {
		return
	}
	input = strings.TrimSuffix(string(data), "\n")
	return
}

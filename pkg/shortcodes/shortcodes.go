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

// Package shortcodes implements the %%name:attr1:attr2%% inline shortcode
// notation for content, title and slug strings.
//
// Construct a Processor with the builder chain:
//
//	p := shortcodes.New().
//		Defaults().
//		Add(shortcodes.Shortcode{Name: "greet", Handler: greetFn}).
//		SetContext(ctx).
//		Make()
//
// and transform text with p.Translate(content, shortcodes.PositionContent).
// Tokens whose handler chain echoes the token name back unchanged are not
// considered valid shortcodes and are kept verbatim.
package shortcodes

import (
	beContext "github.com/go-enjin/slickcodes/pkg/context"
)

type Processor struct {
	registry *Registry
	ctx      beContext.Context
}

type MakeProcessor interface {
	// Defaults registers the built-in date, days, time and siteurl shortcodes
	Defaults() MakeProcessor

	// Add registers the given shortcodes under their names and aliases
	Add(shortcodes ...Shortcode) MakeProcessor

	// AddStatic registers fixed-replacement shortcodes
	AddStatic(statics ...Static) MakeProcessor

	// AddFilter registers a single handler chain link under the given name
	AddFilter(name string, priority int, fn HandlerFn) MakeProcessor

	// SetContext replaces the base context applied to every transformation
	SetContext(ctx beContext.Context) MakeProcessor

	Make() (p *Processor)
}

func New() (maker MakeProcessor) {
	p := &Processor{
		registry: NewRegistry(),
		ctx:      beContext.New(),
	}
	maker = p
	return
}

func (p *Processor) Defaults() MakeProcessor {
	p.Add(
		DateShortcode,
		DaysShortcode,
		TimeShortcode,
		SiteUrlShortcode,
	)
	return p
}

func (p *Processor) Add(shortcodes ...Shortcode) MakeProcessor {
	for _, sc := range shortcodes {
		priority := sc.Priority
		if priority == 0 {
			priority = DefaultPriority
		}
		p.registry.AddFilter(sc.Name, priority, sc.Handler)
		for _, alias := range sc.Aliases {
			p.registry.AddFilter(alias, priority, sc.Handler)
		}
	}
	return p
}

func (p *Processor) AddStatic(statics ...Static) MakeProcessor {
	for _, static := range statics {
		p.Add(static.Shortcode())
	}
	return p
}

func (p *Processor) AddFilter(name string, priority int, fn HandlerFn) MakeProcessor {
	p.registry.AddFilter(name, priority, fn)
	return p
}

func (p *Processor) SetContext(ctx beContext.Context) MakeProcessor {
	if ctx != nil {
		p.ctx = ctx.Copy()
	}
	return p
}

func (p *Processor) Make() *Processor {
	return p
}

// Registry exposes the processor's handler registry
func (p *Processor) Registry() (registry *Registry) {
	registry = p.registry
	return
}

// Context returns a copy of the processor's base context
func (p *Processor) Context() (ctx beContext.Context) {
	ctx = p.ctx.Copy()
	return
}

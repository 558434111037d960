// SPDX-License-Identifier: MIT

package spy

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	DefaultTitle = "sparsity pattern"
	DefaultSize  = 6 * vg.Inch
	DefaultGlyph = vg.Length(1)
)

type config struct {
	title  string
	size   vg.Length
	radius vg.Length
}

func newConfig(opts ...Option) config {
	cfg := config{
		title:  DefaultTitle,
		size:   DefaultSize,
		radius: DefaultGlyph,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a plot.
type Option func(*config)

// WithTitle sets the plot title. An empty title is allowed.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the side of the square canvas. Panics if s <= 0.
func WithSize(s vg.Length) Option {
	if s <= 0 {
		panic("spy: WithSize(s<=0)")
	}
	return func(c *config) { c.size = s }
}

// WithGlyphRadius sets the half-width of each non-zero marker. Panics if r <= 0.
func WithGlyphRadius(r vg.Length) Option {
	if r <= 0 {
		panic("spy: WithGlyphRadius(r<=0)")
	}
	return func(c *config) { c.radius = r }
}

// SPDX-License-Identifier: MIT

package spy

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/cgfixtures/csr"
)

// ErrNilView is returned when a nil *csr.View is passed in.
var ErrNilView = errors.New("spy: nil view")

// Plot builds the spy plot of v. Column indices run along X, row indices
// along an inverted Y axis. A view without non-zeros yields empty axes.
func Plot(v *csr.View, opts ...Option) (*plot.Plot, error) {
	if v == nil {
		return nil, fmt.Errorf("Plot: %w", ErrNilView)
	}
	cfg := newConfig(opts...)
	r, c := v.Dims()

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = fmt.Sprintf("column (nnz=%d)", v.NNZ())
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(c)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(r)-0.5
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	if v.NNZ() == 0 {
		return p, nil
	}

	pts := make(plotter.XYs, 0, v.NNZ())
	v.DoNonZero(func(i, j int, _ float64) {
		pts = append(pts, plotter.XY{X: float64(j), Y: float64(i)})
	})
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("Plot: scatter: %w", err)
	}
	s.GlyphStyle.Shape = draw.BoxGlyph{}
	s.GlyphStyle.Radius = cfg.radius
	p.Add(s)

	return p, nil
}

// WriteTo renders the spy plot of v in the given format (e.g. "png", "svg")
// and writes it to w.
func WriteTo(w io.Writer, v *csr.View, format string, opts ...Option) error {
	p, err := Plot(v, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	wt, err := p.WriterTo(cfg.size, cfg.size, format)
	if err != nil {
		return fmt.Errorf("WriteTo: format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WriteTo: %w", err)
	}

	return nil
}

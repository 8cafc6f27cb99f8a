/*
 * kplot.go, part of gocastep.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

// Package kplot draws the band structure path of a cell document.
package kplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/cell"
	"github.com/rmera/gocastep/units"
	"github.com/rmera/gocastep/v3"
)

// Path returns the BS_KPOINT_PATH of D.
func Path(D *cell.Document) (cell.BSKpointPath, error) {
	e, ok := D.Entry(cell.KindBSKpoints)
	if ok {
		if p, ok := e.(cell.BSKpointPath); ok {
			if len(p) < 2 {
				return nil, castep.NewError(castep.WrongRowLength, castep.Position{}, "BS_KPOINT_PATH needs at least 2 points, %d given", len(p))
			}
			return p, nil
		}
	}
	return nil, castep.NewError(castep.MissingBlock, castep.Position{}, "no BS_KPOINT_PATH block")
}

// cartesian returns the points of path, in fractional coordinates,
// in the basis given by the rows of R.
func cartesian(path cell.BSKpointPath, R *v3.Matrix) (*v3.Matrix, error) {
	data := make([]float64, 0, 3*len(path))
	for _, p := range path {
		data = append(data, p[:]...)
	}
	K, err := v3.NewMatrix(data)
	if err != nil {
		return nil, castep.ErrDecorate(err, "cartesian")
	}
	var C mat.Dense
	C.Mul(K.Dense, R.Dense)
	return v3.Dense2Matrix(&C), nil
}

// reciprocalPath returns the points of path in Cartesian reciprocal
// space. twopi selects whether the 2*pi factor is included.
func reciprocalPath(L cell.LatticeParam, path cell.BSKpointPath, twopi bool) (*v3.Matrix, error) {
	var R *v3.Matrix
	var err error
	if twopi {
		R, err = cell.Reciprocal(L)
	} else {
		R, err = v3.Reciprocal(L.Vectors())
	}
	if err != nil {
		return nil, castep.ErrDecorate(err, "reciprocalPath")
	}
	return cartesian(path, R)
}

// PathDistances returns, for each vertex of path, the distance along
// the path from the first one, in 1/ang with the 2*pi factor. L is the
// real space lattice.
func PathDistances(L cell.LatticeParam, path cell.BSKpointPath) ([]float64, error) {
	C, err := reciprocalPath(L, path, true)
	if err != nil {
		return nil, castep.ErrDecorate(err, "PathDistances")
	}
	ret := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		ret[i] = ret[i-1] + floats.Distance(C.RawRowView(i), C.RawRowView(i-1), 2)
	}
	return ret, nil
}

// PathSamples returns how many points each segment of path gets when
// sampled every spacing, measured as CASTEP does, without the 2*pi
// factor. Every segment gets at least one point.
func PathSamples(L cell.LatticeParam, path cell.BSKpointPath, spacing units.Quantity[units.InvLength]) ([]int, error) {
	s := spacing.Value * spacing.Resolved().PerAngstrom()
	C, err := reciprocalPath(L, path, false)
	if err != nil {
		return nil, castep.ErrDecorate(err, "PathSamples")
	}
	ret := make([]int, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		n := 1
		if s > 0 {
			d := floats.Distance(C.RawRowView(i), C.RawRowView(i-1), 2)
			n = max(1, int(math.Ceil(d/s-1e-9)))
		}
		ret = append(ret, n)
	}
	return ret, nil
}

// pathCurve returns the distance from the origin of reciprocal space
// against the distance along the path, for each segment, sampled with
// steps points.
func pathCurve(L cell.LatticeParam, path cell.BSKpointPath, steps int) ([]plotter.XYs, error) {
	C, err := reciprocalPath(L, path, true)
	if err != nil {
		return nil, err
	}
	x, err := PathDistances(L, path)
	if err != nil {
		return nil, err
	}
	ret := make([]plotter.XYs, 0, len(path)-1)
	k := make([]float64, 3)
	for i := 1; i < len(path); i++ {
		a, b := C.RawRowView(i-1), C.RawRowView(i)
		seg := make(plotter.XYs, steps+1)
		for j := range seg {
			t := float64(j) / float64(steps)
			for c := range k {
				k[c] = a[c] + t*(b[c]-a[c])
			}
			seg[j].X = x[i-1] + t*(x[i]-x[i-1])
			seg[j].Y = floats.Norm(k, 2)
		}
		ret = append(ret, seg)
	}
	return ret, nil
}

func basicPathPlot(title string, end float64) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Path (1/ang)"
	p.Y.Label.Text = "|k| (1/ang)"
	p.X.Min = 0
	p.X.Max = end
	p.Add(plotter.NewGrid())
	return p
}

/*PathPlot produces a plot, in png format, of the band structure path in D.
Each segment is drawn in its own color, and the vertices are marked with
the given labels, which can be nil. If not nil, there must be one label
per vertex. The .png extension is added to plotname. Returns an error or nil*/
func PathPlot(D *cell.Document, labels []string, title, plotname string) error {
	path, err := Path(D)
	if err != nil {
		return castep.ErrDecorate(err, "PathPlot")
	}
	if labels != nil && len(labels) != len(path) {
		err := castep.NewError(castep.WrongRowLength, castep.Position{}, "%d labels for %d vertices", len(labels), len(path))
		return castep.ErrDecorate(err, "PathPlot")
	}
	segs, err := pathCurve(D.Lattice, path, 20)
	if err != nil {
		return castep.ErrDecorate(err, "PathPlot")
	}
	last := segs[len(segs)-1]
	p := basicPathPlot(title, last[len(last)-1].X)
	vertices := make(plotter.XYs, len(path))
	for i, s := range segs {
		l, err := plotter.NewLine(s)
		if err != nil {
			return err
		}
		l.LineStyle.Color = segmentColor(i, len(segs))
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		vertices[i] = s[0]
		vertices[i+1] = s[len(s)-1]
	}
	sc, err := plotter.NewScatter(vertices)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	if labels != nil {
		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: vertices, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(lb)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

package chart

import (
	"github.com/akoutsou/digiteval/internal/buffer"
	"github.com/akoutsou/digiteval/internal/model"
)

const (
	// step is the sampling distance of the prediction grid.
	step = 0.02
	// padding extends the grid past the outermost samples.
	padding = 1.0
)

// grid is a dense sampling of the reduced plane with one prediction per cell.
// It implements plotter.GridXYZ.
type grid struct {
	xs, ys []float64
	z      []float64
}

// bounds tracks the data extent of a two dimensional dataset.
func bounds(ds model.Dataset) *buffer.StatsCollector {
	sc := buffer.NewStatsCollector(2)
	for _, x := range ds.X {
		sc.Push(x...)
	}
	return sc
}

func axis(min, max, step float64) []float64 {
	var xs []float64
	for v := min; v <= max; v += step {
		xs = append(xs, v)
	}
	return xs
}

// newGrid evaluates the given prediction over a dense grid spanning the
// dataset extent with a fixed padding.
func newGrid(ds model.Dataset, predict func(x []float64) (int, error)) (*grid, error) {
	sc := bounds(ds)
	xs := axis(sc.Stats(0).Min()-padding, sc.Stats(0).Max()+padding, step)
	ys := axis(sc.Stats(1).Min()-padding, sc.Stats(1).Max()+padding, step)

	z := make([]float64, len(xs)*len(ys))
	for r, y := range ys {
		for c, x := range xs {
			v, err := predict([]float64{x, y})
			if err != nil {
				return nil, err
			}
			z[r*len(xs)+c] = float64(v)
		}
	}
	return &grid{xs: xs, ys: ys, z: z}, nil
}

func (g *grid) Dims() (int, int) {
	return len(g.xs), len(g.ys)
}

func (g *grid) Z(c, r int) float64 {
	return g.z[r*len(g.xs)+c]
}

func (g *grid) X(c int) float64 {
	return g.xs[c]
}

func (g *grid) Y(r int) float64 {
	return g.ys[r]
}

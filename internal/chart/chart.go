package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akoutsou/digiteval/internal/model"
)

var (
	// simpleColors styles the two clusters of the simplified chart.
	simpleColors = []color.RGBA{
		{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
		{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff},
	}

	shapes = []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
		draw.PlusGlyph{},
		draw.RingGlyph{},
		draw.PyramidGlyph{},
		draw.BoxGlyph{},
	}
)

// Boundaries renders the classifier decision regions as filled background,
// the clusterer boundaries as dashed contours and the true labels scattered
// on top. The regions span the class range, the contours the cluster range.
func Boundaries(classifier model.Classifier, clusterer model.Clusterer, ds model.Dataset, classes int, clusters int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Classification boundaries: softmax regression vs k-means"
	p.X.Label.Text = "PCA 1"
	p.Y.Label.Text = "PCA 2"

	regions, err := newGrid(ds, classifier.Predict)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate classifier grid: %w", err)
	}
	p.Add(plotter.NewHeatMap(regions, palette.Rainbow(classes, palette.Red, palette.Magenta, 0.4, 1, 1)))

	groups, err := newGrid(ds, clusterer.Cluster)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate clusterer grid: %w", err)
	}
	levels := contourLevels(clusters)
	contours := plotter.NewContour(groups, levels, solid{color.Black, len(levels)})
	contours.LineStyles = []draw.LineStyle{{
		Color:  color.Black,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}}
	p.Add(contours)

	points := make(plotter.XYs, ds.Len())
	for i, x := range ds.X {
		points[i] = plotter.XY{X: x[0], Y: x[1]}
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("could not build scatter: %w", err)
	}
	labelColors := palette.Rainbow(classes, palette.Red, palette.Magenta, 1, 1, 1).Colors()
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  labelColors[ds.Y[i]%classes],
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	return p, nil
}

// ClusterScatter renders every cluster with its own color and glyph shape.
func ClusterScatter(assignments []int, ds model.Dataset, clusters int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "K-means clusters"
	p.X.Label.Text = "PCA 1"
	p.Y.Label.Text = "PCA 2"
	p.Add(plotter.NewGrid())

	colors := palette.Rainbow(clusters, palette.Red, palette.Magenta, 1, 1, 1).Colors()
	for c := 0; c < clusters; c++ {
		points := members(assignments, ds, c)
		if len(points) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, fmt.Errorf("could not build scatter for cluster %d: %w", c, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  colors[c],
			Radius: vg.Points(3),
			Shape:  shapes[c%len(shapes)],
		}
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), scatter)
	}

	return p, nil
}

// SimpleClusters renders the first two cluster indices only, each with a
// convex hull outline around its members. Clusters with too few or collinear
// members get no outline.
func SimpleClusters(assignments []int, ds model.Dataset) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	for c := 0; c < len(simpleColors); c++ {
		points := members(assignments, ds, c)
		if len(points) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, fmt.Errorf("could not build scatter for cluster %d: %w", c, err)
		}
		fill := simpleColors[c]
		fill.A = 0x66
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  fill,
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)

		if len(points) <= 2 {
			log.Warn().Int("cluster", c).Int("members", len(points)).Msg("too few members for outline")
			continue
		}
		hull := Hull(points)
		if hull == nil {
			log.Warn().Int("cluster", c).Msg("degenerate hull, outline skipped")
			continue
		}
		outline := append(hull, hull[0])
		line, err := plotter.NewLine(outline)
		if err != nil {
			return nil, fmt.Errorf("could not build outline for cluster %d: %w", c, err)
		}
		line.LineStyle = draw.LineStyle{
			Color: simpleColors[c],
			Width: vg.Points(2),
		}
		p.Add(line)
	}

	return p, nil
}

// Save renders the plot as a PNG into the given path, or streams it to w
// when no path is given. The canvas is flushed and the file closed on every
// path out.
func Save(p *plot.Plot, path string, w io.Writer) error {
	canvas, err := p.WriterTo(10*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("could not render chart: %w", err)
	}

	if path == "" {
		if w == nil {
			return fmt.Errorf("no output path and no writer given")
		}
		if _, err := canvas.WriteTo(w); err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	defer f.Close()

	if _, err := canvas.WriteTo(f); err != nil {
		return fmt.Errorf("could not write chart to '%s': %w", path, err)
	}
	return nil
}

// contourLevels places one boundary level between every pair of adjacent
// cluster indices.
func contourLevels(clusters int) []float64 {
	levels := make([]float64, 0, clusters)
	for c := 0; c < clusters-1; c++ {
		levels = append(levels, float64(c)+0.5)
	}
	return levels
}

// solid is a single color palette for the cluster boundary contours.
type solid struct {
	c color.Color
	n int
}

func (s solid) Colors() []color.Color {
	cc := make([]color.Color, s.n)
	for i := range cc {
		cc[i] = s.c
	}
	return cc
}

func members(assignments []int, ds model.Dataset, cluster int) plotter.XYs {
	var points plotter.XYs
	for i, c := range assignments {
		if c == cluster {
			points = append(points, plotter.XY{X: ds.X[i][0], Y: ds.X[i][1]})
		}
	}
	return points
}

package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akoutsou/digiteval/internal/model"
)

// sign classifies by the sign of the first coordinate.
type sign struct{}

func (s sign) Predict(x []float64) (int, error) {
	if x[0] < 0 {
		return 0, nil
	}
	return 1, nil
}

func (s sign) Cluster(x []float64) (int, error) {
	return s.Predict(x)
}

func corners() (model.Dataset, []int) {
	ds := model.NewDataset(8)
	assignments := make([]int, 0, 8)
	for _, x := range [][]float64{
		{-2, -2}, {-2, -1}, {-1, -2}, {-1, -1},
		{1, 1}, {1, 2}, {2, 1}, {2, 2},
	} {
		label := 0
		if x[0] > 0 {
			label = 1
		}
		ds.Append(x, label)
		assignments = append(assignments, label)
	}
	return ds, assignments
}

func TestBoundaries(t *testing.T) {
	ds, _ := corners()

	p, err := Boundaries(sign{}, sign{}, ds, 2, 2)
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, "PCA 1", p.X.Label.Text)
}

func TestBoundaries_MoreClustersThanClasses(t *testing.T) {
	ds, _ := corners()

	p, err := Boundaries(sign{}, sign{}, ds, 2, 10)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestContourLevels(t *testing.T) {

	type test struct {
		clusters int
		levels   []float64
	}

	tests := map[string]test{
		"two":    {clusters: 2, levels: []float64{0.5}},
		"three":  {clusters: 3, levels: []float64{0.5, 1.5}},
		"ten":    {clusters: 10, levels: []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5, 8.5}},
		"single": {clusters: 1, levels: []float64{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.levels, contourLevels(tt.clusters))
		})
	}
}

func TestClusterScatter(t *testing.T) {
	ds, assignments := corners()

	// an empty cluster index is tolerated
	p, err := ClusterScatter(assignments, ds, 3)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSimpleClusters(t *testing.T) {
	ds, assignments := corners()

	p, err := SimpleClusters(assignments, ds)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSimpleClusters_SkipsSmallHulls(t *testing.T) {
	// cluster 0 has two members, cluster 1 three collinear ones,
	// neither gets an outline but the chart still renders
	ds := model.NewDataset(5)
	ds.Append([]float64{0, 0}, 0)
	ds.Append([]float64{1, 0}, 0)
	ds.Append([]float64{3, 3}, 1)
	ds.Append([]float64{4, 4}, 1)
	ds.Append([]float64{5, 5}, 1)

	p, err := SimpleClusters([]int{0, 0, 1, 1, 1}, ds)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSave_Writer(t *testing.T) {
	ds, assignments := corners()
	p, err := SimpleClusters(assignments, ds)
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = Save(p, "", &buf)
	assert.NoError(t, err)
	assert.True(t, buf.Len() > 0)
	// png magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestSave_NoTarget(t *testing.T) {
	ds, assignments := corners()
	p, err := SimpleClusters(assignments, ds)
	assert.NoError(t, err)

	err = Save(p, "", nil)
	assert.Error(t, err)
}

func TestSave_File(t *testing.T) {
	ds, assignments := corners()
	p, err := ClusterScatter(assignments, ds, 2)
	assert.NoError(t, err)

	path := t.TempDir() + "/clusters.png"
	assert.NoError(t, Save(p, path, nil))
	assert.FileExists(t, path)
}

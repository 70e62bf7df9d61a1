package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKMeans_Separable(t *testing.T) {
	ds := blobs()

	kmeans := NewKMeans(2, 100, 42)
	err := kmeans.Train(ds.X)
	assert.NoError(t, err)

	// clusters coincide with the true classes, the vote map recovers them
	acc, err := kmeans.Accuracy(ds.X, ds.Y)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	// points deep inside each blob land in different clusters
	left, err := kmeans.Cluster([]float64{-5, -5})
	assert.NoError(t, err)
	right, err := kmeans.Cluster([]float64{5, 5})
	assert.NoError(t, err)
	assert.NotEqual(t, left, right)
}

func TestKMeans_SeparableEverySeed(t *testing.T) {
	ds := blobs()

	// the kept best-of-restarts fit recovers the blobs regardless of where
	// any single restart settles
	for seed := int64(0); seed < 10; seed++ {
		kmeans := NewKMeans(2, 100, seed)
		assert.NoError(t, kmeans.Train(ds.X))

		acc, err := kmeans.Accuracy(ds.X, ds.Y)
		assert.NoError(t, err)
		assert.Equal(t, 1.0, acc, "seed %d", seed)
	}
}

func TestKMeans_Deterministic(t *testing.T) {
	ds := blobs()

	first := NewKMeans(2, 100, 42)
	assert.NoError(t, first.Train(ds.X))
	firstAssignments, err := first.Assign(ds.X)
	assert.NoError(t, err)

	second := NewKMeans(2, 100, 42)
	assert.NoError(t, second.Train(ds.X))
	secondAssignments, err := second.Assign(ds.X)
	assert.NoError(t, err)

	assert.Equal(t, firstAssignments, secondAssignments)
}

func TestKMeans_NoModel(t *testing.T) {
	kmeans := NewKMeans(2, 100, 42)

	_, err := kmeans.Cluster([]float64{0, 0})
	assert.Error(t, err)
}

func TestDistortion(t *testing.T) {

	type test struct {
		x           [][]float64
		assignments []int
		clusters    int
		sum         float64
	}

	tests := map[string]test{
		"points-on-their-means": {
			x:           [][]float64{{1, 1}, {1, 1}, {5, 5}, {5, 5}},
			assignments: []int{0, 0, 1, 1},
			clusters:    2,
			sum:         0,
		},
		"unit-spread": {
			x:           [][]float64{{0, 0}, {2, 0}, {10, 10}},
			assignments: []int{0, 0, 1},
			clusters:    2,
			// cluster 0 mean is (1,0), each member is 1 away
			sum: 2,
		},
		"single-cluster": {
			x:           [][]float64{{-1, 0}, {1, 0}},
			assignments: []int{0, 0},
			clusters:    1,
			sum:         2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.sum, distortion(tt.x, tt.assignments, tt.clusters), 1e-12)
		})
	}
}

func TestVoteLabels(t *testing.T) {

	type test struct {
		assignments []int
		labels      []int
		clusters    int
		vote        map[int]int
	}

	tests := map[string]test{
		"pure-clusters": {
			assignments: []int{0, 0, 1, 1},
			labels:      []int{7, 7, 3, 3},
			clusters:    2,
			vote:        map[int]int{0: 7, 1: 3},
		},
		"majority-wins": {
			assignments: []int{0, 0, 0, 1, 1, 1},
			labels:      []int{5, 5, 2, 8, 8, 8},
			clusters:    2,
			vote:        map[int]int{0: 5, 1: 8},
		},
		"empty-cluster-maps-to-minus-one": {
			assignments: []int{0, 0, 2, 2},
			labels:      []int{1, 1, 4, 4},
			clusters:    3,
			vote:        map[int]int{0: 1, 1: -1, 2: 4},
		},
		"tie-resolves-to-smallest-label": {
			assignments: []int{0, 0},
			labels:      []int{9, 2},
			clusters:    1,
			vote:        map[int]int{0: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vote := VoteLabels(tt.assignments, tt.labels, tt.clusters)
			assert.Equal(t, tt.vote, vote)
		})
	}
}

package ml

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"

	"github.com/akoutsou/digiteval/internal/model"
)

// restarts is the number of independent fits per training run, the fit with
// the lowest within-cluster distortion wins.
const restarts = 10

// KMeans wraps a k-means clusterer with a majority vote label assignment.
// Training never sees labels, the vote only happens at scoring time.
type KMeans struct {
	clusters   int
	iterations int
	seed       int64
	model      *cluster.KMeans
}

// NewKMeans creates a clusterer for the given number of clusters.
// The seed pins the centroid initialization, identical seeds reproduce the
// identical fit.
func NewKMeans(clusters int, iterations int, seed int64) *KMeans {
	return &KMeans{
		clusters:   clusters,
		iterations: iterations,
		seed:       seed,
	}
}

// Clusters returns the configured number of clusters.
func (k *KMeans) Clusters() int {
	return k.clusters
}

// Train fits the cluster centers on the given points. The fit restarts from
// fresh centroids several times and keeps the one with the lowest distortion,
// a single run can settle into a bad local optimum.
func (k *KMeans) Train(x [][]float64) error {
	rand.Seed(k.seed)

	var best *cluster.KMeans
	bestScore := math.MaxFloat64
	for i := 0; i < restarts; i++ {
		m := cluster.NewKMeans(k.clusters, k.iterations, x)
		if err := m.Learn(); err != nil {
			return fmt.Errorf("could not train k-means: %w", err)
		}
		score := distortion(x, m.Guesses(), k.clusters)
		if score < bestScore {
			bestScore = score
			best = m
		}
	}

	k.model = best
	log.Debug().Float64("distortion", bestScore).Int("restarts", restarts).Msg("k-means trained")
	return nil
}

// Cluster returns the cluster index for the given point.
func (k *KMeans) Cluster(x []float64) (int, error) {
	if k.model == nil {
		return 0, fmt.Errorf("no model present")
	}
	guess, err := k.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}
	return int(math.Round(guess[0])), nil
}

// Assign returns the cluster index for each of the given points.
func (k *KMeans) Assign(x [][]float64) ([]int, error) {
	assignments := make([]int, len(x))
	for i, p := range x {
		c, err := k.Cluster(p)
		if err != nil {
			return nil, err
		}
		assignments[i] = c
	}
	return assignments, nil
}

// Accuracy returns the approximate exact match fraction of the clustering
// against true labels, after assigning each cluster its majority label.
func (k *KMeans) Accuracy(x [][]float64, y []int) (float64, error) {
	assignments, err := k.Assign(x)
	if err != nil {
		return 0, err
	}
	vote := VoteLabels(assignments, y, k.clusters)
	predicted := make([]int, len(assignments))
	for i, c := range assignments {
		predicted[i] = vote[c]
	}
	return model.Accuracy(predicted, y), nil
}

// VoteLabels maps every cluster index to the most frequent true label among
// the points assigned to it. A cluster with no members maps to -1, so points
// routed through it never match a true label by accident. Ties resolve to the
// smallest label.
func VoteLabels(assignments []int, labels []int, clusters int) map[int]int {
	counts := make(map[int]map[int]int, clusters)
	for i, c := range assignments {
		if _, ok := counts[c]; !ok {
			counts[c] = make(map[int]int)
		}
		counts[c][labels[i]]++
	}

	vote := make(map[int]int, clusters)
	for c := 0; c < clusters; c++ {
		vote[c] = -1
		if len(counts[c]) == 0 {
			log.Warn().Int("cluster", c).Msg("no members for cluster")
			continue
		}
		best := -1
		for label, count := range counts[c] {
			if best < 0 || count > counts[c][best] || (count == counts[c][best] && label < best) {
				best = label
			}
		}
		vote[c] = best
	}
	return vote
}

// distortion is the summed squared distance of every point to the mean of
// its assigned cluster.
func distortion(x [][]float64, assignments []int, clusters int) float64 {
	if len(x) == 0 || len(assignments) != len(x) {
		return math.MaxFloat64
	}
	dim := len(x[0])

	means := make([][]float64, clusters)
	sizes := make([]int, clusters)
	for i := range means {
		means[i] = make([]float64, dim)
	}
	for i, c := range assignments {
		for j, v := range x[i] {
			means[c][j] += v
		}
		sizes[c]++
	}
	for c := range means {
		if sizes[c] == 0 {
			continue
		}
		for j := range means[c] {
			means[c][j] /= float64(sizes[c])
		}
	}

	sum := 0.0
	for i, c := range assignments {
		for j, v := range x[i] {
			d := v - means[c][j]
			sum += d * d
		}
	}
	return sum
}

package model

import (
	"errors"
	"fmt"
)

var (
	// DataUnavailableErr signals the bundled dataset could not be located or decoded.
	DataUnavailableErr = errors.New("data unavailable")
	// InvalidConfigurationErr signals a pipeline parameter out of its allowed range.
	InvalidConfigurationErr = errors.New("invalid configuration")
)

// Dataset is an ordered collection of feature vectors with their class labels.
// All feature vectors share the same dimension.
type Dataset struct {
	X [][]float64 `json:"x"`
	Y []int       `json:"y"`
}

// NewDataset creates a dataset of the given capacity.
func NewDataset(n int) Dataset {
	return Dataset{
		X: make([][]float64, 0, n),
		Y: make([]int, 0, n),
	}
}

// Append adds a sample to the dataset.
func (d *Dataset) Append(x []float64, y int) {
	d.X = append(d.X, x)
	d.Y = append(d.Y, y)
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.X)
}

// Dim returns the feature dimension, or 0 for an empty dataset.
func (d Dataset) Dim() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Validate checks the dataset invariants, rectangular features and aligned labels.
func (d Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("features and labels misaligned [ %d | %d ]", len(d.X), len(d.Y))
	}
	dim := d.Dim()
	for i, x := range d.X {
		if len(x) != dim {
			return fmt.Errorf("sample %d has dimension %d instead of %d", i, len(x), dim)
		}
	}
	return nil
}

// Split is a disjoint partition of a dataset into train and test subsets.
type Split struct {
	Train Dataset
	Test  Dataset
}

// Classifier maps a point to a class label.
type Classifier interface {
	Predict(x []float64) (int, error)
}

// Clusterer maps a point to a cluster index.
type Clusterer interface {
	Cluster(x []float64) (int, error)
}

// Accuracy returns the exact match fraction of predicted against true labels.
func Accuracy(predicted, truth []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	match := 0
	for i := range truth {
		if predicted[i] == truth[i] {
			match++
		}
	}
	return float64(match) / float64(len(truth))
}

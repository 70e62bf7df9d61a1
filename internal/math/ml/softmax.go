package ml

import (
	"fmt"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"

	"github.com/akoutsou/digiteval/internal/model"
)

const learningRate = 1e-2

// Softmax wraps a multinomial logistic classifier.
type Softmax struct {
	classes    int
	iterations int
	model      *linear.Softmax
}

// NewSoftmax creates a classifier for the given number of classes.
// The iteration cap bounds the optimization, running out of iterations is
// tolerated and leaves the parameters at their last state.
func NewSoftmax(classes int, iterations int) *Softmax {
	return &Softmax{
		classes:    classes,
		iterations: iterations,
	}
}

// Train fits the classifier on the given training set.
func (s *Softmax) Train(ds model.Dataset) error {
	y := make([]float64, ds.Len())
	for i, label := range ds.Y {
		y[i] = float64(label)
	}
	s.model = linear.NewSoftmax(base.BatchGA, learningRate, 0, s.classes, s.iterations, ds.X, y)
	if err := s.model.Learn(); err != nil {
		return fmt.Errorf("could not train softmax: %w", err)
	}
	return nil
}

// Predict returns the most probable class for the given point.
func (s *Softmax) Predict(x []float64) (int, error) {
	if s.model == nil {
		return 0, fmt.Errorf("no model present")
	}
	probs, err := s.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best, nil
}

// Accuracy returns the exact match fraction of the classifier on held out data.
func (s *Softmax) Accuracy(ds model.Dataset) (float64, error) {
	predicted := make([]int, ds.Len())
	for i, x := range ds.X {
		label, err := s.Predict(x)
		if err != nil {
			return 0, err
		}
		predicted[i] = label
	}
	return model.Accuracy(predicted, ds.Y), nil
}

package data

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/akoutsou/digiteval/internal/model"
)

// SplitData partitions the dataset into disjoint train and test subsets with
// a seeded shuffle-then-cut. The same seed and fraction always produce the
// same partition for a fixed input ordering. Stratification is not attempted.
func SplitData(ds model.Dataset, testFraction float64, seed uint64) (model.Split, error) {
	if testFraction <= 0 || testFraction >= 1 {
		return model.Split{}, fmt.Errorf("test fraction %v outside (0,1): %w", testFraction, model.InvalidConfigurationErr)
	}

	n := ds.Len()
	cut := int(math.Round(float64(n) * testFraction))

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	split := model.Split{
		Train: model.NewDataset(n - cut),
		Test:  model.NewDataset(cut),
	}
	for i, idx := range perm {
		if i < cut {
			split.Test.Append(ds.X[idx], ds.Y[idx])
		} else {
			split.Train.Append(ds.X[idx], ds.Y[idx])
		}
	}
	return split, nil
}

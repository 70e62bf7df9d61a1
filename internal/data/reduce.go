package data

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/akoutsou/digiteval/internal/buffer"
	"github.com/akoutsou/digiteval/internal/model"
)

// Reduce projects the dataset onto its leading principal components and
// standardizes every projected coordinate to zero mean and unit variance.
// Projection and scaling are both fit on the full dataset, so train and test
// coordinates stay directly comparable across models and charts.
// A coordinate with zero spread standardizes to 0.
func Reduce(ds model.Dataset, components int) (model.Dataset, error) {
	if err := ds.Validate(); err != nil {
		return model.Dataset{}, fmt.Errorf("could not reduce: %w", err)
	}

	n := ds.Len()
	dim := ds.Dim()
	if components < 1 || components > dim {
		return model.Dataset{}, fmt.Errorf("components %d out of range [ 1 | %d ]: %w", components, dim, model.InvalidConfigurationErr)
	}

	flat := make([]float64, 0, n*dim)
	for _, x := range ds.X {
		flat = append(flat, x...)
	}
	m := mat.NewDense(n, dim, flat)

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return model.Dataset{}, fmt.Errorf("could not fit projection on %dx%d input", n, dim)
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)

	var proj mat.Dense
	proj.Mul(m, vec.Slice(0, dim, 0, components))

	sc := buffer.NewStatsCollector(components)
	for i := 0; i < n; i++ {
		sc.Push(proj.RawRowView(i)...)
	}

	out := model.NewDataset(n)
	for i := 0; i < n; i++ {
		x := make([]float64, components)
		for j := 0; j < components; j++ {
			v := proj.At(i, j) - sc.Stats(j).Avg()
			if std := sc.Stats(j).StDev(); std > 0 {
				v /= std
			} else {
				v = 0
			}
			x[j] = v
		}
		out.Append(x, ds.Y[i])
	}
	return out, nil
}

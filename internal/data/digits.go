package data

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/akoutsou/digiteval/internal/model"
)

//go:embed digits.csv.gz
var digitsBlob []byte

const (
	// Samples is the size of the bundled digits dataset.
	Samples = 1797
	// Features is the raw feature dimension, one intensity per pixel of the 8x8 grid.
	Features = 64
	// Classes is the number of digit classes.
	Classes = 10
)

// Load decodes the bundled handwritten digits dataset.
// Each record carries 64 pixel intensities followed by the digit label.
func Load() (model.Dataset, error) {
	gz, err := gzip.NewReader(bytes.NewReader(digitsBlob))
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not open bundled dataset %s: %w", err.Error(), model.DataUnavailableErr)
	}
	defer gz.Close()

	reader := csv.NewReader(gz)
	reader.FieldsPerRecord = Features + 1

	records, err := reader.ReadAll()
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not read bundled dataset %s: %w", err.Error(), model.DataUnavailableErr)
	}

	if len(records) != Samples {
		return model.Dataset{}, fmt.Errorf("bundled dataset has %d samples instead of %d: %w", len(records), Samples, model.DataUnavailableErr)
	}

	ds := model.NewDataset(len(records))
	for i, record := range records {
		x := make([]float64, Features)
		for j := 0; j < Features; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return model.Dataset{}, fmt.Errorf("could not parse sample %d %s: %w", i, err.Error(), model.DataUnavailableErr)
			}
			x[j] = v
		}
		y, err := strconv.Atoi(record[Features])
		if err != nil || y < 0 || y >= Classes {
			return model.Dataset{}, fmt.Errorf("could not parse label of sample %d '%s': %w", i, record[Features], model.DataUnavailableErr)
		}
		ds.Append(x, y)
	}
	return ds, nil
}

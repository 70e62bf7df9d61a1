package eval

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akoutsou/digiteval/internal/data"
	"github.com/akoutsou/digiteval/internal/math/ml"
	"github.com/akoutsou/digiteval/internal/model"
)

// Config carries the pipeline parameters.
type Config struct {
	Components   int
	TestFraction float64
	Seed         uint64
	Clusters     int
	Iterations   int
}

// NewConfig returns the default pipeline configuration.
func NewConfig() Config {
	return Config{
		Components:   2,
		TestFraction: 0.3,
		Seed:         42,
		Clusters:     10,
		Iterations:   1000,
	}
}

// Source provides the raw dataset for an evaluation.
type Source func() (model.Dataset, error)

// Result holds the outcome of one evaluation run.
type Result struct {
	ID          string
	Time        time.Time
	Samples     int
	Train       int
	Test        int
	Classes     int
	Components  int
	Classifier  float64
	Clusterer   float64
	Assignments []int
}

// Evaluation drives the pipeline, load, reduce, split, train both models,
// score both models. Stages run in order, any failure propagates unchanged.
type Evaluation struct {
	cfg    Config
	source Source

	reduced    model.Dataset
	split      model.Split
	classifier *ml.Softmax
	clusterer  *ml.KMeans

	res Result
}

// New creates an evaluation over the bundled digits dataset.
func New(cfg Config) *Evaluation {
	return NewWithSource(cfg, data.Load)
}

// NewWithSource creates an evaluation over the given dataset source.
func NewWithSource(cfg Config, source Source) *Evaluation {
	return &Evaluation{
		cfg:    cfg,
		source: source,
		res: Result{
			ID:   uuid.New().String(),
			Time: time.Now(),
		},
	}
}

// Load pulls the raw dataset, reduces it and splits it.
func (e *Evaluation) Load() error {
	raw, err := e.source()
	if err != nil {
		return err
	}

	reduced, err := data.Reduce(raw, e.cfg.Components)
	if err != nil {
		return err
	}

	split, err := data.SplitData(reduced, e.cfg.TestFraction, e.cfg.Seed)
	if err != nil {
		return err
	}

	e.reduced = reduced
	e.split = split
	e.res.Samples = reduced.Len()
	e.res.Train = split.Train.Len()
	e.res.Test = split.Test.Len()
	e.res.Classes = classes(reduced)
	e.res.Components = e.cfg.Components

	log.Info().
		Str("id", e.res.ID).
		Int("samples", e.res.Samples).
		Int("train", e.res.Train).
		Int("test", e.res.Test).
		Int("components", e.res.Components).
		Msg("dataset ready")
	return nil
}

// TrainClassifier fits the supervised model on the training subset and
// scores it on the held out subset.
func (e *Evaluation) TrainClassifier() (float64, error) {
	if e.reduced.Len() == 0 {
		return 0, fmt.Errorf("no dataset loaded")
	}

	e.classifier = ml.NewSoftmax(e.res.Classes, e.cfg.Iterations)
	if err := e.classifier.Train(e.split.Train); err != nil {
		return 0, err
	}

	acc, err := e.classifier.Accuracy(e.split.Test)
	if err != nil {
		return 0, err
	}
	e.res.Classifier = acc

	log.Info().Str("id", e.res.ID).Float64("accuracy", acc).Msg("classifier trained")
	return acc, nil
}

// TrainClusterer fits the unsupervised model on the training features only
// and scores it on the same points through the majority vote label map.
func (e *Evaluation) TrainClusterer() (float64, error) {
	if e.reduced.Len() == 0 {
		return 0, fmt.Errorf("no dataset loaded")
	}

	e.clusterer = ml.NewKMeans(e.cfg.Clusters, e.cfg.Iterations, int64(e.cfg.Seed))
	if err := e.clusterer.Train(e.split.Train.X); err != nil {
		return 0, err
	}

	acc, err := e.clusterer.Accuracy(e.split.Train.X, e.split.Train.Y)
	if err != nil {
		return 0, err
	}
	e.res.Clusterer = acc

	log.Info().Str("id", e.res.ID).Float64("accuracy", acc).Msg("clusterer trained")
	return acc, nil
}

// Label assigns every sample of the full reduced dataset to its cluster.
func (e *Evaluation) Label() ([]int, error) {
	if e.clusterer == nil {
		return nil, fmt.Errorf("no model present")
	}
	assignments, err := e.clusterer.Assign(e.reduced.X)
	if err != nil {
		return nil, err
	}
	e.res.Assignments = assignments
	return assignments, nil
}

// Run executes every stage in order and returns the collected result.
func (e *Evaluation) Run() (Result, error) {
	if err := e.Load(); err != nil {
		return Result{}, err
	}
	if _, err := e.TrainClassifier(); err != nil {
		return Result{}, err
	}
	if _, err := e.TrainClusterer(); err != nil {
		return Result{}, err
	}
	if _, err := e.Label(); err != nil {
		return Result{}, err
	}
	return e.res, nil
}

// Result returns the state collected so far.
func (e *Evaluation) Result() Result {
	return e.res
}

// Reduced returns the reduced standardized dataset.
func (e *Evaluation) Reduced() model.Dataset {
	return e.reduced
}

// Models returns the trained models for chart rendering.
func (e *Evaluation) Models() (model.Classifier, model.Clusterer) {
	return e.classifier, e.clusterer
}

func classes(ds model.Dataset) int {
	max := 0
	for _, y := range ds.Y {
		if y > max {
			max = y
		}
	}
	return max + 1
}

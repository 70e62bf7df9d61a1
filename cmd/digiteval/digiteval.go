package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/akoutsou/digiteval/internal/chart"
	"github.com/akoutsou/digiteval/internal/eval"
	"github.com/akoutsou/digiteval/internal/storage"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {
	dir := storage.DefaultDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	out, err := storage.NewOutput(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("could not create output directory")
	}

	cfg := eval.NewConfig()
	ev := eval.New(cfg)

	banner := strings.Repeat("=", 100)
	fmt.Println(banner)
	fmt.Println("Digit classification algorithm comparison")
	fmt.Println(banner)

	fmt.Println("\n[1/6] Loading dataset...")
	if err := ev.Load(); err != nil {
		log.Fatal().Err(err).Msg("could not load dataset")
	}
	res := ev.Result()
	fmt.Printf("loaded %d samples\n", res.Samples)
	fmt.Printf("  - training set: %d samples\n", res.Train)
	fmt.Printf("  - test set: %d samples\n", res.Test)

	fmt.Println("\n[2/6] Training softmax regression...")
	accLR, err := ev.TrainClassifier()
	if err != nil {
		log.Fatal().Err(err).Msg("could not train classifier")
	}
	fmt.Printf("softmax regression accuracy: %.3f (%.1f%%)\n", accLR, accLR*100)

	fmt.Println("\n[3/6] Training k-means...")
	accKM, err := ev.TrainClusterer()
	if err != nil {
		log.Fatal().Err(err).Msg("could not train clusterer")
	}
	fmt.Printf("approximate k-means accuracy: %.3f (%.1f%%)\n", accKM, accKM*100)

	assignments, err := ev.Label()
	if err != nil {
		log.Fatal().Err(err).Msg("could not label dataset")
	}
	res = ev.Result()

	fmt.Println("\n[4/6] Rendering charts...")
	classifier, clusterer := ev.Models()
	reduced := ev.Reduced()

	boundariesPath := out.Path(storage.Key{Stamp: res.Time, Label: "classification_comparison", Ext: "png"})
	scatterPath := out.Path(storage.Key{Stamp: res.Time, Label: "clusters_scatter", Ext: "png"})
	simplePath := out.Path(storage.Key{Stamp: res.Time, Label: "clusters_simple", Ext: "png"})

	boundaries, err := chart.Boundaries(classifier, clusterer, reduced, res.Classes, cfg.Clusters)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build boundaries chart")
	}
	if err := chart.Save(boundaries, boundariesPath, nil); err != nil {
		log.Fatal().Err(err).Msg("could not save boundaries chart")
	}

	scatter, err := chart.ClusterScatter(assignments, reduced, cfg.Clusters)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build cluster scatter chart")
	}
	if err := chart.Save(scatter, scatterPath, nil); err != nil {
		log.Fatal().Err(err).Msg("could not save cluster scatter chart")
	}

	simple, err := chart.SimpleClusters(assignments, reduced)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build simple clusters chart")
	}
	if err := chart.Save(simple, simplePath, nil); err != nil {
		log.Fatal().Err(err).Msg("could not save simple clusters chart")
	}

	fmt.Println("\n[5/6] Saving results...")
	reportPath, err := out.Write(
		storage.Key{Stamp: res.Time, Label: "results", Ext: "txt"},
		[]byte(eval.Report(res, boundariesPath)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("could not save report")
	}
	fmt.Printf("results saved to: %s\n", reportPath)

	fmt.Println("\n[6/6] Done.")
	fmt.Println("\n" + banner)
	fmt.Println("Run finished successfully")
	fmt.Println(banner)
	fmt.Println("\nSaved files:")
	fmt.Printf("  - boundaries chart: %s\n", boundariesPath)
	fmt.Printf("  - cluster scatter:  %s\n", scatterPath)
	fmt.Printf("  - simple clusters:  %s\n", simplePath)
	fmt.Printf("  - results:          %s\n", reportPath)
}

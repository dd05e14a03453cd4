package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/renderer"
	"github.com/df07/go-raytracer-kernel/pkg/scene"
	"github.com/df07/go-raytracer-kernel/pkg/transform"
)

func main() {
	// Parse command line flags
	shape := flag.String("shape", "sphere", "Object transform: 'sphere', 'squash-y', 'squash-x', 'rotate-squash', 'shear' or 'pair'")
	resolution := flag.Int("resolution", 40, "Wall cells along each edge")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	verbose := flag.Bool("verbose", false, "Log progress to stdout")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Silhouette")
		fmt.Println("Usage: silhouette [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	var logger core.Logger = core.NewDiscardLogger()
	if *verbose {
		logger = core.NewDefaultLogger()
	}

	sc, err := createScene(*shape, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultSilhouetteConfig()
	config.Resolution = *resolution
	config.NumWorkers = *workers

	sil, err := renderer.RenderSilhouette(context.Background(), sc, config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error casting silhouette: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(sil.String())
	stats := sil.Stats()
	fmt.Printf("Coverage: %.1f%% of %d cells\n", stats.Coverage*100, stats.TotalCells)
}

// createScene builds a scene whose spheres are placed according to shape
func createScene(shape string, logger core.Logger) (*scene.Scene, error) {
	sc := scene.New(logger)

	var placements []transform.Transform
	switch shape {
	case "sphere":
		placements = []transform.Transform{transform.Identity()}
	case "squash-y":
		placements = []transform.Transform{transform.NewScaling(1, 0.5, 1)}
	case "squash-x":
		placements = []transform.Transform{transform.NewScaling(0.5, 1, 1)}
	case "rotate-squash":
		placements = []transform.Transform{transform.Chain(
			transform.NewRotationZ(math.Pi/4),
			transform.NewScaling(0.5, 1, 1),
		)}
	case "shear":
		placements = []transform.Transform{transform.Chain(
			transform.NewShear(1, 0, 0, 0, 0, 0),
			transform.NewScaling(0.5, 1, 1),
		)}
	case "pair":
		placements = []transform.Transform{
			transform.Chain(transform.NewTranslation(-1, 0, 0), transform.NewScaling(0.5, 0.5, 0.5)),
			transform.Chain(transform.NewTranslation(1, 0, 0), transform.NewScaling(0.5, 0.5, 0.5)),
		}
	default:
		return nil, fmt.Errorf("unknown shape: %q", shape)
	}

	for _, placement := range placements {
		id := sc.NewSphere()
		if err := sc.SetTransform(id, placement); err != nil {
			return nil, fmt.Errorf("failed to place sphere: %w", err)
		}
	}
	return sc, nil
}

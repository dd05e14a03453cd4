package renderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/geometry"
	"github.com/df07/go-raytracer-kernel/pkg/math"
)

// ErrInvalidConfig is returned when a SilhouetteConfig cannot be rendered
var ErrInvalidConfig = errors.New("invalid silhouette config")

// Intersector is anything a ray can be cast into
type Intersector interface {
	Intersect(ray math.Ray) geometry.Intersections
}

// SilhouetteConfig describes a square wall behind the scene. One ray is cast
// from the eye through the center of every wall cell.
type SilhouetteConfig struct {
	Eye        math.Point // Origin of every ray
	WallZ      float64    // Wall lies in the plane z = WallZ
	WallSize   float64    // Edge length of the wall in world units
	Resolution int        // Cells along each edge of the wall
	NumWorkers int        // Number of parallel workers (0 = use CPU count)
}

// DefaultSilhouetteConfig frames a unit sphere at the origin
func DefaultSilhouetteConfig() SilhouetteConfig {
	return SilhouetteConfig{
		Eye:        math.NewPoint(0, 0, -5),
		WallZ:      10,
		WallSize:   7,
		Resolution: 40,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Validate checks that the configuration describes a usable wall
func (c SilhouetteConfig) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %d must be positive", ErrInvalidConfig, c.Resolution)
	}
	if c.WallSize <= 0 {
		return fmt.Errorf("%w: wall size %f must be positive", ErrInvalidConfig, c.WallSize)
	}
	if c.WallZ == c.Eye.Z {
		return fmt.Errorf("%w: wall at z=%f contains the eye", ErrInvalidConfig, c.WallZ)
	}
	return nil
}

// Cell is the outcome of the ray cast through one wall cell
type Cell struct {
	Hit    bool
	Object geometry.ObjectID // Nearest object hit, valid when Hit is set
	T      float64           // Distance to the nearest hit
}

// Silhouette holds one Cell per wall cell, row 0 at the top of the wall
type Silhouette struct {
	Resolution int
	Cells      [][]Cell
}

// rowCaster maps wall cells to rays and casts them into the scene
type rowCaster struct {
	scene  Intersector
	config SilhouetteConfig
}

// cellRay returns the ray through the center of cell (x, y). x grows to the
// right and y grows downwards, so cell coordinates truncate to pixel indices.
func (rc *rowCaster) cellRay(x, y int) math.Ray {
	cellSize := rc.config.WallSize / float64(rc.config.Resolution)
	half := rc.config.WallSize / 2

	worldX := -half + cellSize*(float64(x)+0.5)
	worldY := half - cellSize*(float64(y)+0.5)
	target := math.NewPoint(worldX, worldY, rc.config.WallZ)

	return math.NewRay(rc.config.Eye, target.Subtract(rc.config.Eye).Normalize())
}

// CastRow casts every cell of row y, stopping early once ctx is done
func (rc *rowCaster) CastRow(ctx context.Context, y int) ([]Cell, error) {
	cells := make([]Cell, rc.config.Resolution)
	for x := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		xs := rc.scene.Intersect(rc.cellRay(x, y))
		if hit, ok := xs.Hit(); ok {
			cells[x] = Cell{Hit: true, Object: hit.Object, T: hit.T}
		}
	}
	return cells, nil
}

// RenderSilhouette casts one ray per wall cell and records which object, if
// any, each ray meets first. Rows are spread across a worker pool.
func RenderSilhouette(ctx context.Context, scene Intersector, config SilhouetteConfig, logger core.Logger) (*Silhouette, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NewDiscardLogger()
	}

	caster := &rowCaster{scene: scene, config: config}
	pool := NewWorkerPool(caster, config.Resolution, config.NumWorkers)

	logger.Printf("Casting %dx%d silhouette (using %d workers)...\n",
		config.Resolution, config.Resolution, pool.GetNumWorkers())
	startTime := time.Now()

	pool.Start(ctx)
	for row := 0; row < config.Resolution; row++ {
		pool.SubmitTask(RowTask{Row: row, TaskID: row})
	}
	defer pool.Stop()

	result := &Silhouette{
		Resolution: config.Resolution,
		Cells:      make([][]Cell, config.Resolution),
	}
	for i := 0; i < config.Resolution; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rowResult, ok := pool.GetResult()
		if !ok {
			return nil, fmt.Errorf("worker pool closed unexpectedly")
		}
		if rowResult.Error != nil {
			return nil, fmt.Errorf("row %d: %w", rowResult.Row, rowResult.Error)
		}
		result.Cells[rowResult.Row] = rowResult.Cells
	}

	logger.Printf("Silhouette completed in %v\n", time.Since(startTime))
	return result, nil
}

// At returns the cell at column x, row y
func (s *Silhouette) At(x, y int) Cell {
	return s.Cells[y][x]
}

// String draws hits as '#' and misses as '.', one line per row
func (s *Silhouette) String() string {
	var sb strings.Builder
	for _, row := range s.Cells {
		for _, cell := range row {
			if cell.Hit {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

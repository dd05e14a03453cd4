package renderer

import "github.com/df07/go-raytracer-kernel/pkg/geometry"

// SilhouetteStats summarizes a silhouette
type SilhouetteStats struct {
	TotalCells int                       // Number of rays cast
	HitCells   int                       // Rays that met an object in front of the eye
	Coverage   float64                   // HitCells / TotalCells
	PerObject  map[geometry.ObjectID]int // Cells in which each object was nearest
}

// Stats counts hits across the whole silhouette
func (s *Silhouette) Stats() SilhouetteStats {
	stats := SilhouetteStats{PerObject: make(map[geometry.ObjectID]int)}
	for _, row := range s.Cells {
		for _, cell := range row {
			stats.TotalCells++
			if cell.Hit {
				stats.HitCells++
				stats.PerObject[cell.Object]++
			}
		}
	}
	if stats.TotalCells > 0 {
		stats.Coverage = float64(stats.HitCells) / float64(stats.TotalCells)
	}
	return stats
}

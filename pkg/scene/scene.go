package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/geometry"
	"github.com/df07/go-raytracer-kernel/pkg/math"
	"github.com/df07/go-raytracer-kernel/pkg/transform"
)

// ErrUnknownObject is returned for identities this scene never issued
var ErrUnknownObject = errors.New("unknown object")

// ErrSingularTransform is returned when an object transform cannot be inverted
var ErrSingularTransform = geometry.ErrSingularTransform

// Scene owns every sphere it creates. Objects are stored by value in
// allocation order and referred to from outside by their ObjectID.
type Scene struct {
	mu      sync.RWMutex
	spheres []geometry.Sphere // index == ObjectID
	logger  core.Logger
}

// New creates an empty scene. A nil logger discards output.
func New(logger core.Logger) *Scene {
	if logger == nil {
		logger = core.NewDiscardLogger()
	}
	return &Scene{logger: logger}
}

// NewSphere allocates a unit sphere and returns its identity. Identities are
// issued sequentially from 0 and never reused.
func (s *Scene) NewSphere() geometry.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := geometry.ObjectID(len(s.spheres))
	s.spheres = append(s.spheres, geometry.NewSphere(id))
	s.logger.Printf("scene: allocated sphere %d\n", id)
	return id
}

// Sphere returns a copy of the sphere with the given identity
func (s *Scene) Sphere(id geometry.ObjectID) (geometry.Sphere, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if uint64(id) >= uint64(len(s.spheres)) {
		return geometry.Sphere{}, false
	}
	return s.spheres[id], true
}

// SetTransform places the sphere in the world. The transform must be invertible.
func (s *Scene) SetTransform(id geometry.ObjectID, t transform.Transform) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uint64(id) >= uint64(len(s.spheres)) {
		return fmt.Errorf("set transform on sphere %d: %w", id, ErrUnknownObject)
	}
	updated, err := s.spheres[id].WithTransform(t)
	if err != nil {
		s.logger.Printf("scene: rejected %s transform for sphere %d\n", t.Kind(), id)
		return fmt.Errorf("set transform on sphere %d: %w", id, err)
	}
	s.spheres[id] = updated
	return nil
}

// Len returns the number of spheres allocated so far
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spheres)
}

// Intersect tests the ray against every sphere and returns all
// intersections sorted by distance
func (s *Scene) Intersect(ray math.Ray) geometry.Intersections {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var xs geometry.Intersections
	for _, sphere := range s.spheres {
		xs = xs.Add(sphere.Intersect(ray))
	}
	return xs
}

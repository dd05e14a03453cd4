package scene

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/df07/go-raytracer-kernel/pkg/geometry"
	mathpkg "github.com/df07/go-raytracer-kernel/pkg/math"
	"github.com/df07/go-raytracer-kernel/pkg/transform"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestScene_SequentialIdentities(t *testing.T) {
	s := New(nil)

	a := s.NewSphere()
	b := s.NewSphere()
	c := s.NewSphere()

	if a != 0 || b != 1 || c != 2 {
		t.Errorf("Expected identities 0, 1, 2, got %d, %d, %d", a, b, c)
	}
	if a == b || b == c || a == c {
		t.Error("Expected pairwise distinct identities")
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 spheres, got %d", s.Len())
	}

	for _, id := range []geometry.ObjectID{a, b, c} {
		sphere, ok := s.Sphere(id)
		if !ok {
			t.Fatalf("Expected sphere %d to exist", id)
		}
		if sphere.ID() != id {
			t.Errorf("Expected sphere to carry id %d, got %d", id, sphere.ID())
		}
	}
}

func TestScene_IdentitiesArePerScene(t *testing.T) {
	first := New(nil)
	second := New(nil)

	first.NewSphere()
	first.NewSphere()

	if id := second.NewSphere(); id != 0 {
		t.Errorf("Expected a fresh scene to start at 0, got %d", id)
	}
}

func TestScene_UnknownObject(t *testing.T) {
	s := New(nil)
	s.NewSphere()

	if _, ok := s.Sphere(1); ok {
		t.Error("Expected lookup of an unissued identity to fail")
	}
	err := s.SetTransform(5, transform.NewScaling(2, 2, 2))
	if !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Expected ErrUnknownObject, got %v", err)
	}
}

func TestScene_SetTransform(t *testing.T) {
	logger := &recordingLogger{}
	s := New(logger)
	id := s.NewSphere()

	if err := s.SetTransform(id, transform.NewTranslation(0, 0, 10)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sphere, _ := s.Sphere(id)
	if sphere.Transform().Kind() != transform.Translation {
		t.Errorf("Expected translation kind, got %v", sphere.Transform().Kind())
	}

	err := s.SetTransform(id, transform.NewScaling(1, 0, 1))
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("Expected ErrSingularTransform, got %v", err)
	}
	sphere, _ = s.Sphere(id)
	if sphere.Transform().Kind() != transform.Translation {
		t.Error("Expected rejected transform to leave the sphere unchanged")
	}

	if len(logger.lines) != 2 {
		t.Errorf("Expected allocation and rejection to be logged, got %q", logger.lines)
	}
}

func TestScene_Intersect(t *testing.T) {
	s := New(nil)
	near := s.NewSphere()
	far := s.NewSphere()
	if err := s.SetTransform(far, transform.NewTranslation(0, 0, 10)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	aside := s.NewSphere()
	if err := s.SetTransform(aside, transform.NewTranslation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := mathpkg.NewRay(mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 1))
	xs := s.Intersect(ray)

	expected := []geometry.Intersection{
		{T: 4, Object: near},
		{T: 6, Object: near},
		{T: 14, Object: far},
		{T: 16, Object: far},
	}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %v", len(expected), xs)
	}
	for i := range expected {
		if !xs[i].Equal(expected[i]) {
			t.Errorf("Expected %v at %d, got %v", expected[i], i, xs[i])
		}
	}

	hit, ok := xs.Hit()
	if !ok || hit.Object != near {
		t.Errorf("Expected nearest hit on sphere %d, got %v", near, hit)
	}
}

func TestScene_ConcurrentAllocation(t *testing.T) {
	s := New(nil)
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan geometry.ObjectID, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- s.NewSphere()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[geometry.ObjectID]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("Identity %d issued twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker || s.Len() != workers*perWorker {
		t.Errorf("Expected %d distinct identities, got %d", workers*perWorker, len(seen))
	}
}

func TestScene_MissingSphereIsUsable(t *testing.T) {
	s := New(nil)
	sphere, ok := s.Sphere(3)
	if ok {
		t.Fatal("Expected lookup of an unissued identity to fail")
	}

	ray := mathpkg.NewRay(mathpkg.NewPoint(0, 2, -5), mathpkg.NewVector(0, 0, 1))
	if got := sphere.Intersect(ray); !got.IsMiss() {
		t.Errorf("Expected miss, got %v", got)
	}
}

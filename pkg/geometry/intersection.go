package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Intersection is a hit distance along a ray labelled with the object that was hit
type Intersection struct {
	T      float64  // Parameter t along the ray
	Object ObjectID // Object that was hit
}

// Interaction is the outcome of intersecting a ray with one object:
// either a collision with an ordered pair of intersections, or a miss.
type Interaction struct {
	hits [2]Intersection
	hit  bool
}

// Collision reports a ray entering and leaving an object, nearest first
func Collision(first, second Intersection) Interaction {
	return Interaction{hits: [2]Intersection{first, second}, hit: true}
}

// Miss reports a ray that does not meet the object
func Miss() Interaction {
	return Interaction{}
}

// IsMiss reports whether the ray missed the object
func (i Interaction) IsMiss() bool {
	return !i.hit
}

// Intersections returns the ordered pair of intersections of a collision.
// ok is false for a miss.
func (i Interaction) Intersections() (pair [2]Intersection, ok bool) {
	return i.hits, i.hit
}

// Equal compares two interactions, treating distances as equal to five decimal places
func (i Interaction) Equal(other Interaction) bool {
	if i.hit != other.hit {
		return false
	}
	if !i.hit {
		return true
	}
	for k := range i.hits {
		if !i.hits[k].Equal(other.hits[k]) {
			return false
		}
	}
	return true
}

func (i Interaction) String() string {
	if !i.hit {
		return "miss"
	}
	return fmt.Sprintf("collision[%g %g]", i.hits[0].T, i.hits[1].T)
}

// Equal compares object identity exactly and distance to five decimal places
func (x Intersection) Equal(other Intersection) bool {
	return x.Object == other.Object && core.ApproxEqual(x.T, other.T)
}

// Intersections is a list of intersections sorted by ascending t
type Intersections []Intersection

// NewIntersections collects intersections into a sorted list
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.sort()
	return result
}

// Add returns a new sorted list holding xs and the interaction's intersections.
// xs itself is never modified. Misses add nothing.
func (xs Intersections) Add(i Interaction) Intersections {
	pair, ok := i.Intersections()
	if !ok {
		return xs
	}
	out := make(Intersections, 0, len(xs)+2)
	out = append(out, xs...)
	out = append(out, pair[0], pair[1])
	out.sort()
	return out
}

func (xs Intersections) sort() {
	sort.SliceStable(xs, func(a, b int) bool {
		return xs[a].T < xs[b].T
	})
}

// Hit returns the nearest intersection in front of the ray origin (t >= 0)
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

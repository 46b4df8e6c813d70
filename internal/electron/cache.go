package electron

import "github.com/san-kum/atomsim/internal/atom"

type pathKey struct {
	radius float64
	plane  atom.Plane
}

func keyOf(o Orbit) pathKey { return pathKey{o.Radius, o.Plane} }

// PathCache memoizes guide paths by (radius, plane). Speed, color, label and
// time never affect the key. Returned slices are shared and must not be
// modified. Not safe for concurrent use.
type PathCache struct {
	paths  map[pathKey][]atom.Vec3
	builds int
}

func NewPathCache() *PathCache {
	return &PathCache{paths: make(map[pathKey][]atom.Vec3)}
}

// Path returns the guide for o, building it on first use of its key.
func (c *PathCache) Path(o Orbit) []atom.Vec3 {
	k := keyOf(o)
	if p, ok := c.paths[k]; ok {
		return p
	}
	p := o.Path()
	c.paths[k] = p
	c.builds++
	return p
}

// Retain drops every cached path not used by orbits and reports how many
// were evicted.
func (c *PathCache) Retain(orbits []Orbit) int {
	live := make(map[pathKey]struct{}, len(orbits))
	for _, o := range orbits {
		live[keyOf(o)] = struct{}{}
	}
	evicted := 0
	for k := range c.paths {
		if _, ok := live[k]; !ok {
			delete(c.paths, k)
			evicted++
		}
	}
	return evicted
}

// Invalidate forgets the path for o's key.
func (c *PathCache) Invalidate(o Orbit) {
	delete(c.paths, keyOf(o))
}

func (c *PathCache) Len() int { return len(c.paths) }

// Computations counts path builds since creation.
func (c *PathCache) Computations() int { return c.builds }

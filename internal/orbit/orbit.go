// Package orbit analyses maps of objects orbiting each other.
package orbit

import (
	"strings"

	"github.com/samber/lo"
)

const separator = ")"

// Map links every object to the center it directly orbits.
type Map struct {
	centers map[string]string
	depths  map[string]int
}

// Parse builds a map from lines of the form CENTER)OBJECT.
func Parse(lines []string) (*Map, error) {
	m := &Map{
		centers: make(map[string]string, len(lines)),
		depths:  make(map[string]int, len(lines)),
	}

	for i, text := range lines {
		center, object, ok := strings.Cut(strings.TrimSpace(text), separator)
		if !ok || center == "" || object == "" || strings.Contains(object, separator) {
			return nil, ErrMalformedOrbit{Line: i + 1, Text: text}
		}

		if _, exists := m.centers[object]; exists {
			return nil, ErrDoubleOrbit{Object: object}
		}

		m.centers[object] = center
	}

	for _, object := range lo.Keys(m.centers) {
		if _, err := m.depth(object); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// depth returns the number of direct and indirect orbits of object.
func (m *Map) depth(object string) (int, error) {
	var path []string

	cur := object
	base := 0

	for {
		if d, ok := m.depths[cur]; ok {
			base = d

			break
		}

		center, ok := m.centers[cur]
		if !ok {
			break
		}

		if lo.Contains(path, cur) {
			return 0, ErrCycle{Object: cur}
		}

		path = append(path, cur)
		cur = center
	}

	for i := len(path) - 1; i >= 0; i-- {
		base++
		m.depths[path[i]] = base
	}

	return m.depths[object], nil
}

// Checksum returns the total number of direct and indirect orbits.
func (m *Map) Checksum() int {
	return lo.Sum(lo.Values(m.depths))
}

// Transfers returns the minimum number of orbital transfers needed to move from
// the object from orbits to the object to orbits.
func (m *Map) Transfers(from, to string) (int, error) {
	src, ok := m.centers[from]
	if !ok {
		return 0, ErrUnknownObject{Object: from}
	}

	dst, ok := m.centers[to]
	if !ok {
		return 0, ErrUnknownObject{Object: to}
	}

	steps := make(map[string]int)
	for cur, n := src, 0; ; n++ {
		steps[cur] = n

		next, ok := m.centers[cur]
		if !ok {
			break
		}

		cur = next
	}

	for cur, n := dst, 0; ; n++ {
		if s, ok := steps[cur]; ok {
			return s + n, nil
		}

		next, ok := m.centers[cur]
		if !ok {
			break
		}

		cur = next
	}

	return 0, ErrNoPath{From: from, To: to}
}

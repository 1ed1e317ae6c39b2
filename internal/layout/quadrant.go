package layout

import "github.com/yourusername/placer-cli/internal/geometry"

// QuadrantTable holds the four fixed quarter-screen geometries in
// assignment order: south-east, north-east, south-west, north-west.
type QuadrantTable [4]geometry.UnitRect

// DefaultQuadrants is the standard quarter split of the usable screen.
var DefaultQuadrants = QuadrantTable{
	{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5}, // south-east
	{X: 0.5, Y: 0, Width: 0.5, Height: 0.5},   // north-east
	{X: 0, Y: 0.5, Width: 0.5, Height: 0.5},   // south-west
	{X: 0, Y: 0, Width: 0.5, Height: 0.5},     // north-west
}

// Quadrant returns the geometry for the i-th assigned window. Indexes
// wrap mod 4: a fifth terminal lands back on the south-east quarter and
// overlaps the first, which is accepted behavior.
func (q QuadrantTable) Quadrant(i int) geometry.UnitRect {
	return q[i%4]
}

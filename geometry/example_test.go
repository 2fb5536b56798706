package geometry_test

import (
	"fmt"

	"github.com/vkosev/mathengine/geometry"
)

// ExampleIntersectThreePlanes solves the corner of three axis-aligned walls.
func ExampleIntersectThreePlanes() {
	fx := geometry.NewPlane(1, 0, 0, -1) // x = 1
	fy := geometry.NewPlane(0, 1, 0, -2) // y = 2
	fz := geometry.NewPlane(0, 0, 1, -3) // z = 3

	p, ok := geometry.IntersectThreePlanes(fx, fy, fz)
	fmt.Printf("%v (%g, %g, %g)\n", ok, p.X, p.Y, p.Z)

	// Output:
	// true (1, 2, 3)
}

package vector_test

import (
	"fmt"

	"github.com/vkosev/mathengine/vector"
)

// ExampleVector3_Cross demonstrates the right-handed cross product.
func ExampleVector3_Cross() {
	x := vector.NewVector3(1, 0, 0)
	y := vector.NewVector3(0, 1, 0)

	z := x.Cross(y)
	fmt.Printf("(%g, %g, %g)\n", z.X, z.Y, z.Z)

	// Output:
	// (0, 0, 1)
}

// ExamplePoint3_Sub shows the affine rule: subtracting two positions
// yields a direction.
func ExamplePoint3_Sub() {
	p := vector.NewPoint3(1, 1, 1)
	q := vector.NewPoint3(4, 5, 6)

	v := q.Sub(p)
	fmt.Printf("direction (%g, %g, %g), length %g\n", v.X, v.Y, v.Z, v.Magnitude())

	// Output:
	// direction (3, 4, 5), length 7.071068
}

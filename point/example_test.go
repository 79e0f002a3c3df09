package point_test

import (
	"fmt"

	"github.com/katalvlaran/aoclib/point"
)

// ExamplePt_Neighbors lists the in-range neighbours of the top-left cell of a
// grid indexed with unsigned coordinates.
func ExamplePt_Neighbors() {
	for n := range point.New[uint](0, 0).Neighbors() {
		fmt.Println(n)
	}
	// Output:
	// (0, 1)
	// (1, 0)
}

// ExampleDir_Turn follows a ship that starts facing east and executes R, R, L.
func ExampleDir_Turn() {
	facing := point.E
	pos := point.New(0, 0)
	for _, t := range []point.Turn{point.R, point.R, point.L} {
		facing = facing.Turn(t)
		pos = pos.Move(facing, 10)
	}
	fmt.Println(facing, pos, pos.Manhattan(point.New(0, 0)))
	// Output: S (-10, 20) 30
}

func ExampleParse() {
	p, err := point.Parse[int]("(3, -2)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Add(point.New(1, 1)))
	// Output: (4, -1)
}

package object

import (
	"math/rand"
)

// Shape is the polygon an asteroid is drawn as. It also fixes base damage.
type Shape uint8

const (
	ShapeTriangle Shape = iota
	ShapeSquare
	ShapePentagon
)

var shapeTable = [...]struct {
	name       string
	sides      int
	baseDamage int
}{
	ShapeTriangle: {"TRIANGLE", 3, 5},
	ShapeSquare:   {"SQUARE", 4, 10},
	ShapePentagon: {"PENTAGON", 5, 15},
}

// Sides returns the polygon side count.
func (s Shape) Sides() int { return shapeTable[s].sides }

// BaseDamage returns the damage of a size-1 asteroid of this shape.
func (s Shape) BaseDamage() int { return shapeTable[s].baseDamage }

func (s Shape) String() string { return shapeTable[s].name }

// ShapeMode selects the shape of newly created asteroids.
type ShapeMode uint8

const (
	ShapeModeTriangle ShapeMode = iota
	ShapeModeSquare
	ShapeModePentagon
	ShapeModeRandom
)

// ShapeModeFromKey maps the number keys 1-4 to a mode.
func ShapeModeFromKey(n int) (ShapeMode, bool) {
	if n < 1 || n > 4 {
		return 0, false
	}
	return ShapeMode(n - 1), true
}

// Pick returns the shape for one new asteroid. Random mode draws uniformly.
func (m ShapeMode) Pick(rng *rand.Rand) Shape {
	if m == ShapeModeRandom {
		return Shape(rng.Intn(len(shapeTable)))
	}
	return Shape(m)
}

func (m ShapeMode) String() string {
	if m == ShapeModeRandom {
		return "RANDOM"
	}
	return Shape(m).String()
}

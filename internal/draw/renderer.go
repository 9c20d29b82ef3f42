// Package draw renders the game to a terminal using half-block pixels.
package draw

// Point represents a 2D point with floating-point coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Color identifies a palette entry. ColorNone is an unset pixel.
type Color uint8

// Palette colors used by the game.
const (
	ColorNone Color = iota
	ColorWhite
	ColorPink
	ColorGreen
	ColorRed
	ColorGray
	ColorYellow
	ColorCyan
	ColorOrange
)

// Sprite identifies a predefined image.
type Sprite uint8

const (
	// SpriteShip is the player ship, nose pointing up.
	SpriteShip Sprite = iota
)

//go:generate go tool mockgen -destination=mocks/mock_renderer.go -package=mocks . Renderer,Surface

// Renderer receives draw calls in logical (world) coordinates.
type Renderer interface {
	// DrawPolygon draws a regular polygon outline. The first vertex sits at
	// rotation degrees from the +X axis.
	DrawPolygon(center Point, sides int, radius, rotation float64, c Color)
	DrawCircle(center Point, radius float64, c Color)
	DrawRectangle(r Rect, c Color)
	DrawSprite(s Sprite, center Point, radius float64, c Color)
	// DrawText places text with its top-left corner at pos.
	DrawText(text string, pos Point, size int, c Color)
	// MeasureText returns the logical width of text drawn at size.
	MeasureText(text string, size int) float64
}

// Surface is a Renderer with frame boundaries.
type Surface interface {
	Renderer
	// Begin starts a frame, discarding everything drawn before.
	Begin()
	// End presents the frame.
	End() error
}

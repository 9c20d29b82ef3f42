package draw

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

// textItem is text queued for the overlay pass.
type textItem struct {
	col, row int
	text     string
	color    Color
}

// span is a run of cells covered by overlay text.
type span struct {
	col, row, width int
}

// TerminalSurface renders frames into a terminal: shapes go to a scaled
// half-block Canvas, text is overlaid after the canvas is flushed.
type TerminalSurface struct {
	out      *ChunkWriter
	w        io.Writer
	canvas   *Canvas
	palette  *Palette
	sizeFunc TermSizeFunc

	logicalWidth  float64
	logicalHeight float64
	termWidth     int
	termHeight    int
	needsClear    bool

	texts     []textItem
	lastSpans []span
}

// SurfaceOptions configures a TerminalSurface.
type SurfaceOptions struct {
	LogicalWidth  float64
	LogicalHeight float64
	TermSizeFunc  TermSizeFunc
	Profile       termenv.Profile
}

// NewTerminalSurface creates a surface that writes to w.
func NewTerminalSurface(w io.Writer, opts SurfaceOptions) *TerminalSurface {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &TerminalSurface{
		out:           NewChunkWriter(w, 0, 0),
		w:             w,
		canvas:        NewScaledCanvas(1, 1, opts.LogicalWidth, opts.LogicalHeight),
		palette:       NewPalette(w, opts.Profile),
		sizeFunc:      sizeFunc,
		logicalWidth:  opts.LogicalWidth,
		logicalHeight: opts.LogicalHeight,
		needsClear:    true,
	}
}

// Open prepares the terminal for drawing.
func (s *TerminalSurface) Open() {
	HideCursor(s.w)
	ClearScreen(s.w)
}

// Close restores the terminal.
func (s *TerminalSurface) Close() {
	ClearScreen(s.w)
	ShowCursor(s.w)
}

// Begin starts a frame. It picks up terminal resizes and clears the canvas.
func (s *TerminalSurface) Begin() {
	if w, h, err := s.sizeFunc(); err == nil && (w != s.termWidth || h != s.termHeight) {
		s.termWidth, s.termHeight = w, h
		renderW, renderH, offCol, offRow := FitTerm(w, h, s.logicalWidth, s.logicalHeight)
		s.canvas.Resize(renderW, renderH)
		s.canvas.SetOffset(offCol, offRow)
		s.out.SetOffset(offCol, offRow)
		s.needsClear = true
	}
	s.canvas.Clear()
	s.texts = s.texts[:0]
}

// End writes the frame: changed canvas cells, then the text overlay.
func (s *TerminalSurface) End() error {
	if s.needsClear {
		s.needsClear = false
		s.lastSpans = s.lastSpans[:0]
		s.out.WriteString(seqClearScreen)
		s.canvas.ForceRedraw()
		if err := s.canvas.RenderBorder(s.out); err != nil {
			return err
		}
	}

	// Text from the previous frame covered canvas cells; repaint them.
	for _, sp := range s.lastSpans {
		s.canvas.Invalidate(sp.col, sp.row, sp.width)
	}
	s.lastSpans = s.lastSpans[:0]

	if err := s.canvas.Render(s.out, s.palette.Cell); err != nil {
		return err
	}

	for _, t := range s.texts {
		text := clipText(t.text, s.canvas.TerminalWidth()-t.col+1)
		if text == "" || t.row < 1 || t.row > s.canvas.TerminalHeight() {
			continue
		}
		s.out.WriteAt(t.col, t.row, s.palette.Text(text, t.color))
		s.lastSpans = append(s.lastSpans, span{col: t.col, row: t.row, width: utf8.RuneCountInString(text)})
	}

	return s.out.Flush()
}

// clipText cuts s to at most n runes.
func clipText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// DrawPolygon implements Renderer.
func (s *TerminalSurface) DrawPolygon(center Point, sides int, radius, rotation float64, c Color) {
	s.canvas.DrawRegularPolygon(center, sides, radius, rotation, c)
}

// DrawCircle implements Renderer.
func (s *TerminalSurface) DrawCircle(center Point, radius float64, c Color) {
	s.canvas.FillCircle(center, radius, c)
}

// DrawRectangle implements Renderer.
func (s *TerminalSurface) DrawRectangle(r Rect, c Color) {
	s.canvas.FillRect(r, c)
}

// DrawSprite implements Renderer.
func (s *TerminalSurface) DrawSprite(sp Sprite, center Point, radius float64, c Color) {
	switch sp {
	case SpriteShip:
		// Arrow pointing up: nose plus two swept-back wings.
		const nose = -math.Pi / 2
		const wing = 2.5
		points := s.canvas.BorrowPoints(3)
		points[0] = Point{X: center.X + math.Cos(nose)*radius, Y: center.Y + math.Sin(nose)*radius}
		points[1] = Point{X: center.X + math.Cos(nose+wing)*radius, Y: center.Y + math.Sin(nose+wing)*radius}
		points[2] = Point{X: center.X + math.Cos(nose-wing)*radius, Y: center.Y + math.Sin(nose-wing)*radius}
		s.canvas.DrawPolygon(points, true, c)
	}
}

// DrawText implements Renderer. Terminal text is always one cell tall,
// so size is ignored. On small terminals several logical lines can round
// to one row; a line that would cover earlier text of the same frame is
// moved down until it fits.
func (s *TerminalSurface) DrawText(text string, pos Point, size int, c Color) {
	col, row := s.canvas.LogicalToTerminal(pos.X, pos.Y)
	col = max(col, 1)
	width := utf8.RuneCountInString(text)
	for s.textAt(col, row, width) {
		row++
	}
	s.texts = append(s.texts, textItem{col: col, row: row, text: text, color: c})
}

// textAt reports whether queued text covers any of width cells from (col, row).
func (s *TerminalSurface) textAt(col, row, width int) bool {
	for _, t := range s.texts {
		if t.row == row && col < t.col+utf8.RuneCountInString(t.text) && t.col < col+width {
			return true
		}
	}
	return false
}

// MeasureText implements Renderer.
func (s *TerminalSurface) MeasureText(text string, size int) float64 {
	scale := s.canvas.ScaleX()
	if scale <= 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) / scale
}

var _ Surface = (*TerminalSurface)(nil)

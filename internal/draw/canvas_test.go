package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func countPixels(c *Canvas, col Color) int {
	n := 0
	for _, p := range c.pixels {
		if p == col {
			n++
		}
	}
	return n
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(100, 50, 1000, 1000)
	c.SetFloat(500, 500, ColorWhite)
	if got := c.Pixel(50, 50); got != ColorWhite {
		t.Errorf("Pixel(50, 50) = %v, expected ColorWhite", got)
	}
	c.SetFloat(2000, 2000, ColorWhite) // off-canvas is ignored
	if got := countPixels(c, ColorWhite); got != 1 {
		t.Errorf("pixel count = %d, expected 1", got)
	}
}

func TestFillCircle(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.FillCircle(Point{50, 50}, 10, ColorPink)

	if got := c.Pixel(50, 50); got != ColorPink {
		t.Errorf("center = %v, expected ColorPink", got)
	}
	if got := c.Pixel(50, 70); got != ColorNone {
		t.Errorf("outside = %v, expected ColorNone", got)
	}
	n := countPixels(c, ColorPink)
	if n < 250 || n > 380 {
		t.Errorf("circle area = %d pixels, expected about 314", n)
	}
}

func TestFillCircleTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.FillCircle(Point{500, 500}, 2, ColorWhite)
	if got := countPixels(c, ColorWhite); got != 1 {
		t.Errorf("pixel count = %d, expected 1", got)
	}
}

func TestFillRect(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.FillRect(Rect{X: 10, Y: 20, Width: 4, Height: 30}, ColorPink)
	if got := countPixels(c, ColorPink); got != 4*30 {
		t.Errorf("rect area = %d, expected %d", got, 4*30)
	}
	if c.Pixel(10, 20) != ColorPink || c.Pixel(13, 49) != ColorPink || c.Pixel(14, 20) != ColorNone {
		t.Error("rect bounds are wrong")
	}
}

func TestDrawRegularPolygon(t *testing.T) {
	tests := []struct {
		name  string
		sides int
	}{
		{"triangle", 3},
		{"square", 4},
		{"pentagon", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewScaledCanvas(100, 50, 100, 100)
			c.DrawRegularPolygon(Point{50, 50}, tt.sides, 20, 0, ColorWhite)
			if got := c.Pixel(70, 50); got != ColorWhite {
				t.Errorf("first vertex = %v, expected outline", got)
			}
			if got := c.Pixel(50, 50); got != ColorNone {
				t.Errorf("center = %v, expected hollow", got)
			}
			if got := c.Pixel(50, 75); got != ColorNone {
				t.Errorf("outside = %v, expected empty", got)
			}
		})
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, ColorWhite)

	var buf bytes.Buffer
	if err := c.Render(&buf, PlainCells); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\033["); got != 8 {
		t.Errorf("first render wrote %d cells, expected all 8", got)
	}
	if !strings.Contains(buf.String(), "\033[1;1H▀") {
		t.Errorf("first render = %q, missing upper half block at 1;1", buf.String())
	}

	buf.Reset()
	c.Render(&buf, PlainCells)
	if buf.Len() != 0 {
		t.Errorf("unchanged render wrote %q, expected nothing", buf.String())
	}

	c.Clear()
	c.SetFloat(0, 1, ColorWhite)
	buf.Reset()
	c.Render(&buf, PlainCells)
	if got := buf.String(); got != "\033[1;1H▄" {
		t.Errorf("diff render = %q, expected only the changed cell", got)
	}

	c.Invalidate(2, 2, 2)
	buf.Reset()
	c.Render(&buf, PlainCells)
	if got := strings.Count(buf.String(), "\033["); got != 2 {
		t.Errorf("after Invalidate wrote %d cells, expected 2", got)
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetOffset(3, 5)
	var buf bytes.Buffer
	c.Render(&buf, PlainCells)
	if !strings.HasPrefix(buf.String(), "\033[6;4H") {
		t.Errorf("Render() = %q, expected cursor at 6;4", buf.String())
	}
}

func TestFitTerm(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"wide terminal", 200, 52, 100, 50, 50, 1},
		{"tall terminal", 82, 100, 80, 40, 1, 30},
		{"tiny", 2, 2, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitTerm(tt.termW, tt.termH, 1000, 1000)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("FitTerm(%d, %d) = %d, %d, %d, %d, expected %d, %d, %d, %d",
					tt.termW, tt.termH, w, h, oc, or, tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

func TestPaletteCells(t *testing.T) {
	p := NewPalette(&bytes.Buffer{}, termenv.Ascii)
	tests := []struct {
		top, bottom Color
		expect      string
	}{
		{ColorNone, ColorNone, " "},
		{ColorWhite, ColorWhite, "█"},
		{ColorWhite, ColorNone, "▀"},
		{ColorNone, ColorPink, "▄"},
		{ColorWhite, ColorPink, "▀"},
	}
	for _, tt := range tests {
		if got := p.Cell(tt.top, tt.bottom); got != tt.expect {
			t.Errorf("Cell(%v, %v) = %q, expected %q", tt.top, tt.bottom, got, tt.expect)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	p := NewPalette(&bytes.Buffer{}, termenv.ANSI256)
	got := p.Text("HP", ColorPink)
	if !strings.Contains(got, "HP") || !strings.Contains(got, "212") {
		t.Errorf("Text() = %q, expected pink ANSI 256 sequence", got)
	}
}

func TestTerminalSurfaceFrame(t *testing.T) {
	var out bytes.Buffer
	s := NewTerminalSurface(&out, SurfaceOptions{
		LogicalWidth:  1000,
		LogicalHeight: 1000,
		TermSizeFunc:  func() (int, int, error) { return 42, 22, nil },
		Profile:       termenv.Ascii,
	})

	s.Begin()
	s.DrawCircle(Point{500, 500}, 50, ColorWhite)
	s.DrawText("Score: 10", Point{10, 10}, 20, ColorWhite)
	if err := s.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	frame := out.String()
	if !strings.HasPrefix(frame, seqClearScreen) {
		t.Error("first frame should clear the screen")
	}
	if !strings.Contains(frame, "Score: 10") || !strings.Contains(frame, "┌") {
		t.Errorf("frame missing text or border: %q", frame)
	}

	out.Reset()
	s.Begin()
	s.DrawCircle(Point{500, 500}, 50, ColorWhite)
	if err := s.End(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), seqClearScreen) {
		t.Error("second frame should not clear the screen")
	}
	if strings.Contains(out.String(), "█") {
		t.Error("unchanged shapes should not be redrawn")
	}
	if !strings.Contains(out.String(), " ") {
		t.Error("cells under the removed text should be repainted")
	}
}

func TestMeasureText(t *testing.T) {
	s := NewTerminalSurface(&bytes.Buffer{}, SurfaceOptions{
		LogicalWidth:  1000,
		LogicalHeight: 1000,
		TermSizeFunc:  func() (int, int, error) { return 102, 52, nil },
	})
	s.Begin()
	if got := s.MeasureText("abcde", 20); got != 50 {
		t.Errorf("MeasureText() = %v, expected 50", got)
	}
}

func TestDrawTextKeepsLinesApart(t *testing.T) {
	s := NewTerminalSurface(&bytes.Buffer{}, SurfaceOptions{
		LogicalWidth:  1000,
		LogicalHeight: 1000,
		TermSizeFunc:  func() (int, int, error) { return 80, 24, nil },
		Profile:       termenv.Ascii,
	})
	s.Begin()

	// 30 logical px is less than one text row at this size
	for i := range 6 {
		s.DrawText("line", Point{10, float64(10 + i*30)}, 20, ColorWhite)
	}
	rows := make(map[int]bool)
	for _, item := range s.texts {
		if rows[item.row] {
			t.Fatalf("two lines share row %d: %+v", item.row, s.texts)
		}
		rows[item.row] = true
	}

	// Text elsewhere on a taken row stays where it was put
	_, row := s.canvas.LogicalToTerminal(900, 10)
	s.DrawText("far", Point{900, 10}, 20, ColorWhite)
	if got := s.texts[len(s.texts)-1].row; got != row {
		t.Errorf("non-overlapping text moved to row %d, expected %d", got, row)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}

	// Check outside is still space
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.GetCell(5, 4).Rune)
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.GetCell(x, 1).Rune)
		}
		if s.GetCell(x, 4).Rune != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.GetCell(x, 4).Rune)
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.GetCell(1, y).Rune)
		}
		if s.GetCell(5, y).Rune != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.GetCell(5, y).Rune)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenFillRectTexture(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetTexture("tile", '▓')

	s.FillRect(NewRect(1, 1, 3, 2), ColorRed, "tile")
	cell := s.GetCell(2, 2)
	if cell.Rune != '▓' || cell.Color != ColorRed {
		t.Errorf("FillRect with texture: got %+v, expected '▓' in red", cell)
	}

	// Unknown texture degrades to solid fill
	s.FillRect(NewRect(6, 0, 2, 1), ColorBlue, "missing")
	if s.GetCell(6, 0).Rune != SolidGlyph || s.GetCell(7, 0).Rune != SolidGlyph {
		t.Errorf("Unknown texture should fill with %q, got %q", SolidGlyph, s.GetCell(6, 0).Rune)
	}
	if s.GetCell(8, 0).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}

	// Partially off-screen rects are clipped, not a panic
	s.FillRect(NewRect(8, 3, 10, 10), ColorGreen, "")
	if s.GetCell(9, 4).Rune != SolidGlyph {
		t.Error("Clipped FillRect should still fill visible cells")
	}
}

func TestScreenDrawOverlay(t *testing.T) {
	s := NewScreen(30, 9)
	s.SetOverlay("game-over", []string{"GAME OVER", "wait..."})
	s.DrawOverlay("game-over")

	found := false
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Errorf("Overlay text not drawn:\n%s", s.String())
	}

	// Unknown overlay falls back to the upper-cased name
	s.Clear()
	s.DrawOverlay("level-won")
	if !strings.Contains(s.String(), "LEVEL-WON") {
		t.Errorf("Fallback overlay not drawn:\n%s", s.String())
	}
}

func TestScreenSize(t *testing.T) {
	var surface Surface = NewScreen(12, 7)
	w, h := surface.Size()
	if w != 12 || h != 7 {
		t.Errorf("Size() = %dx%d, expected 12x7", w, h)
	}
}

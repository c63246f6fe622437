package ui

import "math"

// Layout maps playfield coordinates to terminal cells. Row 0 holds the
// scoreboard and the last row the status bar; the court fills the rest.
type Layout struct {
	ScreenW, ScreenH int
	FieldW, FieldH   float64
}

func NewLayout(screenW, screenH int, fieldW, fieldH float64) Layout {
	return Layout{ScreenW: screenW, ScreenH: screenH, FieldW: fieldW, FieldH: fieldH}
}

// CourtRows is the number of rows used by the court
func (l Layout) CourtRows() int {
	if l.ScreenH < 3 {
		return 1
	}
	return l.ScreenH - 2
}

func (l Layout) scaleX() float64 {
	return float64(l.ScreenW) / l.FieldW
}

func (l Layout) scaleY() float64 {
	return float64(l.CourtRows()) / l.FieldH
}

// Cell converts a playfield point to a screen cell
func (l Layout) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * l.scaleX())), int(math.Floor(y*l.scaleY())) + 1
}

// Span converts a playfield length along y to a row count, at least 1
func (l Layout) Span(h float64) int {
	n := int(math.Round(h * l.scaleY()))
	if n < 1 {
		return 1
	}
	return n
}

// FieldY converts a screen row back to a playfield y at the row's middle
func (l Layout) FieldY(row int) float64 {
	return (float64(row-1) + 0.5) / l.scaleY()
}

// InCourt reports whether a cell lies inside the court area
func (l Layout) InCourt(x, y int) bool {
	return x >= 0 && x < l.ScreenW && y >= 1 && y <= l.CourtRows()
}

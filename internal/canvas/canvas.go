// Package canvas rasterizes circles onto a Braille dot grid. Each terminal
// cell is a 2x4 dot block, giving 2x horizontal and 4x vertical resolution
// over plain character graphics.
package canvas

import "strings"

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	bits  uint8
	color RGB
}

// Canvas is a cell grid with a solid backdrop. Coordinates given to drawing
// calls are in dot units: x in [0, Cols*2), y in [0, Rows*4).
type Canvas struct {
	cols, rows int
	cells      []cell
	bg         RGB
	profile    Profile
}

func New(cols, rows int) *Canvas {
	c := &Canvas{profile: DetectProfile()}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols = cols
	c.rows = rows
	c.cells = make([]cell, cols*rows)
}

// DotBounds reports the drawable area in dot units.
func (c *Canvas) DotBounds() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Clear wipes the grid and sets the backdrop color for this frame.
func (c *Canvas) Clear(bg RGB) {
	c.bg = bg
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *Canvas) setDot(x, y int, col RGB) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	idx := (y/4)*c.cols + x/2
	c.cells[idx].bits |= 1 << brailleBits[x%2][y%4]
	c.cells[idx].color = col
}

// FillCircle paints a disc centered at (cx, cy) with the given dot radius.
// The color is blended over the backdrop by opacity, so translucent bubbles
// pick up the backdrop hue.
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB, opacity float64) {
	if r <= 0 {
		return
	}
	blended := Lerp(c.bg, col, clamp01(opacity))
	rSq := r * r
	minX, maxX := int(cx-r), int(cx+r)
	minY, maxY := int(cy-r), int(cy+r)
	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= rSq {
				c.setDot(x, y, blended)
			}
		}
	}
}

// Render emits the grid with ANSI colors for the detected profile. Empty
// cells show the backdrop; lit cells draw their dot pattern over it.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*4 + c.rows)
	state := newANSIState(c.profile)
	for row := 0; row < c.rows; row++ {
		state.setBG(&sb, c.bg)
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if cl.bits == 0 {
				sb.WriteByte(' ')
				continue
			}
			state.setFG(&sb, cl.color)
			sb.WriteRune(rune(0x2800 + uint(cl.bits)))
		}
		state.reset(&sb)
		if row != c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

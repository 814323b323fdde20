package draw

import (
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/tomz197/asteroidfield/internal/physics"
)

// Point is a position in the canvas's logical coordinate space.
type Point = physics.Vec2

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Cell states: bit 0 is the upper sub-pixel, bit 1 the lower.
const (
	cellEmpty uint8 = 0
	cellUpper uint8 = 1
	cellLower uint8 = 2
	cellFull  uint8 = cellUpper | cellLower
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
//
// Render only emits cells that changed since the previous frame, so the
// terminal is never cleared between frames. Text written over the canvas
// must be reported through MarkTextDirty so it gets painted over later.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	prev  []uint8 // Cell state last sent to the terminal
	dirty []bool  // Cells overwritten by text since the last render
	full  bool    // Terminal was cleared; prev is meaningless

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       []byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the renderer;
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]uint8, termHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.full = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render paint every set cell. Call it after
// the terminal has been cleared.
func (c *Canvas) ForceRedraw() {
	c.full = true
}

// MarkTextDirty records that text was written over n cells starting at the
// 1-based canvas position (col, row).
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.dirty[r*c.termWidth+x] = true
		}
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p Point) {
	c.setPixel(int(math.Round(p.X*c.scaleX)), int(math.Round(p.Y*c.scaleY)))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	// Lines far off-canvas would walk millions of pixels for nothing
	limit := 4 * (c.termWidth + c.subPixelHeight)
	if dx > limit || dy > limit {
		return
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline approximated by a polygon. The number
// of segments grows with the on-screen radius.
func (c *Canvas) DrawCircle(center Point, radius float64) {
	pixels := radius * math.Max(c.scaleX, c.scaleY)
	segments := int(math.Ceil(pixels * 1.5))
	if segments < 8 {
		segments = 8
	}
	if segments > 64 {
		segments = 64
	}

	points := c.BorrowPoints(segments)
	for i := range points {
		points[i] = center.Add(physics.FromAngle(2*math.Pi*float64(i)/float64(segments), radius))
	}
	c.DrawPolygon(points, false)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Only scan rows that exist on the canvas
	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i])), 0)
			xEnd := min(int(math.Floor(intersections[i+1])), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Roughly one MTU, for smooth SSH transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the last render using
// half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cell := cellEmpty
			if c.pixels[topOffset+col] {
				cell |= cellUpper
			}
			if c.pixels[bottomOffset+col] {
				cell |= cellLower
			}

			i := row*c.termWidth + col
			switch {
			case c.full:
				if cell == cellEmpty {
					c.prev[i] = cell
					c.dirty[i] = false
					continue
				}
			case cell == c.prev[i] && !c.dirty[i]:
				continue
			}
			c.prev[i] = cell
			c.dirty[i] = false

			buf = appendCursor(buf, col+1+c.offsetCol, row+1+c.offsetRow)
			buf = appendCell(buf, cell)
		}
	}
	c.full = false
	c.renderBuf = buf

	return writeChunked(w, buf)
}

func appendCursor(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}

func appendCell(buf []byte, cell uint8) []byte {
	switch cell {
	case cellFull:
		return append(buf, string(BlockFull)...)
	case cellUpper:
		return append(buf, string(BlockUpperHalf)...)
	case cellLower:
		return append(buf, string(BlockLowerHalf)...)
	default:
		return append(buf, ' ')
	}
}

// writeChunked writes data in chunks of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf []byte
	horizontal := func(row int, l, r string) {
		if hasH {
			buf = appendCursor(buf, left, row)
			buf = append(buf, l...)
		} else {
			buf = appendCursor(buf, c.offsetCol+1, row)
		}
		for i, n := 0, c.termWidth; i < n; i++ {
			buf = append(buf, "─"...)
		}
		if hasH {
			buf = append(buf, r...)
		}
	}

	if hasV {
		horizontal(top, "┌", "┐")
		horizontal(bottom, "└", "┘")
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf = appendCursor(buf, left, row)
			buf = append(buf, "│"...)
			buf = appendCursor(buf, right, row)
			buf = append(buf, "│"...)
		}
	}

	return writeChunked(w, buf)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(p Point) (col, row int) {
	px := int(math.Round(p.X * c.scaleX))
	py := int(math.Round(p.Y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

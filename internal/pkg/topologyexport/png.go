package topologyexport

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

const curveSegments = 24

// GraphToPNG renders the diagram to a PNG image: boxes as filled rects,
// links as lines, curved links approximated by line segments.
func GraphToPNG(g *models.DiagramGraph) ([]byte, error) {
	if g == nil || len(g.Nodes) == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 400, 100))
		draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
		return encode(img)
	}
	minX, minY, maxX, maxY := bounds(g)
	width := int(math.Ceil(maxX - minX))
	height := int(math.Ceil(maxY - minY))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	ox, oy := -minX, -minY
	for _, e := range g.Edges {
		c := hexColor(e.StrokeColor)
		pts := edgePoints(e.Path)
		for i := 1; i < len(pts); i++ {
			drawLine(img,
				int(pts[i-1].X+ox), int(pts[i-1].Y+oy),
				int(pts[i].X+ox), int(pts[i].Y+oy), c)
		}
	}
	for _, n := range g.Nodes {
		x := int(n.Position.X + ox)
		y := int(n.Position.Y + oy)
		rect := image.Rect(x, y, x+nodeWidth, y+nodeHeight)
		draw.Draw(img, rect, &image.Uniform{hexColor(n.Fill)}, image.Point{}, draw.Src)
		stroke := hexColor(n.Stroke)
		for i := 0; i < int(math.Max(1, math.Round(n.StrokeWidth))); i++ {
			drawRectBorder(img, rect.Inset(i), stroke)
		}
		dot := image.Rect(x+108, y+8, x+113, y+13)
		draw.Draw(img, dot, &image.Uniform{hexColor(n.StatusColor)}, image.Point{}, draw.Src)
	}
	return encode(img)
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// edgePoints returns the polyline approximation of a link path.
func edgePoints(p models.LinkPath) []models.Position {
	if p.Control == nil {
		return []models.Position{p.Start, p.End}
	}
	pts := make([]models.Position, 0, curveSegments+1)
	for i := 0; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		pts = append(pts, models.Position{
			X: u*u*p.Start.X + 2*u*t*p.Control.X + t*t*p.End.X,
			Y: u*u*p.Start.Y + 2*u*t*p.Control.Y + t*t*p.End.Y,
		})
	}
	return pts
}

// hexColor parses #rrggbb; anything else renders gray.
func hexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{107, 114, 128, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{107, 114, 128, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func drawLine(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func drawRectBorder(img draw.Image, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

package layout

import (
	"strconv"
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

// CurveOffset is the vertical distance of the control point from the segment midpoint.
const CurveOffset = 50

// Center returns the center of a box with origin p.
func Center(p models.Position) models.Position {
	return models.Position{X: p.X + DeviceWidth/2, Y: p.Y + DeviceHeight/2}
}

// LinkPath routes a link between the boxes at source and target.
//
// The path is straight unless another box overlaps the bounding box of the
// center-to-center segment. In that case it bends through a control point
// above the midpoint, or below it when the point above lands inside a box.
// Boxes sharing an origin with either endpoint are ignored.
func (e *Engine) LinkPath(source, target models.Position) models.LinkPath {
	start, end := Center(source), Center(target)
	path := models.LinkPath{Kind: models.PathStraight, Start: start, End: end}

	if e.segmentClear(start, end, source, target) {
		path.D = "M " + coords(start) + " L " + coords(end)
		return path
	}

	mid := models.Position{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	ctrl := models.Position{X: mid.X, Y: mid.Y - CurveOffset}
	if e.insideAnyBox(ctrl) {
		ctrl.Y = mid.Y + CurveOffset
	}

	path.Kind = models.PathQuadratic
	path.Control = &ctrl
	path.D = "M " + coords(start) + " Q " + coords(ctrl) + " " + coords(end)
	return path
}

func (e *Engine) segmentClear(start, end, source, target models.Position) bool {
	minX, maxX := minMax(start.X, end.X)
	minY, maxY := minMax(start.Y, end.Y)
	for _, p := range e.positions {
		if (p.X == source.X && p.Y == source.Y) || (p.X == target.X && p.Y == target.Y) {
			continue
		}
		if !(maxX < p.X || minX > p.X+DeviceWidth || maxY < p.Y || minY > p.Y+DeviceHeight) {
			return false
		}
	}
	return true
}

func (e *Engine) insideAnyBox(pt models.Position) bool {
	for _, p := range e.positions {
		if pt.X >= p.X && pt.X <= p.X+DeviceWidth && pt.Y >= p.Y && pt.Y <= p.Y+DeviceHeight {
			return true
		}
	}
	return false
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func coords(p models.Position) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	return b.String()
}

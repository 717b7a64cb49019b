// Package layout owns device box positions in diagram space: collision
// checks, collision-free placement and link path routing.
package layout

import (
	"math"

	"github.com/Beenod004/Networkfault/internal/models"
)

const (
	DeviceWidth  = 120
	DeviceHeight = 40
	MinSpacing   = 20

	CanvasMaxX = 1800
	CanvasMaxY = 900

	MaxAttempts = 100
	spiralAngle = 0.5
	spiralStep  = 10
)

var (
	// DefaultPosition is reported for devices that have no stored position.
	DefaultPosition = models.Position{X: 100, Y: 100}
	// PlacementBase is where newly added devices are placed before collision resolution.
	PlacementBase = models.Position{X: 400, Y: 300}
)

// Engine holds one position per device, in insertion order.
type Engine struct {
	positions []models.DevicePosition
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{positions: []models.DevicePosition{}}
}

// Seed replaces every stored position.
func (e *Engine) Seed(positions []models.DevicePosition) {
	e.positions = append([]models.DevicePosition{}, positions...)
}

// Positions returns a snapshot of the stored positions.
func (e *Engine) Positions() []models.DevicePosition {
	return append([]models.DevicePosition{}, e.positions...)
}

// Position returns the stored origin of a device box.
func (e *Engine) Position(id string) (models.Position, bool) {
	if i := e.index(id); i >= 0 {
		return e.positions[i].Point(), true
	}
	return models.Position{}, false
}

// PositionOrDefault returns the stored origin, or DefaultPosition when none exists.
func (e *Engine) PositionOrDefault(id string) models.Position {
	if p, ok := e.Position(id); ok {
		return p
	}
	return DefaultPosition
}

// Collides reports whether a box at (x, y) would crowd any box other than excludeID.
func (e *Engine) Collides(x, y float64, excludeID string) bool {
	for _, p := range e.positions {
		if p.ID == excludeID {
			continue
		}
		if math.Abs(x-p.X) < DeviceWidth+MinSpacing && math.Abs(y-p.Y) < DeviceHeight+MinSpacing {
			return true
		}
	}
	return false
}

// FindValidPosition returns the nearest free point to (x, y) on an outward
// spiral, kept inside the canvas. When every attempt collides the last
// candidate is returned with Exhausted set.
func (e *Engine) FindValidPosition(x, y float64, excludeID string) models.PlacementResult {
	tx, ty := clamp(x, CanvasMaxX), clamp(y, CanvasMaxY)
	cx, cy := tx, ty

	attempts := 0
	for e.Collides(cx, cy, excludeID) && attempts < MaxAttempts {
		angle := math.Mod(float64(attempts)*spiralAngle, 2*math.Pi)
		radius := float64(attempts/8*spiralStep + MinSpacing)

		cx = clamp(tx+math.Cos(angle)*radius, CanvasMaxX)
		cy = clamp(ty+math.Sin(angle)*radius, CanvasMaxY)
		attempts++
	}

	return models.PlacementResult{
		Position:  models.Position{X: cx, Y: cy},
		Attempts:  attempts,
		Exhausted: attempts >= MaxAttempts && e.Collides(cx, cy, excludeID),
	}
}

// SetPosition moves a device to the nearest valid point to (x, y).
// Devices without a stored position are left alone and report false.
func (e *Engine) SetPosition(id string, x, y float64) (models.PlacementResult, bool) {
	i := e.index(id)
	if i < 0 {
		return models.PlacementResult{}, false
	}
	res := e.FindValidPosition(x, y, id)
	e.positions[i].X = res.Position.X
	e.positions[i].Y = res.Position.Y
	return res, true
}

// Place gives a device a position near PlacementBase. An id that already
// has a position keeps it; ids can repeat after deletions and the existing
// entry belongs to a live device.
func (e *Engine) Place(id string) models.PlacementResult {
	if p, ok := e.Position(id); ok {
		return models.PlacementResult{Position: p}
	}
	res := e.FindValidPosition(PlacementBase.X, PlacementBase.Y, id)
	e.positions = append(e.positions, models.DevicePosition{ID: id, X: res.Position.X, Y: res.Position.Y})
	return res
}

// Remove discards the position of a device.
func (e *Engine) Remove(id string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	e.positions = append(e.positions[:i:i], e.positions[i+1:]...)
	return true
}

func (e *Engine) index(id string) int {
	for i := range e.positions {
		if e.positions[i].ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, upper float64) float64 {
	return math.Max(MinSpacing, math.Min(upper, v))
}

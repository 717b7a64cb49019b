package models

// Position is a point in untransformed diagram space.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DevicePosition places a device's box origin (top-left corner) in the diagram.
type DevicePosition struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Point returns the position part of p.
func (p DevicePosition) Point() Position {
	return Position{X: p.X, Y: p.Y}
}

// PathKind distinguishes straight link paths from curved ones.
type PathKind string

const (
	PathStraight  PathKind = "straight"
	PathQuadratic PathKind = "quadratic"
)

// LinkPath is the drawn route of a link between two device box centers.
type LinkPath struct {
	Kind    PathKind  `json:"kind"`
	Start   Position  `json:"start"`
	End     Position  `json:"end"`
	Control *Position `json:"control,omitempty"` // set for quadratic paths
	D       string    `json:"d"`                 // SVG path data
}

// PlacementResult is the outcome of a collision-resolved placement.
type PlacementResult struct {
	Position  Position `json:"position"`
	Attempts  int      `json:"attempts"`
	Exhausted bool     `json:"exhausted"` // true when the returned point may still collide
}

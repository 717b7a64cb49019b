// Package diagram turns the entity collections, layout and view state into
// the render model consumed by the dashboard UI and the exporters.
package diagram

import (
	"github.com/Beenod004/Networkfault/internal/correlate"
	"github.com/Beenod004/Networkfault/internal/layout"
	"github.com/Beenod004/Networkfault/internal/models"
)

// SchemaVersion is bumped when the render model changes shape.
const SchemaVersion = "1.0"

// Geometry resolves box origins and link routes.
type Geometry interface {
	PositionOrDefault(id string) models.Position
	LinkPath(source, target models.Position) models.LinkPath
}

// Input is everything Build needs.
type Input struct {
	Devices  []models.Device
	Links    []models.Link
	Faults   []models.Fault
	Geometry Geometry
	View     models.ViewState
	Revision uint64
}

// Build produces the render model. Devices and links keep store order.
func Build(in Input) *models.DiagramGraph {
	g := &models.DiagramGraph{
		SchemaVersion: SchemaVersion,
		Revision:      in.Revision,
		Nodes:         make([]models.DiagramNode, 0, len(in.Devices)),
		Edges:         make([]models.DiagramEdge, 0, len(in.Links)),
		Summary:       correlate.Summary(in.Faults),
		View:          in.View,
	}

	byID := make(map[string]*models.Device, len(in.Devices))
	for i := range in.Devices {
		byID[in.Devices[i].ID] = &in.Devices[i]
	}

	for _, l := range in.Links {
		g.Edges = append(g.Edges, buildEdge(in, l, byID[l.SourceDeviceID], byID[l.TargetDeviceID]))
	}
	for _, d := range in.Devices {
		g.Nodes = append(g.Nodes, buildNode(in, d))
	}
	return g
}

func buildNode(in Input, d models.Device) models.DiagramNode {
	selected := in.View.SelectedDevice == d.ID
	linkSource := in.View.LinkSource == d.ID
	overlay := correlate.Overlay(correlate.FaultsForDevice(in.Faults, d))

	n := models.DiagramNode{
		Device:      d,
		Position:    in.Geometry.PositionOrDefault(d.ID),
		Label:       NodeLabel(d.Name),
		Fill:        DeviceFill(d.Type, selected, linkSource),
		Stroke:      StatusColor(d.Status),
		StrokeWidth: 1.5,
		StatusColor: StatusColor(d.Status),
		Selected:    selected,
		LinkSource:  linkSource,
		Dragged:     in.View.DraggedDevice == d.ID,
		Overlay:     overlay,
	}
	switch {
	case in.View.FaultOverlay && overlay.Count > 0:
		n.Stroke = overlay.Color
		n.StrokeWidth = 3
		n.StatusColor = overlay.Color
		if overlay.Critical {
			n.Animation = AnimationCritical
		}
	case linkSource:
		n.Stroke = strokeLinkSource
		n.StrokeWidth = 2
	case selected:
		n.Stroke = strokeSelected
		n.StrokeWidth = 2
	}
	return n
}

func buildEdge(in Input, l models.Link, source, target *models.Device) models.DiagramEdge {
	sp := in.Geometry.PositionOrDefault(l.SourceDeviceID)
	tp := in.Geometry.PositionOrDefault(l.TargetDeviceID)
	overlay := correlate.Overlay(correlate.FaultsForLink(in.Faults, source, target))

	e := models.DiagramEdge{
		Link:        l,
		Path:        in.Geometry.LinkPath(sp, tp),
		StrokeWidth: LinkStrokeWidth(l.Bandwidth),
		StrokeColor: LinkColor(l),
		Label:       BandwidthLabel(l.Bandwidth),
		LabelAt: models.Position{
			X: (sp.X+tp.X)/2 + layout.DeviceWidth/2,
			Y: (sp.Y+tp.Y)/2 + layout.DeviceHeight/2,
		},
		Overlay: overlay,
	}
	if in.View.FaultOverlay && overlay.Count > 0 {
		e.StrokeColor = overlay.Color
		e.StrokeWidth++
		e.Dash = faultDash
		e.Animation = animation(overlay)
	}
	return e
}

// Package interaction implements the diagram's pointer state machine:
// pan, edit (drag) and link modes plus the zoom/pan view transform.
package interaction

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Beenod004/Networkfault/internal/models"
)

const (
	DefaultZoom = 0.8
	MinZoom     = 0.3
	MaxZoom     = 2.0
	ZoomStep    = 0.1

	// DraftBandwidth, DraftLinkType and DraftStatus prefill link drafts.
	DraftBandwidth = "1Gbps"
	DraftLinkType  = models.LinkFiber
	DraftStatus    = models.LinkActive

	minLinkModeDevices = 2
)

var (
	ErrUnknownMode         = errors.New("unknown interaction mode")
	ErrLinkModeUnavailable = errors.New("link mode needs at least two devices")
)

// Positions is the part of the layout engine the controller drives.
type Positions interface {
	PositionOrDefault(id string) models.Position
	SetPosition(id string, x, y float64) (models.PlacementResult, bool)
}

// DeviceCounter reports how many devices exist.
type DeviceCounter interface {
	DeviceCount() int
}

// Controller holds the interaction mode, view transform and transient
// pointer state. It is not safe for concurrent use.
type Controller struct {
	layout  Positions
	devices DeviceCounter

	mode    models.InteractionMode
	zoom    float64
	pan     models.Position
	overlay bool

	selected   string
	linkSource string

	panning bool
	lastPan models.Position

	dragging   string
	dragOffset models.Position
}

// New returns a controller in pan mode with the default view.
func New(layout Positions, devices DeviceCounter) *Controller {
	return &Controller{
		layout:  layout,
		devices: devices,
		mode:    models.ModePan,
		zoom:    DefaultZoom,
		overlay: true,
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() models.InteractionMode {
	return c.mode
}

// SetMode switches the active mode and ends any pan or drag in progress.
// Entering link mode clears the pending link source.
func (c *Controller) SetMode(mode models.InteractionMode) error {
	switch mode {
	case models.ModePan, models.ModeEdit:
	case models.ModeLink:
		if c.devices.DeviceCount() < minLinkModeDevices {
			return ErrLinkModeUnavailable
		}
		c.linkSource = ""
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	c.mode = mode
	c.release()
	return nil
}

// ZoomIn raises the zoom by one step, up to MaxZoom.
func (c *Controller) ZoomIn() float64 {
	c.zoom = roundZoom(math.Min(c.zoom+ZoomStep, MaxZoom))
	return c.zoom
}

// ZoomOut lowers the zoom by one step, down to MinZoom.
func (c *Controller) ZoomOut() float64 {
	c.zoom = roundZoom(math.Max(c.zoom-ZoomStep, MinZoom))
	return c.zoom
}

// ResetView restores the default zoom and clears the pan offset.
func (c *Controller) ResetView() {
	c.zoom = DefaultZoom
	c.pan = models.Position{}
}

// SetFaultOverlay toggles fault decoration in the rendered diagram.
func (c *Controller) SetFaultOverlay(enabled bool) {
	c.overlay = enabled
}

// Select marks a device as selected; an empty id clears the selection.
func (c *Controller) Select(id string) {
	c.selected = id
}

// Forget drops every reference to a deleted device.
func (c *Controller) Forget(id string) {
	if c.selected == id {
		c.selected = ""
	}
	if c.linkSource == id {
		c.linkSource = ""
	}
	if c.dragging == id {
		c.dragging = ""
	}
}

// ToDiagram maps a canvas-local screen point into diagram space.
func (c *Controller) ToDiagram(x, y float64) models.Position {
	return models.Position{X: (x - c.pan.X) / c.zoom, Y: (y - c.pan.Y) / c.zoom}
}

// Pointer feeds one pointer event through the state machine.
func (c *Controller) Pointer(ev models.PointerEvent) models.PointerOutcome {
	out := models.PointerOutcome{Action: models.ActionNone}
	switch ev.Type {
	case models.PointerDown:
		if ev.DeviceID != "" {
			c.deviceDown(ev, &out)
		} else if c.mode == models.ModePan && c.dragging == "" {
			c.panning = true
			c.lastPan = models.Position{X: ev.X, Y: ev.Y}
			out.Action = models.ActionPanStart
		}
	case models.PointerMove:
		c.move(ev, &out)
	case models.PointerUp, models.PointerLeave:
		if c.panning || c.dragging != "" {
			out.Action = models.ActionRelease
		}
		c.release()
	}
	out.View = c.View()
	return out
}

// Device presses never start a pan.
func (c *Controller) deviceDown(ev models.PointerEvent, out *models.PointerOutcome) {
	switch c.mode {
	case models.ModeEdit:
		c.dragging = ev.DeviceID
		c.selected = ev.DeviceID
		origin := c.layout.PositionOrDefault(ev.DeviceID)
		mouse := c.ToDiagram(ev.X, ev.Y)
		c.dragOffset = models.Position{X: mouse.X - origin.X, Y: mouse.Y - origin.Y}
		out.Action = models.ActionDragStart
	case models.ModeLink:
		switch c.linkSource {
		case "":
			c.linkSource = ev.DeviceID
			out.Action = models.ActionLinkSource
		case ev.DeviceID:
		default:
			out.Draft = &models.LinkDraft{Input: models.LinkInput{
				SourceDeviceID: c.linkSource,
				TargetDeviceID: ev.DeviceID,
				LinkType:       DraftLinkType,
				Bandwidth:      DraftBandwidth,
				Status:         DraftStatus,
			}}
			c.linkSource = ""
			out.Action = models.ActionLinkDraft
		}
	}
}

func (c *Controller) move(ev models.PointerEvent, out *models.PointerOutcome) {
	switch {
	case c.panning && c.mode == models.ModePan:
		c.pan.X += ev.X - c.lastPan.X
		c.pan.Y += ev.Y - c.lastPan.Y
		c.lastPan = models.Position{X: ev.X, Y: ev.Y}
		out.Action = models.ActionPan
	case c.dragging != "" && c.mode == models.ModeEdit:
		p := c.ToDiagram(ev.X, ev.Y)
		x := math.Max(0, p.X-c.dragOffset.X)
		y := math.Max(0, p.Y-c.dragOffset.Y)
		if res, ok := c.layout.SetPosition(c.dragging, x, y); ok {
			out.Position = &res
		}
		out.Action = models.ActionDrag
	}
}

func (c *Controller) release() {
	c.panning = false
	c.dragging = ""
}

// Dragging returns the id of the device being dragged, if any.
func (c *Controller) Dragging() string {
	return c.dragging
}

// View returns the current view state.
func (c *Controller) View() models.ViewState {
	return models.ViewState{
		Mode:           c.mode,
		Zoom:           c.zoom,
		Pan:            c.pan,
		Transform:      Transform(c.pan, c.zoom),
		SelectedDevice: c.selected,
		LinkSource:     c.linkSource,
		Panning:        c.panning,
		DraggedDevice:  c.dragging,
		FaultOverlay:   c.overlay,
	}
}

// Transform renders a view transform as an SVG transform attribute.
func Transform(pan models.Position, zoom float64) string {
	return "translate(" + num(pan.X) + ", " + num(pan.Y) + ") scale(" + num(zoom) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundZoom(z float64) float64 {
	return math.Round(z*100) / 100
}

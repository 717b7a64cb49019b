package service

import (
	"context"
	"time"

	"github.com/Beenod004/Networkfault/internal/diagram"
	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

func (s *dashboardService) recordPlacement(r models.PlacementResult) {
	if r.Exhausted {
		metrics.LayoutExhaustedTotal.Inc()
		s.log.Warn("no collision-free position found", "x", r.Position.X, "y", r.Position.Y, "attempts", r.Attempts)
	}
}

func (s *dashboardService) Positions(ctx context.Context) []models.DevicePosition {
	_, span := s.span(ctx, "Positions")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Positions()
}

func (s *dashboardService) Position(ctx context.Context, id string) (*models.DevicePosition, error) {
	_, span := s.span(ctx, "Position", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.layout.Position(id)
	if !ok {
		return nil, notFound("position", id)
	}
	return &models.DevicePosition{ID: id, X: p.X, Y: p.Y}, nil
}

// MoveDevice places a device at the nearest collision-free point to (x, y).
func (s *dashboardService) MoveDevice(ctx context.Context, id string, x, y float64) (*models.PlacementResult, error) {
	_, span := s.span(ctx, "MoveDevice", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.layout.SetPosition(id, x, y)
	if !ok {
		return nil, notFound("position", id)
	}
	s.recordPlacement(r)
	s.changed(MessageLayoutUpdate, "position", "moved", map[string]interface{}{"id": id, "position": r.Position})
	return &r, nil
}

func (s *dashboardService) ResolvePosition(ctx context.Context, x, y float64, excludeID string) models.PlacementResult {
	_, span := s.span(ctx, "ResolvePosition")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.layout.FindValidPosition(x, y, excludeID)
	span.SetAttributes(attribute.Int("layout.attempts", r.Attempts), attribute.Bool("layout.exhausted", r.Exhausted))
	return r
}

func (s *dashboardService) LinkPath(ctx context.Context, source, target models.Position) models.LinkPath {
	_, span := s.span(ctx, "LinkPath")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.layout.LinkPath(source, target)
	metrics.LinkPathsTotal.WithLabelValues(string(p.Kind)).Inc()
	return p
}

func (s *dashboardService) Diagram(ctx context.Context) *models.DiagramGraph {
	_, span := s.span(ctx, "Diagram")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked()
}

// buildLocked must be called with s.mu held.
func (s *dashboardService) buildLocked() *models.DiagramGraph {
	start := time.Now()
	g := diagram.Build(diagram.Input{
		Devices:  s.store.Devices(),
		Links:    s.store.Links(),
		Faults:   s.store.Faults(),
		Geometry: s.layout,
		View:     s.ctrl.View(),
		Revision: s.revision,
	})
	metrics.DiagramBuildDurationSeconds.Observe(time.Since(start).Seconds())
	return g
}

func (s *dashboardService) View(ctx context.Context) models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.View()
}

// viewChanged must be called with s.mu held.
func (s *dashboardService) viewChanged(event string) models.ViewState {
	v := s.ctrl.View()
	s.changed(MessageViewUpdate, "view", event, map[string]interface{}{
		"mode":         v.Mode,
		"zoom":         v.Zoom,
		"faultOverlay": v.FaultOverlay,
	})
	return v
}

func (s *dashboardService) SetMode(ctx context.Context, mode models.InteractionMode) (models.ViewState, error) {
	_, span := s.span(ctx, "SetMode", attribute.String("view.mode", string(mode)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.SetMode(mode); err != nil {
		return s.ctrl.View(), err
	}
	return s.viewChanged("mode"), nil
}

func (s *dashboardService) Zoom(ctx context.Context, in bool) models.ViewState {
	_, span := s.span(ctx, "Zoom", attribute.Bool("zoom.in", in))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if in {
		s.ctrl.ZoomIn()
	} else {
		s.ctrl.ZoomOut()
	}
	return s.viewChanged("zoom")
}

func (s *dashboardService) ResetView(ctx context.Context) models.ViewState {
	_, span := s.span(ctx, "ResetView")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.ResetView()
	return s.viewChanged("reset")
}

func (s *dashboardService) SetFaultOverlay(ctx context.Context, enabled bool) models.ViewState {
	_, span := s.span(ctx, "SetFaultOverlay", attribute.Bool("overlay", enabled))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetFaultOverlay(enabled)
	return s.viewChanged("overlay")
}

// SelectDevice highlights a device; an empty id clears the selection.
func (s *dashboardService) SelectDevice(ctx context.Context, id string) (models.ViewState, error) {
	_, span := s.span(ctx, "SelectDevice", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.store.Device(id); !ok {
			return s.ctrl.View(), notFound("device", id)
		}
	}
	s.ctrl.Select(id)
	return s.viewChanged("select"), nil
}

// Pointer routes a canvas pointer event. A press on an unknown device is
// treated as a press on empty canvas.
func (s *dashboardService) Pointer(ctx context.Context, ev models.PointerEvent) models.PointerOutcome {
	_, span := s.span(ctx, "Pointer",
		attribute.String("pointer.type", string(ev.Type)),
		attribute.String("device.id", ev.DeviceID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.DeviceID != "" {
		if _, ok := s.store.Device(ev.DeviceID); !ok {
			ev.DeviceID = ""
		}
	}
	out := s.ctrl.Pointer(ev)
	span.SetAttributes(attribute.String("pointer.action", string(out.Action)))

	switch out.Action {
	case models.ActionDrag:
		if out.Position != nil {
			s.recordPlacement(*out.Position)
			s.changed(MessageLayoutUpdate, "position", "moved", map[string]interface{}{
				"id":       out.View.DraggedDevice,
				"position": out.Position.Position,
			})
		}
	case models.ActionNone, models.ActionPan:
		// pan offsets are published once, on release
	default:
		s.viewChanged(string(out.Action))
	}
	return out
}

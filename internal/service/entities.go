package service

import (
	"context"

	"github.com/Beenod004/Networkfault/internal/correlate"
	"github.com/Beenod004/Networkfault/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

func (s *dashboardService) ListDevices(ctx context.Context) []models.Device {
	_, span := s.span(ctx, "ListDevices")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Devices()
}

func (s *dashboardService) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	_, span := s.span(ctx, "GetDevice", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.store.Device(id)
	if !ok {
		return nil, notFound("device", id)
	}
	return &d, nil
}

// AddDevice creates the device and places it near the canvas center.
func (s *dashboardService) AddDevice(ctx context.Context, in models.DeviceInput) (*models.Device, error) {
	_, span := s.span(ctx, "AddDevice", attribute.String("device.type", string(in.Type)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.store.AddDevice(in)
	placed := s.layout.Place(d.ID)
	s.recordPlacement(placed)
	span.SetAttributes(attribute.String("device.id", d.ID), attribute.Int("layout.attempts", placed.Attempts))
	s.changed(MessageEntityUpdate, "device", "created", map[string]interface{}{
		"id":       d.ID,
		"position": placed.Position,
	})
	s.log.Info("device added", "id", d.ID, "type", d.Type, "x", placed.Position.X, "y", placed.Position.Y)
	return &d, nil
}

func (s *dashboardService) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (*models.Device, error) {
	_, span := s.span(ctx, "UpdateDevice", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.store.UpdateDevice(id, patch)
	if !ok {
		return nil, notFound("device", id)
	}
	s.changed(MessageEntityUpdate, "device", "updated", map[string]interface{}{"id": id})
	return &d, nil
}

func (s *dashboardService) SetDeviceStatus(ctx context.Context, id string, status models.DeviceStatus) (*models.Device, error) {
	_, span := s.span(ctx, "SetDeviceStatus", attribute.String("device.id", id), attribute.String("device.status", string(status)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.store.SetDeviceStatus(id, status)
	if !ok {
		return nil, notFound("device", id)
	}
	s.changed(MessageEntityUpdate, "device", "updated", map[string]interface{}{"id": id, "status": status})
	return &d, nil
}

// DeleteDevice removes the device, its links, its position and any view
// reference to it. It returns the ids of the removed links.
func (s *dashboardService) DeleteDevice(ctx context.Context, id string) ([]string, error) {
	_, span := s.span(ctx, "DeleteDevice", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.store.DeleteDevice(id)
	if !ok {
		return nil, notFound("device", id)
	}
	// a duplicate id may still be live; its position and view state stay
	if _, live := s.store.Device(id); !live {
		s.layout.Remove(id)
		s.ctrl.Forget(id)
	}
	span.SetAttributes(attribute.Int("links.removed", len(removed)))
	s.changed(MessageEntityUpdate, "device", "deleted", map[string]interface{}{
		"id":           id,
		"removedLinks": removed,
	})
	s.log.Info("device deleted", "id", id, "removed_links", len(removed))
	return removed, nil
}

func (s *dashboardService) DeviceFaults(ctx context.Context, id string) ([]models.Fault, error) {
	_, span := s.span(ctx, "DeviceFaults", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.store.Device(id)
	if !ok {
		return nil, notFound("device", id)
	}
	return correlate.FaultsForDevice(s.store.Faults(), d), nil
}

func (s *dashboardService) DeviceLinks(ctx context.Context, id string) ([]models.Link, error) {
	_, span := s.span(ctx, "DeviceLinks", attribute.String("device.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store.Device(id); !ok {
		return nil, notFound("device", id)
	}
	return s.store.LinksForDevice(id), nil
}

func (s *dashboardService) ListLinks(ctx context.Context) []models.Link {
	_, span := s.span(ctx, "ListLinks")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Links()
}

func (s *dashboardService) GetLink(ctx context.Context, id string) (*models.Link, error) {
	_, span := s.span(ctx, "GetLink", attribute.String("link.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.store.Link(id)
	if !ok {
		return nil, notFound("link", id)
	}
	return &l, nil
}

// AddLink creates a link. Endpoints are not checked against the device
// collection; a link to an unknown device is drawn from the default position.
func (s *dashboardService) AddLink(ctx context.Context, in models.LinkInput) (*models.Link, error) {
	_, span := s.span(ctx, "AddLink",
		attribute.String("link.source", in.SourceDeviceID),
		attribute.String("link.target", in.TargetDeviceID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.store.AddLink(in)
	span.SetAttributes(attribute.String("link.id", l.ID))
	s.changed(MessageEntityUpdate, "link", "created", map[string]interface{}{"id": l.ID})
	s.log.Info("link added", "id", l.ID, "source", l.SourceDeviceID, "target", l.TargetDeviceID)
	return &l, nil
}

func (s *dashboardService) DeleteLink(ctx context.Context, id string) error {
	_, span := s.span(ctx, "DeleteLink", attribute.String("link.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.DeleteLink(id) {
		return notFound("link", id)
	}
	s.changed(MessageEntityUpdate, "link", "deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *dashboardService) LinkFaults(ctx context.Context, id string) ([]models.Fault, error) {
	_, span := s.span(ctx, "LinkFaults", attribute.String("link.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.store.Link(id)
	if !ok {
		return nil, notFound("link", id)
	}
	return correlate.FaultsForLink(s.store.Faults(), s.devicePtr(l.SourceDeviceID), s.devicePtr(l.TargetDeviceID)), nil
}

func (s *dashboardService) devicePtr(id string) *models.Device {
	d, ok := s.store.Device(id)
	if !ok {
		return nil
	}
	return &d
}

func (s *dashboardService) ListFaults(ctx context.Context, filter correlate.FaultFilter) []models.Fault {
	_, span := s.span(ctx, "ListFaults",
		attribute.String("filter.status", filter.Status),
		attribute.String("filter.severity", filter.Severity))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return correlate.FilterFaults(s.store.Faults(), filter)
}

func (s *dashboardService) GetFault(ctx context.Context, id string) (*models.Fault, error) {
	_, span := s.span(ctx, "GetFault", attribute.String("fault.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.store.Fault(id)
	if !ok {
		return nil, notFound("fault", id)
	}
	return &f, nil
}

func (s *dashboardService) AddFault(ctx context.Context, in models.FaultInput) (*models.Fault, error) {
	_, span := s.span(ctx, "AddFault", attribute.String("fault.severity", string(in.Severity)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.store.AddFault(in)
	span.SetAttributes(attribute.String("fault.id", f.ID))
	s.changed(MessageEntityUpdate, "fault", "created", map[string]interface{}{"id": f.ID, "severity": f.Severity})
	s.log.Info("fault reported", "id", f.ID, "severity", f.Severity, "location", f.Location)
	return &f, nil
}

func (s *dashboardService) UpdateFault(ctx context.Context, id string, patch models.FaultPatch) (*models.Fault, error) {
	_, span := s.span(ctx, "UpdateFault", attribute.String("fault.id", id))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.store.UpdateFault(id, patch)
	if !ok {
		return nil, notFound("fault", id)
	}
	s.changed(MessageEntityUpdate, "fault", "updated", map[string]interface{}{"id": id})
	return &f, nil
}

func (s *dashboardService) SetFaultStatus(ctx context.Context, id string, status models.FaultStatus) (*models.Fault, error) {
	_, span := s.span(ctx, "SetFaultStatus", attribute.String("fault.id", id), attribute.String("fault.status", string(status)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.store.SetFaultStatus(id, status)
	if !ok {
		return nil, notFound("fault", id)
	}
	s.changed(MessageEntityUpdate, "fault", "updated", map[string]interface{}{"id": id, "status": status})
	return &f, nil
}

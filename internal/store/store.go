// Package store holds the dashboard's devices, links and faults in memory.
// It is not safe for concurrent use; the dashboard service serializes access.
package store

import (
	"time"

	"github.com/Beenod004/Networkfault/internal/models"
)

// DefaultTrunkLine is assigned to devices added without a trunk line.
const DefaultTrunkLine = "trunk-a"

// Store holds three ordered collections, newest first.
type Store struct {
	devices []models.Device
	links   []models.Link
	faults  []models.Fault

	now func() time.Time
	ids idGenerator
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for lastSeen and reportedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMonotonicIDs switches id synthesis from collection-length ordinals to
// per-prefix counters that never hand out the same id twice.
func WithMonotonicIDs() Option {
	return func(s *Store) {
		s.ids = &monotonicIDs{next: make(map[string]int)}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		devices: []models.Device{},
		links:   []models.Link{},
		faults:  []models.Fault{},
		now:     time.Now,
		ids:     lengthIDs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collections with the given data, preserving order. Used for seeding.
func (s *Store) Load(devices []models.Device, links []models.Link, faults []models.Fault) {
	s.devices = append([]models.Device{}, devices...)
	s.links = append([]models.Link{}, links...)
	s.faults = append([]models.Fault{}, faults...)
	s.ids.observe(s)
}

// Devices returns a snapshot of the device collection.
func (s *Store) Devices() []models.Device {
	return append([]models.Device{}, s.devices...)
}

// Links returns a snapshot of the link collection.
func (s *Store) Links() []models.Link {
	return append([]models.Link{}, s.links...)
}

// Faults returns a snapshot of the fault collection.
func (s *Store) Faults() []models.Fault {
	return append([]models.Fault{}, s.faults...)
}

// DeviceCount returns the number of devices.
func (s *Store) DeviceCount() int {
	return len(s.devices)
}

// Device looks up a device by id.
func (s *Store) Device(id string) (models.Device, bool) {
	if i := s.deviceIndex(id); i >= 0 {
		return s.devices[i], true
	}
	return models.Device{}, false
}

// Link looks up a link by id.
func (s *Store) Link(id string) (models.Link, bool) {
	for _, l := range s.links {
		if l.ID == id {
			return l, true
		}
	}
	return models.Link{}, false
}

// Fault looks up a fault by id.
func (s *Store) Fault(id string) (models.Fault, bool) {
	if i := s.faultIndex(id); i >= 0 {
		return s.faults[i], true
	}
	return models.Fault{}, false
}

// LinksForDevice returns the links that have id as source or target.
func (s *Store) LinksForDevice(id string) []models.Link {
	out := []models.Link{}
	for _, l := range s.links {
		if l.Touches(id) {
			out = append(out, l)
		}
	}
	return out
}

// AddDevice creates a device with a synthesized id and prepends it.
func (s *Store) AddDevice(in models.DeviceInput) models.Device {
	trunk := in.TrunkLine
	if trunk == "" {
		trunk = DefaultTrunkLine
	}
	d := models.Device{
		ID:               s.ids.deviceID(s, in.Type),
		Name:             in.Name,
		Type:             in.Type,
		IPAddress:        in.IPAddress,
		Location:         in.Location,
		Status:           in.Status,
		Model:            in.Model,
		Ports:            in.Ports,
		ConnectedDevices: in.ConnectedDevices,
		LastSeen:         s.now(),
		TrunkLine:        trunk,
	}
	s.devices = append([]models.Device{d}, s.devices...)
	return d
}

// UpdateDevice applies patch to the device and refreshes its lastSeen.
// Unknown ids are a no-op and report false.
func (s *Store) UpdateDevice(id string, patch models.DevicePatch) (models.Device, bool) {
	i := s.deviceIndex(id)
	if i < 0 {
		return models.Device{}, false
	}
	patch.Apply(&s.devices[i])
	s.devices[i].LastSeen = s.now()
	return s.devices[i], true
}

// SetDeviceStatus changes only the status of a device and refreshes its lastSeen.
func (s *Store) SetDeviceStatus(id string, status models.DeviceStatus) (models.Device, bool) {
	return s.UpdateDevice(id, models.DevicePatch{Status: &status})
}

// DeleteDevice removes the device and every link that has it as an endpoint.
// It returns the ids of the removed links.
func (s *Store) DeleteDevice(id string) ([]string, bool) {
	i := s.deviceIndex(id)
	if i < 0 {
		return nil, false
	}
	s.devices = append(s.devices[:i:i], s.devices[i+1:]...)

	removed := []string{}
	kept := s.links[:0:0]
	for _, l := range s.links {
		if l.Touches(id) {
			removed = append(removed, l.ID)
			continue
		}
		kept = append(kept, l)
	}
	s.links = kept
	return removed, true
}

// AddLink creates a link and prepends it. Endpoints are not checked.
func (s *Store) AddLink(in models.LinkInput) models.Link {
	l := models.Link{
		ID:             s.ids.linkID(s),
		SourceDeviceID: in.SourceDeviceID,
		TargetDeviceID: in.TargetDeviceID,
		SourcePort:     in.SourcePort,
		TargetPort:     in.TargetPort,
		LinkType:       in.LinkType,
		Bandwidth:      in.Bandwidth,
		Status:         in.Status,
	}
	s.links = append([]models.Link{l}, s.links...)
	return l
}

// DeleteLink removes a link. Unknown ids report false.
func (s *Store) DeleteLink(id string) bool {
	for i, l := range s.links {
		if l.ID == id {
			s.links = append(s.links[:i:i], s.links[i+1:]...)
			return true
		}
	}
	return false
}

// AddFault records a fault stamped with the current time and prepends it.
func (s *Store) AddFault(in models.FaultInput) models.Fault {
	f := models.Fault{
		ID:          s.ids.faultID(s),
		Location:    in.Location,
		Description: in.Description,
		Severity:    in.Severity,
		Status:      in.Status,
		ReportedAt:  s.now(),
		TrunkLine:   in.TrunkLine,
	}
	if in.EstimatedRepair != nil {
		t := *in.EstimatedRepair
		f.EstimatedRepair = &t
	}
	s.faults = append([]models.Fault{f}, s.faults...)
	return f
}

// UpdateFault applies patch to the fault. Unknown ids report false.
func (s *Store) UpdateFault(id string, patch models.FaultPatch) (models.Fault, bool) {
	i := s.faultIndex(id)
	if i < 0 {
		return models.Fault{}, false
	}
	patch.Apply(&s.faults[i])
	return s.faults[i], true
}

// SetFaultStatus changes only the status of a fault.
func (s *Store) SetFaultStatus(id string, status models.FaultStatus) (models.Fault, bool) {
	return s.UpdateFault(id, models.FaultPatch{Status: &status})
}

func (s *Store) deviceIndex(id string) int {
	for i := range s.devices {
		if s.devices[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) faultIndex(id string) int {
	for i := range s.faults {
		if s.faults[i].ID == id {
			return i
		}
	}
	return -1
}

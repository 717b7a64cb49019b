package store

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Beenod004/Networkfault/internal/models"
)

const (
	linkPrefix  = "LINK"
	faultPrefix = "F"
)

// DevicePrefix returns the id prefix for a device type.
func DevicePrefix(t models.DeviceType) string {
	switch t {
	case models.DeviceTypeSwitch:
		return "SW"
	case models.DeviceTypeOLT:
		return "OLT"
	}
	return "DEV"
}

func formatID(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

type idGenerator interface {
	deviceID(s *Store, t models.DeviceType) string
	linkID(s *Store) string
	faultID(s *Store) string
	observe(s *Store)
}

// lengthIDs derives the ordinal from the collection size at call time.
// Ids can repeat after a deletion.
type lengthIDs struct{}

func (lengthIDs) deviceID(s *Store, t models.DeviceType) string {
	n := 0
	for _, d := range s.devices {
		if d.Type == t {
			n++
		}
	}
	return formatID(DevicePrefix(t), n+1)
}

func (lengthIDs) linkID(s *Store) string {
	return formatID(linkPrefix, len(s.links)+1)
}

func (lengthIDs) faultID(s *Store) string {
	return formatID(faultPrefix, len(s.faults)+1)
}

func (lengthIDs) observe(*Store) {}

// monotonicIDs keeps one counter per prefix, seeded from the highest id seen.
type monotonicIDs struct {
	next map[string]int
}

var idPattern = regexp.MustCompile(`^([A-Z]+?)(\d+)$`)

func (m *monotonicIDs) take(prefix string) string {
	m.next[prefix]++
	return formatID(prefix, m.next[prefix])
}

func (m *monotonicIDs) deviceID(s *Store, t models.DeviceType) string {
	m.observe(s)
	return m.take(DevicePrefix(t))
}

func (m *monotonicIDs) linkID(s *Store) string {
	m.observe(s)
	return m.take(linkPrefix)
}

func (m *monotonicIDs) faultID(s *Store) string {
	m.observe(s)
	return m.take(faultPrefix)
}

func (m *monotonicIDs) observe(s *Store) {
	seen := func(id string) {
		match := idPattern.FindStringSubmatch(id)
		if match == nil {
			return
		}
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return
		}
		if n > m.next[match[1]] {
			m.next[match[1]] = n
		}
	}
	for _, d := range s.devices {
		seen(d.ID)
	}
	for _, l := range s.links {
		seen(l.ID)
	}
	for _, f := range s.faults {
		seen(f.ID)
	}
}

// Package correlate associates faults with devices and links.
//
// Matching is heuristic: a fault relates to a device when it shares the
// device's trunk line or its location text mentions the device's location or
// name. The result is derived on every call and never stored.
package correlate

import (
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

// linkKeywords mark a fault location as describing cabling rather than a box.
var linkKeywords = []string{"fiber", "cable", "link", "connection"}

// FaultsForDevice returns the unresolved faults related to device, in input order.
func FaultsForDevice(faults []models.Fault, device models.Device) []models.Fault {
	name := strings.ToLower(device.Name)
	location := strings.ToLower(device.Location)

	out := []models.Fault{}
	for _, f := range faults {
		if f.Status == models.FaultResolved {
			continue
		}
		loc := strings.ToLower(f.Location)
		if f.TrunkLine == device.TrunkLine ||
			strings.Contains(loc, location) ||
			strings.Contains(loc, name) {
			out = append(out, f)
		}
	}
	return out
}

// FaultsForLink returns the unresolved faults related to a link between
// source and target. A nil endpoint never matches on trunk line.
func FaultsForLink(faults []models.Fault, source, target *models.Device) []models.Fault {
	out := []models.Fault{}
	for _, f := range faults {
		if f.Status == models.FaultResolved {
			continue
		}
		if onTrunk(f, source) || onTrunk(f, target) || mentionsCabling(f.Location) {
			out = append(out, f)
		}
	}
	return out
}

func onTrunk(f models.Fault, d *models.Device) bool {
	return d != nil && f.TrunkLine == d.TrunkLine
}

func mentionsCabling(location string) bool {
	loc := strings.ToLower(location)
	for _, kw := range linkKeywords {
		if strings.Contains(loc, kw) {
			return true
		}
	}
	return false
}

// Overlay summarizes related faults for rendering. The first fault is the
// representative one; Critical is set when any of them is critical.
func Overlay(related []models.Fault) models.FaultOverlay {
	o := models.FaultOverlay{Faults: related, Count: len(related)}
	if len(related) == 0 {
		o.Faults = []models.Fault{}
		return o
	}
	o.Severity = related[0].Severity
	o.Color = SeverityColor(o.Severity)
	for _, f := range related {
		if f.Severity == models.SeverityCritical {
			o.Critical = true
			break
		}
	}
	return o
}

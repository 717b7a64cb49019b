package correlate

import "github.com/Beenod004/Networkfault/internal/models"

// SeverityColor maps a severity to its display color.
func SeverityColor(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "#dc2626"
	case models.SeverityHigh:
		return "#ea580c"
	case models.SeverityMedium:
		return "#d97706"
	case models.SeverityLow:
		return "#2563eb"
	}
	return "#6b7280"
}

// Summary counts unresolved faults per severity, most severe first.
func Summary(faults []models.Fault) []models.SeverityCount {
	counts := make(map[models.Severity]int, len(models.Severities))
	for _, f := range faults {
		if f.Status != models.FaultResolved {
			counts[f.Severity]++
		}
	}
	out := make([]models.SeverityCount, 0, len(models.Severities))
	for _, s := range models.Severities {
		out = append(out, models.SeverityCount{Severity: s, Count: counts[s], Color: SeverityColor(s)})
	}
	return out
}

// Stats computes the dashboard header counters. CriticalFaults counts every
// critical fault regardless of status.
func Stats(devices []models.Device, links []models.Link, faults []models.Fault) models.DashboardStats {
	st := models.DashboardStats{
		TotalFaults: len(faults),
		Devices:     len(devices),
		Links:       len(links),
	}
	for _, f := range faults {
		if f.Status == models.FaultActive {
			st.ActiveFaults++
		}
		if f.Severity == models.SeverityCritical {
			st.CriticalFaults++
		}
	}
	for _, d := range devices {
		switch d.Type {
		case models.DeviceTypeSwitch:
			st.Switches++
		case models.DeviceTypeOLT:
			st.OLTs++
		}
		switch d.Status {
		case models.DeviceOnline:
			st.OnlineDevices++
		case models.DeviceOffline:
			st.OfflineDevices++
		}
	}
	return st
}

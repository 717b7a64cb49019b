package correlate

import (
	"testing"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleFaults() []models.Fault {
	return []models.Fault{
		{ID: "F001", Location: "Talamarang - Melamchi Fiber Link", Description: "cable cut", Severity: models.SeverityCritical, Status: models.FaultActive, TrunkLine: "trunk-a"},
		{ID: "F002", Location: "Bhadrapur_2.21 Switch", Description: "power outage", Severity: models.SeverityCritical, Status: models.FaultResolved, TrunkLine: "trunk-b"},
		{ID: "F003", Location: "Kankraban OLT", Description: "overheating", Severity: models.SeverityHigh, Status: models.FaultInvestigating, TrunkLine: "trunk-c"},
		{ID: "F004", Location: "Jitpur OLT", Description: "signal degradation", Severity: models.SeverityMedium, Status: models.FaultActive, TrunkLine: "trunk-b"},
	}
}

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, "#dc2626", SeverityColor(models.SeverityCritical))
	assert.Equal(t, "#ea580c", SeverityColor(models.SeverityHigh))
	assert.Equal(t, "#d97706", SeverityColor(models.SeverityMedium))
	assert.Equal(t, "#2563eb", SeverityColor(models.SeverityLow))
	assert.Equal(t, "#6b7280", SeverityColor("unknown"))
}

func TestSummary(t *testing.T) {
	got := Summary(sampleFaults())
	assert.Equal(t, []models.SeverityCount{
		{Severity: models.SeverityCritical, Count: 1, Color: "#dc2626"},
		{Severity: models.SeverityHigh, Count: 1, Color: "#ea580c"},
		{Severity: models.SeverityMedium, Count: 1, Color: "#d97706"},
		{Severity: models.SeverityLow, Count: 0, Color: "#2563eb"},
	}, got)
}

func TestStats(t *testing.T) {
	devices := []models.Device{
		{ID: "SW001", Type: models.DeviceTypeSwitch, Status: models.DeviceOnline},
		{ID: "SW002", Type: models.DeviceTypeSwitch, Status: models.DeviceOffline},
		{ID: "OLT001", Type: models.DeviceTypeOLT, Status: models.DeviceMaintenance},
	}
	links := []models.Link{{ID: "LINK001"}}

	st := Stats(devices, links, sampleFaults())
	assert.Equal(t, models.DashboardStats{
		TotalFaults:    4,
		ActiveFaults:   2,
		CriticalFaults: 2,
		Devices:        3,
		Switches:       2,
		OLTs:           1,
		Links:          1,
		OnlineDevices:  1,
		OfflineDevices: 1,
	}, st)
}

func TestFilterFaults(t *testing.T) {
	tests := []struct {
		name   string
		filter FaultFilter
		want   []string
	}{
		{"no filter", FaultFilter{}, []string{"F001", "F002", "F003", "F004"}},
		{"all keyword", FaultFilter{Status: FilterAll, Severity: FilterAll}, []string{"F001", "F002", "F003", "F004"}},
		{"status", FaultFilter{Status: "active"}, []string{"F001", "F004"}},
		{"severity", FaultFilter{Severity: "critical"}, []string{"F001", "F002"}},
		{"search description", FaultFilter{Search: "POWER"}, []string{"F002"}},
		{"search trunk", FaultFilter{Search: "trunk-b"}, []string{"F002", "F004"}},
		{"search id", FaultFilter{Search: "f003"}, []string{"F003"}},
		{"combined", FaultFilter{Search: "olt", Severity: "medium"}, []string{"F004"}},
		{"nothing", FaultFilter{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFaults(sampleFaults(), tt.filter)
			ids := []string{}
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Len(t, ds.Devices, 34)
	assert.Len(t, ds.Links, 31)
	assert.Len(t, ds.Faults, 10)
	assert.Len(t, ds.Positions, 34)

	switches := 0
	for _, d := range ds.Devices {
		if d.Type == models.DeviceTypeSwitch {
			switches++
		}
	}
	assert.Equal(t, 12, switches)

	first := ds.Faults[0]
	assert.Equal(t, "F001", first.ID)
	assert.Equal(t, models.SeverityCritical, first.Severity)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), first.ReportedAt.UTC())
	require.NotNil(t, first.EstimatedRepair)

	f009 := ds.Faults[8]
	assert.Equal(t, "F009", f009.ID)
	assert.Nil(t, f009.EstimatedRepair)

	assert.Equal(t, models.DevicePosition{ID: "OLT001", X: 400, Y: 50}, ds.Positions[0])
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
devices:
  - {id: SW001, name: a, type: switch, status: online}
positions:
  - {id: SW001, x: 10, y: 20}
`), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Devices, 1)
	assert.Equal(t, 10.0, ds.Positions[0].X)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"duplicate device", "devices: [{id: SW001}, {id: SW001}]"},
		{"orphan position", "devices: [{id: SW001}]\npositions: [{id: OLT001, x: 1, y: 1}]"},
		{"duplicate fault", "faults: [{id: F001}, {id: F001}]"},
		{"malformed", "devices: {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

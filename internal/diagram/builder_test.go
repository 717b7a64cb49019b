package diagram

import (
	"testing"

	"github.com/Beenod004/Networkfault/internal/layout"
	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() Input {
	eng := layout.New()
	eng.Seed([]models.DevicePosition{
		{ID: "SW001", X: 100, Y: 100},
		{ID: "OLT001", X: 500, Y: 100},
	})
	return Input{
		Devices: []models.Device{
			{ID: "SW001", Name: "Melamchi_2.58_core_switch", Type: models.DeviceTypeSwitch, Status: models.DeviceOnline, Location: "Melamchi", TrunkLine: "trunk-a"},
			{ID: "OLT001", Name: "Shermathan", Type: models.DeviceTypeOLT, Status: models.DeviceOffline, Location: "Shermathan Hub", TrunkLine: "trunk-b"},
		},
		Links: []models.Link{
			{ID: "LINK001", SourceDeviceID: "SW001", TargetDeviceID: "OLT001", LinkType: models.LinkFiber, Bandwidth: "10Gbps", Status: models.LinkActive},
			{ID: "LINK002", SourceDeviceID: "OLT001", TargetDeviceID: "GHOST", LinkType: models.LinkEthernet, Bandwidth: "100Mbps", Status: models.LinkActive},
		},
		Faults: []models.Fault{
			{ID: "F001", Location: "Melamchi rack", Severity: models.SeverityCritical, Status: models.FaultActive, TrunkLine: "trunk-a"},
		},
		Geometry: eng,
		View:     models.ViewState{Mode: models.ModePan, Zoom: 0.8, FaultOverlay: true},
		Revision: 7,
	}
}

func TestBuild_Nodes(t *testing.T) {
	g := Build(fixture())
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, uint64(7), g.Revision)
	assert.Equal(t, SchemaVersion, g.SchemaVersion)

	sw := g.Nodes[0]
	assert.Equal(t, "Melamchi_2.58_c...", sw.Label)
	assert.Equal(t, models.Position{X: 100, Y: 100}, sw.Position)
	assert.Equal(t, "#dcfce7", sw.Fill)
	assert.Equal(t, "#dc2626", sw.Stroke)
	assert.Equal(t, 3.0, sw.StrokeWidth)
	assert.Equal(t, AnimationCritical, sw.Animation)
	assert.Equal(t, 1, sw.Overlay.Count)

	olt := g.Nodes[1]
	assert.Equal(t, "Shermathan", olt.Label)
	assert.Equal(t, "#fef3c7", olt.Fill)
	assert.Equal(t, "#ef4444", olt.Stroke)
	assert.Equal(t, 0, olt.Overlay.Count)
}

func TestBuild_OverlayDisabled(t *testing.T) {
	in := fixture()
	in.View.FaultOverlay = false
	in.View.SelectedDevice = "SW001"
	g := Build(in)

	sw := g.Nodes[0]
	assert.Equal(t, "#dbeafe", sw.Fill)
	assert.Equal(t, "#2563eb", sw.Stroke)
	assert.Equal(t, 2.0, sw.StrokeWidth)
	assert.Equal(t, "#10b981", sw.StatusColor)
	assert.Empty(t, sw.Animation)
	assert.Equal(t, 1, sw.Overlay.Count, "overlay data is kept, only decoration is off")

	e := g.Edges[0]
	assert.Equal(t, "#8b5cf6", e.StrokeColor)
	assert.Equal(t, 3.0, e.StrokeWidth)
	assert.Empty(t, e.Dash)
}

func TestBuild_Edges(t *testing.T) {
	g := Build(fixture())
	require.Len(t, g.Edges, 2)

	e := g.Edges[0]
	assert.Equal(t, "M 160 120 L 560 120", e.Path.D)
	assert.Equal(t, "10G", e.Label)
	assert.Equal(t, models.Position{X: 360, Y: 120}, e.LabelAt)
	assert.Equal(t, "#dc2626", e.StrokeColor)
	assert.Equal(t, 4.0, e.StrokeWidth)
	assert.Equal(t, "10,5", e.Dash)
	assert.Equal(t, AnimationCritical, e.Animation)

	dangling := g.Edges[1]
	assert.Equal(t, "100M", dangling.Label)
	assert.Equal(t, layout.Center(layout.DefaultPosition), dangling.Path.End)
	assert.Equal(t, 0, dangling.Overlay.Count)
	assert.Equal(t, "#10b981", dangling.StrokeColor)
	assert.Equal(t, 2.0, dangling.StrokeWidth)
}

func TestBuild_LinkSourceFill(t *testing.T) {
	in := fixture()
	in.Faults = nil
	in.View.LinkSource = "SW001"
	g := Build(in)
	assert.Equal(t, "#fef3c7", g.Nodes[0].Fill)
	assert.Equal(t, "#f59e0b", g.Nodes[0].Stroke)
	assert.True(t, g.Nodes[0].LinkSource)
}

func TestStyles(t *testing.T) {
	assert.Equal(t, 4.0, LinkStrokeWidth("100Gbps"))
	assert.Equal(t, 3.5, LinkStrokeWidth("40Gbps"))
	assert.Equal(t, 3.0, LinkStrokeWidth("10gbps"))
	assert.Equal(t, 2.5, LinkStrokeWidth("1Gbps"))
	assert.Equal(t, 2.0, LinkStrokeWidth("20Gbps"))

	assert.Equal(t, "#ef4444", LinkColor(models.Link{LinkType: models.LinkFiber, Status: models.LinkInactive}))
	assert.Equal(t, "#10b981", LinkColor(models.Link{LinkType: models.LinkWireless, Status: models.LinkActive}))

	assert.Equal(t, "#f59e0b", StatusColor(models.DeviceMaintenance))
	assert.Equal(t, "#6b7280", StatusColor("unknown"))
	assert.Equal(t, "#ffffff", DeviceFill("router", false, false))
	assert.Equal(t, "exactly15chars!", NodeLabel("exactly15chars!"))
}

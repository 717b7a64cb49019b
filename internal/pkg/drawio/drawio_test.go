package drawio

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graph() *models.DiagramGraph {
	return &models.DiagramGraph{
		Nodes: []models.DiagramNode{
			{Device: models.Device{ID: "SW001", Type: models.DeviceTypeSwitch}, Label: `Melamchi "core"`, Fill: "#dcfce7", Stroke: "#dc2626"},
			{Device: models.Device{ID: "OLT-001", Type: models.DeviceTypeOLT}, Label: "Shermathan", Fill: "#fef3c7", Stroke: "#10b981"},
		},
		Edges: []models.DiagramEdge{
			{Link: models.Link{ID: "LINK001", SourceDeviceID: "SW001", TargetDeviceID: "OLT-001"}, Label: "20G", Dash: "10,5"},
			{Link: models.Link{ID: "LINK002", SourceDeviceID: "SW001", TargetDeviceID: "GONE"}, Label: "1G"},
		},
	}
}

func TestGraphToMermaid(t *testing.T) {
	out := GraphToMermaid(graph())
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "flowchart LR", lines[0])
	assert.Contains(t, out, `SW001["SWITCH: Melamchi 'core'"]`)
	assert.Contains(t, out, `OLT_001["OLT: Shermathan"]`)
	assert.Contains(t, out, "SW001 -.- |20G| OLT_001")
	assert.NotContains(t, out, "GONE")
	assert.Contains(t, out, "style SW001 fill:#dcfce7,stroke:#dc2626")
}

func TestGraphToMermaid_Empty(t *testing.T) {
	assert.Contains(t, GraphToMermaid(nil), "No devices")
}

func TestGenerateDrawioURL_RoundTrip(t *testing.T) {
	mermaid := GraphToMermaid(graph())
	link, err := GenerateDrawioURL(mermaid)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, drawioBaseURL))

	hash := link[strings.Index(link, "#create=")+len("#create="):]
	raw, err := url.QueryUnescape(hash)
	require.NoError(t, err)
	var obj createObj
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	assert.Equal(t, "mermaid", obj.Type)

	compressed, err := base64.StdEncoding.DecodeString(obj.Data)
	require.NoError(t, err)
	inflated, err := io.ReadAll(flate.NewReader(bytes.NewReader(compressed)))
	require.NoError(t, err)
	decoded, err := url.QueryUnescape(string(inflated))
	require.NoError(t, err)
	assert.Equal(t, mermaid, decoded)

	empty, err := GenerateDrawioURL("")
	require.NoError(t, err)
	assert.Equal(t, drawioBaseURL, empty)
}

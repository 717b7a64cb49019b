// Package drawio converts the diagram to Mermaid and builds diagrams.net editor links.
package drawio

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

const drawioBaseURL = "https://app.diagrams.net/"

var (
	unsafeIDChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	repeatedUnder = regexp.MustCompile(`_+`)
)

// sanitizeID makes a string safe for Mermaid node IDs.
func sanitizeID(s string) string {
	s = unsafeIDChars.ReplaceAllString(s, "_")
	s = repeatedUnder.ReplaceAllString(s, "_")
	if len(s) > 50 {
		s = s[:50]
	}
	if s == "" {
		s = "node"
	}
	return s
}

// GraphToMermaid converts the diagram to Mermaid flowchart syntax.
// Nodes with faults under the overlay keep their fault stroke color.
func GraphToMermaid(graph *models.DiagramGraph) string {
	if graph == nil || len(graph.Nodes) == 0 {
		return "flowchart LR\n  empty[No devices]"
	}

	lines := []string{"flowchart LR"}
	nodeIDs := make(map[string]string, len(graph.Nodes))
	var styles []string

	for _, node := range graph.Nodes {
		safeID := sanitizeID(node.Device.ID)
		if _, dup := nodeIDs[node.Device.ID]; dup {
			continue
		}
		nodeIDs[node.Device.ID] = safeID
		label := strings.ReplaceAll(node.Label, `"`, "'")
		lines = append(lines, `  `+safeID+`["`+strings.ToUpper(string(node.Device.Type))+`: `+label+`"]`)
		styles = append(styles, fmt.Sprintf("  style %s fill:%s,stroke:%s", safeID, node.Fill, node.Stroke))
	}

	for _, edge := range graph.Edges {
		fromID, ok1 := nodeIDs[edge.Link.SourceDeviceID]
		toID, ok2 := nodeIDs[edge.Link.TargetDeviceID]
		if !ok1 || !ok2 {
			continue
		}
		arrow := " --- "
		if edge.Dash != "" {
			arrow = " -.- "
		}
		label := ""
		if edge.Label != "" {
			label = `|` + strings.ReplaceAll(edge.Label, "|", "/") + `|`
		}
		lines = append(lines, `  `+fromID+arrow+label+` `+toID)
	}

	lines = append(lines, styles...)
	return strings.Join(lines, "\n")
}

// createObj is the draw.io JSON structure for create= hash.
type createObj struct {
	Type       string `json:"type"`
	Compressed bool   `json:"compressed"`
	Data       string `json:"data"`
}

// GenerateDrawioURL creates a draw.io URL that opens the editor with the given Mermaid content.
func GenerateDrawioURL(mermaid string) (string, error) {
	if mermaid == "" {
		return drawioBaseURL, nil
	}

	encoded := url.QueryEscape(mermaid)
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create deflate writer: %w", err)
	}
	if _, err := w.Write([]byte(encoded)); err != nil {
		w.Close()
		return "", fmt.Errorf("compress mermaid: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compress mermaid: %w", err)
	}
	compressed := base64.StdEncoding.EncodeToString(buf.Bytes())

	jsonBytes, err := json.Marshal(createObj{
		Type:       "mermaid",
		Compressed: true,
		Data:       compressed,
	})
	if err != nil {
		return "", fmt.Errorf("marshal create payload: %w", err)
	}
	createHash := "#create=" + url.QueryEscape(string(jsonBytes))
	return drawioBaseURL + "?grid=0&pv=0&border=10&edit=_blank" + createHash, nil
}

package topologyexport

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Beenod004/Networkfault/internal/layout"
	"github.com/Beenod004/Networkfault/internal/models"
)

const (
	nodeWidth  = layout.DeviceWidth
	nodeHeight = layout.DeviceHeight
	margin     = 20
)

// bounds returns the box enclosing every node, with margin.
func bounds(g *models.DiagramGraph) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, n := range g.Nodes {
		minX = math.Min(minX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxX = math.Max(maxX, n.Position.X+nodeWidth)
		maxY = math.Max(maxY, n.Position.Y+nodeHeight)
	}
	for _, e := range g.Edges {
		if e.Path.Control != nil {
			minY = math.Min(minY, e.Path.Control.Y)
			maxY = math.Max(maxY, e.Path.Control.Y)
		}
	}
	return minX - margin, minY - margin, maxX + margin, maxY + margin
}

// GraphToJSON returns the render model as JSON bytes.
func GraphToJSON(g *models.DiagramGraph) ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(g, "", "  ")
}

// GraphToSVG returns an SVG document of the diagram in diagram coordinates.
func GraphToSVG(g *models.DiagramGraph) ([]byte, error) {
	if g == nil || len(g.Nodes) == 0 {
		return []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="100"><text x="20" y="50" font-size="14">No devices</text></svg>`), nil
	}
	minX, minY, maxX, maxY := bounds(g)
	width, height := maxX-minX, maxY-minY

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		num(width), num(height), num(minX), num(minY), num(width), num(height)))
	buf.WriteString(`<defs><style>.label { font: 11px sans-serif; fill: #374151; } .bw { font: 10px sans-serif; } .critical-blink { animation: blink 1s infinite; } @keyframes blink { 50% { opacity: 0.3; } }</style></defs>`)
	for _, e := range g.Edges {
		class := ""
		if e.Animation != "" {
			class = fmt.Sprintf(` class="%s"`, e.Animation)
		}
		dash := ""
		if e.Dash != "" {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, e.Dash)
		}
		buf.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="%s" fill="none"%s%s><title>%s</title></path>`,
			e.Path.D, e.StrokeColor, num(e.StrokeWidth), dash, class, escapeXML(e.Link.ID)))
		buf.WriteString(fmt.Sprintf(`<text class="bw" x="%s" y="%s" text-anchor="middle" fill="%s">%s</text>`,
			num(e.LabelAt.X), num(e.LabelAt.Y), e.StrokeColor, escapeXML(e.Label)))
	}
	for _, n := range g.Nodes {
		x, y := n.Position.X, n.Position.Y
		class := ""
		if n.Animation != "" {
			class = fmt.Sprintf(` class="%s"`, n.Animation)
		}
		buf.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%d" height="%d" rx="8" fill="%s" stroke="%s" stroke-width="%s"%s><title>%s</title></rect>`,
			num(x), num(y), nodeWidth, nodeHeight, n.Fill, n.Stroke, num(n.StrokeWidth), class, escapeXML(n.Device.ID)))
		buf.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="3" fill="%s"/>`, num(x+110), num(y+10), n.StatusColor))
		buf.WriteString(fmt.Sprintf(`<text class="label" x="%s" y="%s">%s</text>`, num(x+10), num(y+nodeHeight/2+4), escapeXML(n.Label)))
	}
	buf.WriteString("</svg>")
	return buf.Bytes(), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;").Replace(s)
}

// draw.io mxfile structure (minimal valid export)
type mxfile struct {
	XMLName  xml.Name  `xml:"mxfile"`
	Host     string    `xml:"host,attr"`
	Modified string    `xml:"modified,attr"`
	Agent    string    `xml:"agent,attr"`
	Version  string    `xml:"version,attr"`
	Diagram  mxDiagram `xml:"diagram"`
}

type mxDiagram struct {
	XMLName      xml.Name     `xml:"diagram"`
	ID           string       `xml:"id,attr"`
	Name         string       `xml:"name,attr"`
	MxGraphModel mxGraphModel `xml:"mxGraphModel"`
}

type mxGraphModel struct {
	XMLName  xml.Name `xml:"mxGraphModel"`
	DX       int      `xml:"dx,attr"`
	DY       int      `xml:"dy,attr"`
	Grid     int      `xml:"grid,attr"`
	GridSize int      `xml:"gridSize,attr"`
	Root     mxRoot   `xml:"root"`
}

type mxRoot struct {
	XMLName xml.Name `xml:"root"`
	Cells   []mxCell `xml:"mxCell"`
}

type mxCell struct {
	XMLName  xml.Name    `xml:"mxCell"`
	ID       string      `xml:"id,attr"`
	Parent   string      `xml:"parent,attr,omitempty"`
	Value    string      `xml:"value,attr,omitempty"`
	Style    string      `xml:"style,attr,omitempty"`
	Vertex   string      `xml:"vertex,attr,omitempty"`
	Edge     string      `xml:"edge,attr,omitempty"`
	Source   string      `xml:"source,attr,omitempty"`
	Target   string      `xml:"target,attr,omitempty"`
	Geometry *mxGeometry `xml:"mxGeometry,omitempty"`
}

type mxGeometry struct {
	XMLName  xml.Name `xml:"mxGeometry"`
	X        string   `xml:"x,attr,omitempty"`
	Y        string   `xml:"y,attr,omitempty"`
	Width    string   `xml:"width,attr,omitempty"`
	Height   string   `xml:"height,attr,omitempty"`
	Relative string   `xml:"relative,attr,omitempty"`
	As       string   `xml:"as,attr,omitempty"`
	Points   *mxArray `xml:"Array,omitempty"`
}

type mxArray struct {
	As     string    `xml:"as,attr"`
	Points []mxPoint `xml:"mxPoint"`
}

type mxPoint struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

// GraphToDrawioXML returns draw.io (diagrams.net) XML bytes. Curved links
// keep their control point as a waypoint. Links to devices missing from the
// graph are left out.
func GraphToDrawioXML(g *models.DiagramGraph) ([]byte, error) {
	if g == nil || len(g.Nodes) == 0 {
		return []byte(`<mxfile host="app.diagrams.net"><diagram id="0" name="empty"><mxGraphModel dx="0" dy="0" grid="1" gridSize="10"><root><mxCell id="0"/><mxCell id="1" parent="0"/></root></mxGraphModel></diagram></mxfile>`), nil
	}
	cells := []mxCell{{ID: "0"}, {ID: "1", Parent: "0"}}
	nodeCell := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		cid := "dev-" + n.Device.ID
		nodeCell[n.Device.ID] = cid
		cells = append(cells, mxCell{
			ID:     cid,
			Parent: "1",
			Value:  n.Label,
			Style:  fmt.Sprintf("rounded=1;whiteSpace=wrap;html=1;fillColor=%s;strokeColor=%s;strokeWidth=%s;", n.Fill, n.Stroke, num(n.StrokeWidth)),
			Vertex: "1",
			Geometry: &mxGeometry{
				X: num(n.Position.X), Y: num(n.Position.Y),
				Width: strconv.Itoa(nodeWidth), Height: strconv.Itoa(nodeHeight), As: "geometry",
			},
		})
	}
	for _, e := range g.Edges {
		srcID, ok1 := nodeCell[e.Link.SourceDeviceID]
		dstID, ok2 := nodeCell[e.Link.TargetDeviceID]
		if !ok1 || !ok2 {
			continue
		}
		style := fmt.Sprintf("endArrow=none;html=1;strokeColor=%s;strokeWidth=%s;", e.StrokeColor, num(e.StrokeWidth))
		geo := &mxGeometry{Relative: "1", As: "geometry"}
		if e.Path.Control != nil {
			style += "curved=1;"
			geo.Points = &mxArray{As: "points", Points: []mxPoint{{X: num(e.Path.Control.X), Y: num(e.Path.Control.Y)}}}
		}
		if e.Dash != "" {
			style += "dashed=1;dashPattern=" + strings.ReplaceAll(e.Dash, ",", " ") + ";"
		}
		cells = append(cells, mxCell{
			ID:       "link-" + e.Link.ID,
			Parent:   "1",
			Value:    e.Label,
			Edge:     "1",
			Source:   srcID,
			Target:   dstID,
			Style:    style,
			Geometry: geo,
		})
	}
	mx := mxfile{
		Host: "app.diagrams.net", Modified: "2024-01-01T00:00:00.000Z", Agent: "Networkfault", Version: "21.0.0",
		Diagram: mxDiagram{
			ID: "network", Name: "Access network",
			MxGraphModel: mxGraphModel{DX: 1200, DY: 800, Grid: 1, GridSize: 10, Root: mxRoot{Cells: cells}},
		},
	}
	return xml.MarshalIndent(mx, "", "  ")
}

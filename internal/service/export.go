package service

import (
	"context"
	"fmt"

	"github.com/Beenod004/Networkfault/internal/pkg/drawio"
	"github.com/Beenod004/Networkfault/internal/pkg/topologycache"
	"github.com/Beenod004/Networkfault/internal/pkg/topologyexport"
	"github.com/Beenod004/Networkfault/internal/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// Export formats.
const (
	FormatJSON    = "json"
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatDrawio  = "drawio"
	FormatMermaid = "mermaid"
)

// Formats lists the supported export formats.
var Formats = []string{FormatJSON, FormatSVG, FormatPNG, FormatDrawio, FormatMermaid}

var contentTypes = map[string]string{
	FormatJSON:    "application/json",
	FormatSVG:     "image/svg+xml",
	FormatPNG:     "image/png",
	FormatDrawio:  "application/xml",
	FormatMermaid: "text/plain; charset=utf-8",
}

// Export renders the current diagram. Results are cached per revision.
func (s *dashboardService) Export(ctx context.Context, format string) (topologycache.Export, error) {
	_, span := s.span(ctx, "Export", attribute.String("export.format", format))
	defer span.End()

	ct, ok := contentTypes[format]
	if !ok {
		return topologycache.Export{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, hit := s.cache.Get(format, s.revision); hit {
		return e, nil
	}

	g := s.buildLocked()
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatJSON:
		body, err = topologyexport.GraphToJSON(g)
	case FormatSVG:
		body, err = topologyexport.GraphToSVG(g)
	case FormatPNG:
		body, err = topologyexport.GraphToPNG(g)
	case FormatDrawio:
		body, err = topologyexport.GraphToDrawioXML(g)
	case FormatMermaid:
		body = []byte(drawio.GraphToMermaid(g))
	}
	if err != nil {
		tracing.RecordError(span, err)
		return topologycache.Export{}, fmt.Errorf("export %s: %w", format, err)
	}

	e := topologycache.Export{ContentType: ct, Body: body}
	s.cache.Set(format, s.revision, e)
	return e, nil
}

// DrawioURL returns a diagrams.net link that opens the diagram as Mermaid.
func (s *dashboardService) DrawioURL(ctx context.Context) (string, error) {
	e, err := s.Export(ctx, FormatMermaid)
	if err != nil {
		return "", err
	}
	u, err := drawio.GenerateDrawioURL(string(e.Body))
	if err != nil {
		return "", fmt.Errorf("drawio url: %w", err)
	}
	return u, nil
}

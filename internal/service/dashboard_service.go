package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Beenod004/Networkfault/internal/correlate"
	"github.com/Beenod004/Networkfault/internal/interaction"
	"github.com/Beenod004/Networkfault/internal/layout"
	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
	"github.com/Beenod004/Networkfault/internal/pkg/topologycache"
	"github.com/Beenod004/Networkfault/internal/pkg/tracing"
	"github.com/Beenod004/Networkfault/internal/seed"
	"github.com/Beenod004/Networkfault/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Message types pushed to the change feed.
const (
	MessageEntityUpdate = "entity_update"
	MessageLayoutUpdate = "layout_update"
	MessageViewUpdate   = "view_update"
)

// Notifier receives a message after every state change.
type Notifier interface {
	Notify(msg models.WebSocketMessage)
}

// DashboardService owns the entity store, the layout and the interaction
// controller. All mutation goes through it, one call at a time.
type DashboardService interface {
	Seed(ctx context.Context, ds *seed.Dataset)
	Revision(ctx context.Context) uint64
	Overview(ctx context.Context) models.Overview

	ListDevices(ctx context.Context) []models.Device
	GetDevice(ctx context.Context, id string) (*models.Device, error)
	AddDevice(ctx context.Context, in models.DeviceInput) (*models.Device, error)
	UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (*models.Device, error)
	SetDeviceStatus(ctx context.Context, id string, status models.DeviceStatus) (*models.Device, error)
	DeleteDevice(ctx context.Context, id string) ([]string, error)
	DeviceFaults(ctx context.Context, id string) ([]models.Fault, error)
	DeviceLinks(ctx context.Context, id string) ([]models.Link, error)

	ListLinks(ctx context.Context) []models.Link
	GetLink(ctx context.Context, id string) (*models.Link, error)
	AddLink(ctx context.Context, in models.LinkInput) (*models.Link, error)
	DeleteLink(ctx context.Context, id string) error
	LinkFaults(ctx context.Context, id string) ([]models.Fault, error)

	ListFaults(ctx context.Context, filter correlate.FaultFilter) []models.Fault
	GetFault(ctx context.Context, id string) (*models.Fault, error)
	AddFault(ctx context.Context, in models.FaultInput) (*models.Fault, error)
	UpdateFault(ctx context.Context, id string, patch models.FaultPatch) (*models.Fault, error)
	SetFaultStatus(ctx context.Context, id string, status models.FaultStatus) (*models.Fault, error)

	Positions(ctx context.Context) []models.DevicePosition
	Position(ctx context.Context, id string) (*models.DevicePosition, error)
	MoveDevice(ctx context.Context, id string, x, y float64) (*models.PlacementResult, error)
	ResolvePosition(ctx context.Context, x, y float64, excludeID string) models.PlacementResult
	LinkPath(ctx context.Context, source, target models.Position) models.LinkPath

	Diagram(ctx context.Context) *models.DiagramGraph
	View(ctx context.Context) models.ViewState
	SetMode(ctx context.Context, mode models.InteractionMode) (models.ViewState, error)
	Zoom(ctx context.Context, in bool) models.ViewState
	ResetView(ctx context.Context) models.ViewState
	SetFaultOverlay(ctx context.Context, enabled bool) models.ViewState
	SelectDevice(ctx context.Context, id string) (models.ViewState, error)
	Pointer(ctx context.Context, ev models.PointerEvent) models.PointerOutcome

	Export(ctx context.Context, format string) (topologycache.Export, error)
	DrawioURL(ctx context.Context) (string, error)
}

// Options configures NewDashboardService. Zero values are usable.
type Options struct {
	Logger       *slog.Logger
	Notifier     Notifier
	Cache        *topologycache.Cache
	MonotonicIDs bool
	Clock        func() time.Time
}

type dashboardService struct {
	mu sync.Mutex

	store  *store.Store
	layout *layout.Engine
	ctrl   *interaction.Controller

	revision uint64
	cache    *topologycache.Cache
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

// NewDashboardService returns an empty dashboard.
func NewDashboardService(opts Options) DashboardService {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Cache == nil {
		opts.Cache = topologycache.New(0, 0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	storeOpts := []store.Option{store.WithClock(opts.Clock)}
	if opts.MonotonicIDs {
		storeOpts = append(storeOpts, store.WithMonotonicIDs())
	}
	st := store.New(storeOpts...)
	eng := layout.New()
	return &dashboardService{
		store:    st,
		layout:   eng,
		ctrl:     interaction.New(eng, st),
		cache:    opts.Cache,
		notifier: opts.Notifier,
		log:      opts.Logger,
		now:      opts.Clock,
	}
}

func (s *dashboardService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracing.StartSpanWithAttributes(ctx, "DashboardService."+name, attrs...)
}

// changed must be called with s.mu held.
func (s *dashboardService) changed(msgType, entity, event string, resource map[string]interface{}) {
	s.revision++
	s.cache.Invalidate()
	metrics.MutationsTotal.WithLabelValues(entity, event).Inc()
	if s.notifier == nil {
		return
	}
	if resource == nil {
		resource = map[string]interface{}{}
	}
	resource["entity"] = entity
	s.notifier.Notify(models.WebSocketMessage{
		Type:      msgType,
		Event:     event,
		Resource:  resource,
		Revision:  s.revision,
		Timestamp: s.now().UTC(),
	})
}

func (s *dashboardService) Seed(ctx context.Context, ds *seed.Dataset) {
	_, span := s.span(ctx, "Seed")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Load(ds.Devices, ds.Links, ds.Faults)
	s.layout.Seed(ds.Positions)
	s.changed(MessageEntityUpdate, "dataset", "seeded", map[string]interface{}{
		"devices": len(ds.Devices),
		"links":   len(ds.Links),
		"faults":  len(ds.Faults),
	})
	s.log.Info("dataset seeded", "devices", len(ds.Devices), "links", len(ds.Links), "faults", len(ds.Faults), "positions", len(ds.Positions))
}

func (s *dashboardService) Revision(ctx context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *dashboardService) Overview(ctx context.Context) models.Overview {
	_, span := s.span(ctx, "Overview")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	faults := s.store.Faults()
	return models.Overview{
		Stats:    correlate.Stats(s.store.Devices(), s.store.Links(), faults),
		Summary:  correlate.Summary(faults),
		Revision: s.revision,
	}
}

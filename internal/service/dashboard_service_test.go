package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Beenod004/Networkfault/internal/correlate"
	"github.com/Beenod004/Networkfault/internal/models"
	"github.com/Beenod004/Networkfault/internal/pkg/metrics"
	"github.com/Beenod004/Networkfault/internal/pkg/topologycache"
	"github.com/Beenod004/Networkfault/internal/seed"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []models.WebSocketMessage
}

func (r *recordingNotifier) Notify(msg models.WebSocketMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingNotifier) last() models.WebSocketMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.msgs[len(r.msgs)-1]
}

var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (DashboardService, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	svc := NewDashboardService(Options{
		Notifier: n,
		Cache:    topologycache.New(16, time.Minute),
		Clock:    func() time.Time { return fixedNow },
	})
	return svc, n
}

func seeded(t *testing.T) (DashboardService, *recordingNotifier) {
	t.Helper()
	svc, n := newTestService(t)
	ds, err := seed.Default()
	require.NoError(t, err)
	svc.Seed(context.Background(), ds)
	return svc, n
}

func switchInput(name string) models.DeviceInput {
	return models.DeviceInput{Name: name, Type: models.DeviceTypeSwitch, Status: models.DeviceOnline}
}

func TestAddDevicePlacesAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	d, err := svc.AddDevice(ctx, switchInput("Core"))
	require.NoError(t, err)
	assert.Equal(t, "SW001", d.ID)
	assert.Equal(t, fixedNow, d.LastSeen)

	p, err := svc.Position(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 300.0, p.Y)

	msg := n.last()
	assert.Equal(t, MessageEntityUpdate, msg.Type)
	assert.Equal(t, "created", msg.Event)
	assert.Equal(t, "device", msg.Resource["entity"])
	assert.Equal(t, uint64(1), msg.Revision)
	assert.Equal(t, uint64(1), svc.Revision(ctx))

	// second device lands off the first one's box
	d2, err := svc.AddDevice(ctx, switchInput("Edge"))
	require.NoError(t, err)
	p2, err := svc.Position(ctx, d2.ID)
	require.NoError(t, err)
	assert.False(t, p2.X == 400 && p2.Y == 300)
}

func TestDeleteDeviceCascades(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	a, _ := svc.AddDevice(ctx, switchInput("A"))
	b, _ := svc.AddDevice(ctx, models.DeviceInput{Name: "B", Type: models.DeviceTypeOLT, Status: models.DeviceOnline})
	l, err := svc.AddLink(ctx, models.LinkInput{
		SourceDeviceID: a.ID, TargetDeviceID: b.ID,
		LinkType: models.LinkFiber, Bandwidth: "1Gbps", Status: models.LinkActive,
	})
	require.NoError(t, err)
	_, err = svc.SelectDevice(ctx, a.ID)
	require.NoError(t, err)

	removed, err := svc.DeleteDevice(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{l.ID}, removed)
	assert.Empty(t, svc.ListLinks(ctx))
	assert.Empty(t, svc.View(ctx).SelectedDevice)

	_, err = svc.Position(ctx, a.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "deleted", n.last().Event)
}

func TestDuplicateDeviceIDKeepsLivePosition(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Seed(ctx, &seed.Dataset{
		Devices: []models.Device{
			{ID: "SW002", Name: "Edge", Type: models.DeviceTypeSwitch, Status: models.DeviceOnline},
			{ID: "SW001", Name: "Core", Type: models.DeviceTypeSwitch, Status: models.DeviceOnline},
		},
		Positions: []models.DevicePosition{
			{ID: "SW002", X: 1500, Y: 800},
			{ID: "SW001", X: 1000, Y: 700},
		},
	})

	_, err := svc.DeleteDevice(ctx, "SW001")
	require.NoError(t, err)

	// one switch left, so the length-based id repeats
	d, err := svc.AddDevice(ctx, switchInput("Spare"))
	require.NoError(t, err)
	require.Equal(t, "SW002", d.ID)

	p, err := svc.Position(ctx, "SW002")
	require.NoError(t, err)
	assert.Equal(t, models.Position{X: 1500, Y: 800}, p)

	_, err = svc.DeleteDevice(ctx, "SW002")
	require.NoError(t, err)

	devices := svc.ListDevices(ctx)
	require.Len(t, devices, 1)
	assert.Equal(t, "Edge", devices[0].Name)
	assert.Equal(t, []models.DevicePosition{{ID: "SW002", X: 1500, Y: 800}}, svc.Positions(ctx))

	_, err = svc.DeleteDevice(ctx, "SW002")
	require.NoError(t, err)
	assert.Empty(t, svc.Positions(ctx))
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	_, err := svc.GetDevice(ctx, "SW999")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.UpdateDevice(ctx, "SW999", models.DevicePatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.DeleteDevice(ctx, "SW999")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteLink(ctx, "LINK999"), ErrNotFound)
	_, err = svc.SetFaultStatus(ctx, "F999", models.FaultResolved)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.MoveDevice(ctx, "SW999", 10, 10)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, n.msgs)
	assert.Equal(t, uint64(0), svc.Revision(ctx))
}

func TestSeededCorrelation(t *testing.T) {
	ctx := context.Background()
	svc, _ := seeded(t)

	assert.Len(t, svc.ListDevices(ctx), 34)
	assert.Len(t, svc.ListLinks(ctx), 31)

	active := svc.ListFaults(ctx, correlate.FaultFilter{Status: string(models.FaultActive)})
	for _, f := range active {
		assert.Equal(t, models.FaultActive, f.Status)
	}

	ov := svc.Overview(ctx)
	assert.Equal(t, 34, ov.Stats.Devices)
	assert.Equal(t, 12, ov.Stats.Switches)
	assert.Equal(t, 22, ov.Stats.OLTs)
	assert.Equal(t, 10, ov.Stats.TotalFaults)
	require.Len(t, ov.Summary, 4)
	assert.Equal(t, models.SeverityCritical, ov.Summary[0].Severity)
}

func TestSetModeLinkNeedsTwoDevices(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SetMode(ctx, models.ModeLink)
	assert.ErrorIs(t, err, ErrLinkModeUnavailable)

	_, err = svc.SetMode(ctx, "orbit")
	assert.ErrorIs(t, err, ErrUnknownMode)

	svc.AddDevice(ctx, switchInput("A"))
	svc.AddDevice(ctx, switchInput("B"))
	v, err := svc.SetMode(ctx, models.ModeLink)
	require.NoError(t, err)
	assert.Equal(t, models.ModeLink, v.Mode)
}

func TestPointerLinkDraftThenConfirm(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a, _ := svc.AddDevice(ctx, switchInput("A"))
	b, _ := svc.AddDevice(ctx, switchInput("B"))
	_, err := svc.SetMode(ctx, models.ModeLink)
	require.NoError(t, err)

	out := svc.Pointer(ctx, models.PointerEvent{Type: models.PointerDown, DeviceID: a.ID})
	assert.Equal(t, models.ActionLinkSource, out.Action)
	assert.Equal(t, a.ID, out.View.LinkSource)

	out = svc.Pointer(ctx, models.PointerEvent{Type: models.PointerDown, DeviceID: b.ID})
	require.Equal(t, models.ActionLinkDraft, out.Action)
	require.NotNil(t, out.Draft)
	assert.Equal(t, a.ID, out.Draft.Input.SourceDeviceID)
	assert.Equal(t, b.ID, out.Draft.Input.TargetDeviceID)

	l, err := svc.AddLink(ctx, out.Draft.Input)
	require.NoError(t, err)
	assert.Equal(t, "LINK001", l.ID)
}

func TestPointerUnknownDeviceIsCanvasPress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	out := svc.Pointer(ctx, models.PointerEvent{Type: models.PointerDown, X: 10, Y: 10, DeviceID: "SW404"})
	assert.Equal(t, models.ActionPanStart, out.Action)
	assert.True(t, out.View.Panning)
}

func TestPointerPanPublishesOnRelease(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	out := svc.Pointer(ctx, models.PointerEvent{Type: models.PointerDown, X: 10, Y: 10})
	require.Equal(t, models.ActionPanStart, out.Action)
	rev := svc.Revision(ctx)
	sent := len(n.msgs)

	for i := 1; i <= 20; i++ {
		out = svc.Pointer(ctx, models.PointerEvent{Type: models.PointerMove, X: 10 + float64(i), Y: 10})
		require.Equal(t, models.ActionPan, out.Action)
	}
	assert.Equal(t, rev, svc.Revision(ctx))
	assert.Len(t, n.msgs, sent)
	assert.Equal(t, 20.0, svc.View(ctx).Pan.X)

	out = svc.Pointer(ctx, models.PointerEvent{Type: models.PointerUp})
	require.Equal(t, models.ActionRelease, out.Action)
	assert.Equal(t, rev+1, svc.Revision(ctx))
	msg := n.last()
	assert.Equal(t, MessageViewUpdate, msg.Type)
	assert.Equal(t, string(models.ActionRelease), msg.Event)
}

func TestPointerDragMovesDevice(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)
	a, _ := svc.AddDevice(ctx, switchInput("A"))
	_, err := svc.SetMode(ctx, models.ModeEdit)
	require.NoError(t, err)

	out := svc.Pointer(ctx, models.PointerEvent{Type: models.PointerDown, X: 400 * 0.8, Y: 300 * 0.8, DeviceID: a.ID})
	require.Equal(t, models.ActionDragStart, out.Action)

	out = svc.Pointer(ctx, models.PointerEvent{Type: models.PointerMove, X: 480, Y: 400})
	require.Equal(t, models.ActionDrag, out.Action)
	require.NotNil(t, out.Position)
	assert.Equal(t, MessageLayoutUpdate, n.last().Type)

	p, err := svc.Position(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Position.Position.X, p.X)
	assert.Equal(t, out.Position.Position.Y, p.Y)

	out = svc.Pointer(ctx, models.PointerEvent{Type: models.PointerUp})
	assert.Equal(t, models.ActionRelease, out.Action)
	assert.Empty(t, out.View.DraggedDevice)
}

func TestZoomAndReset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	assert.InDelta(t, 0.9, svc.Zoom(ctx, true).Zoom, 1e-9)
	for i := 0; i < 30; i++ {
		svc.Zoom(ctx, true)
	}
	assert.InDelta(t, 2.0, svc.View(ctx).Zoom, 1e-9)
	assert.InDelta(t, 0.8, svc.ResetView(ctx).Zoom, 1e-9)

	assert.False(t, svc.SetFaultOverlay(ctx, false).FaultOverlay)
}

func TestExportCachedPerRevision(t *testing.T) {
	ctx := context.Background()
	svc, _ := seeded(t)

	first, err := svc.Export(ctx, FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", first.ContentType)
	assert.Contains(t, string(first.Body), "<svg")

	again, err := svc.Export(ctx, FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, first.Body, again.Body)

	renamed := "Renamed Core"
	_, err = svc.UpdateDevice(ctx, "SW001", models.DevicePatch{Name: &renamed})
	require.NoError(t, err)
	after, err := svc.Export(ctx, FormatSVG)
	require.NoError(t, err)
	assert.NotEqual(t, first.Body, after.Body)

	for _, f := range Formats {
		e, err := svc.Export(ctx, f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, e.Body, f)
	}

	_, err = svc.Export(ctx, "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDrawioURL(t *testing.T) {
	svc, _ := seeded(t)
	u, err := svc.DrawioURL(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "https://app.diagrams.net/"))
}

func TestDiagramReflectsRevision(t *testing.T) {
	ctx := context.Background()
	svc, _ := seeded(t)

	straight := testutil.ToFloat64(metrics.LinkPathsTotal.WithLabelValues(string(models.PathStraight)))
	curved := testutil.ToFloat64(metrics.LinkPathsTotal.WithLabelValues(string(models.PathQuadratic)))

	g := svc.Diagram(ctx)
	_, err := svc.Export(ctx, FormatSVG)
	require.NoError(t, err)
	// rendering does not count as routing
	assert.Equal(t, straight, testutil.ToFloat64(metrics.LinkPathsTotal.WithLabelValues(string(models.PathStraight))))
	assert.Equal(t, curved, testutil.ToFloat64(metrics.LinkPathsTotal.WithLabelValues(string(models.PathQuadratic))))

	empty, _ := newTestService(t)
	empty.LinkPath(ctx, models.Position{X: 0, Y: 0}, models.Position{X: 300, Y: 0})
	assert.Equal(t, straight+1, testutil.ToFloat64(metrics.LinkPathsTotal.WithLabelValues(string(models.PathStraight))))

	assert.Equal(t, svc.Revision(ctx), g.Revision)
	assert.Len(t, g.Nodes, 34)
	assert.Len(t, g.Edges, 31)
}

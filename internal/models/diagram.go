package models

// InteractionMode is the active pointer mode of the diagram.
type InteractionMode string

const (
	ModePan  InteractionMode = "pan"
	ModeEdit InteractionMode = "edit"
	ModeLink InteractionMode = "link"
)

// ViewState is the diagram's view transform and selection state.
type ViewState struct {
	Mode           InteractionMode `json:"mode"`
	Zoom           float64         `json:"zoom"`
	Pan            Position        `json:"pan"`
	Transform      string          `json:"transform"`
	SelectedDevice string          `json:"selectedDevice,omitempty"`
	LinkSource     string          `json:"linkSource,omitempty"`
	Panning        bool            `json:"panning"`
	DraggedDevice  string          `json:"draggedDevice,omitempty"`
	FaultOverlay   bool            `json:"faultOverlay"`
}

// PointerEventType enumerates pointer events fed to the interaction controller.
type PointerEventType string

const (
	PointerDown  PointerEventType = "down"
	PointerMove  PointerEventType = "move"
	PointerUp    PointerEventType = "up"
	PointerLeave PointerEventType = "leave"
)

// PointerEvent is a pointer event in canvas-local screen coordinates.
// DeviceID is set when a down event lands on a device box.
type PointerEvent struct {
	Type     PointerEventType `json:"type" validate:"required,oneof=down move up leave"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	DeviceID string           `json:"deviceId,omitempty"`
}

// PointerAction describes what a pointer event did.
type PointerAction string

const (
	ActionNone       PointerAction = "none"
	ActionPanStart   PointerAction = "pan_start"
	ActionPan        PointerAction = "pan"
	ActionDragStart  PointerAction = "drag_start"
	ActionDrag       PointerAction = "drag"
	ActionRelease    PointerAction = "release"
	ActionLinkSource PointerAction = "link_source"
	ActionLinkDraft  PointerAction = "link_draft"
)

// LinkDraft is a prefilled link form produced by link mode.
type LinkDraft struct {
	Input LinkInput `json:"input"`
}

// PointerOutcome is the result of feeding one pointer event to the controller.
type PointerOutcome struct {
	Action   PointerAction    `json:"action"`
	Position *PlacementResult `json:"position,omitempty"` // set for drag moves
	Draft    *LinkDraft       `json:"draft,omitempty"`
	View     ViewState        `json:"view"`
}

// FaultOverlay is the derived fault decoration of a device or link.
type FaultOverlay struct {
	Faults   []Fault  `json:"faults"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity,omitempty"` // of the first related fault
	Color    string   `json:"color,omitempty"`
	Critical bool     `json:"critical"` // any related fault is critical
}

// SeverityCount is one row of the fault status panel.
type SeverityCount struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
	Color    string   `json:"color"`
}

// DiagramNode is a device as rendered in the diagram.
type DiagramNode struct {
	Device      Device       `json:"device"`
	Position    Position     `json:"position"`
	Label       string       `json:"label"`
	Fill        string       `json:"fill"`
	Stroke      string       `json:"stroke"`
	StrokeWidth float64      `json:"strokeWidth"`
	StatusColor string       `json:"statusColor"` // status dot, fault colored under the overlay
	Animation   string       `json:"animation,omitempty"`
	Selected    bool         `json:"selected"`
	LinkSource  bool         `json:"linkSource"`
	Dragged     bool         `json:"dragged"`
	Overlay     FaultOverlay `json:"overlay"`
}

// DiagramEdge is a link as rendered in the diagram.
type DiagramEdge struct {
	Link        Link         `json:"link"`
	Path        LinkPath     `json:"path"`
	StrokeWidth float64      `json:"strokeWidth"`
	StrokeColor string       `json:"strokeColor"`
	Dash        string       `json:"dash,omitempty"`
	Animation   string       `json:"animation,omitempty"`
	Label       string       `json:"label"`
	LabelAt     Position     `json:"labelAt"`
	Overlay     FaultOverlay `json:"overlay"`
}

// DiagramGraph is the full render model of the topology diagram.
type DiagramGraph struct {
	SchemaVersion string          `json:"schemaVersion"`
	Revision      uint64          `json:"revision"`
	Nodes         []DiagramNode   `json:"nodes"`
	Edges         []DiagramEdge   `json:"edges"`
	Summary       []SeverityCount `json:"summary"`
	View          ViewState       `json:"view"`
}

// DashboardStats are the header counters of the dashboard.
type DashboardStats struct {
	TotalFaults    int `json:"totalFaults"`
	ActiveFaults   int `json:"activeFaults"`
	CriticalFaults int `json:"criticalFaults"`
	Devices        int `json:"devices"`
	Switches       int `json:"switches"`
	OLTs           int `json:"olts"`
	Links          int `json:"links"`
	OnlineDevices  int `json:"onlineDevices"`
	OfflineDevices int `json:"offlineDevices"`
}

// Overview combines the header counters and the severity panel.
type Overview struct {
	Stats    DashboardStats  `json:"stats"`
	Summary  []SeverityCount `json:"summary"`
	Revision uint64          `json:"revision"`
}

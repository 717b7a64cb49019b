package diagram

import (
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

const (
	fillSwitch   = "#dcfce7"
	fillOLT      = "#fef3c7"
	fillSelected = "#dbeafe"
	fillDefault  = "#ffffff"

	strokeLinkSource = "#f59e0b"
	strokeSelected   = "#2563eb"

	linkActiveFiber = "#8b5cf6"
	linkActive      = "#10b981"
	linkInactive    = "#ef4444"

	faultDash = "10,5"

	AnimationCritical = "critical-blink"
	AnimationFault    = "fault-pulse"

	labelMaxRunes = 15
)

// StatusColor maps a device status to its indicator color.
func StatusColor(s models.DeviceStatus) string {
	switch s {
	case models.DeviceOnline:
		return "#10b981"
	case models.DeviceOffline:
		return "#ef4444"
	case models.DeviceMaintenance:
		return "#f59e0b"
	}
	return "#6b7280"
}

// DeviceFill is the box background. Selection wins over link source.
func DeviceFill(t models.DeviceType, selected, linkSource bool) string {
	switch {
	case selected:
		return fillSelected
	case linkSource:
		return fillOLT
	}
	switch t {
	case models.DeviceTypeSwitch:
		return fillSwitch
	case models.DeviceTypeOLT:
		return fillOLT
	}
	return fillDefault
}

// LinkStrokeWidth derives a stroke width from the free-text bandwidth.
func LinkStrokeWidth(bandwidth string) float64 {
	bw := strings.ToLower(bandwidth)
	switch {
	case strings.Contains(bw, "100gbps"):
		return 4
	case strings.Contains(bw, "40gbps"):
		return 3.5
	case strings.Contains(bw, "10gbps"):
		return 3
	case strings.Contains(bw, "1gbps"):
		return 2.5
	}
	return 2
}

// LinkColor is the stroke color of a link without fault decoration.
func LinkColor(l models.Link) string {
	if l.Status != models.LinkActive {
		return linkInactive
	}
	if l.LinkType == models.LinkFiber {
		return linkActiveFiber
	}
	return linkActive
}

// BandwidthLabel shortens "10Gbps" to "10G".
func BandwidthLabel(bandwidth string) string {
	return strings.Replace(bandwidth, "bps", "", 1)
}

// NodeLabel truncates long device names.
func NodeLabel(name string) string {
	r := []rune(name)
	if len(r) > labelMaxRunes {
		return string(r[:labelMaxRunes]) + "..."
	}
	return name
}

func animation(o models.FaultOverlay) string {
	if o.Count == 0 {
		return ""
	}
	if o.Critical {
		return AnimationCritical
	}
	return AnimationFault
}

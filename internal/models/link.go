package models

// LinkType is the physical medium of a link.
type LinkType string

const (
	// LinkEthernet is a copper link.
	LinkEthernet LinkType = "ethernet"
	LinkFiber    LinkType = "fiber"
	LinkWireless LinkType = "wireless"
)

// LinkStatus is the operational state of a link.
type LinkStatus string

const (
	LinkActive   LinkStatus = "active"
	LinkInactive LinkStatus = "inactive"
)

// Link connects two devices. Links are created and deleted, never edited in place.
type Link struct {
	ID             string     `json:"id" yaml:"id"`
	SourceDeviceID string     `json:"sourceDeviceId" yaml:"sourceDeviceId"`
	TargetDeviceID string     `json:"targetDeviceId" yaml:"targetDeviceId"`
	SourcePort     string     `json:"sourcePort" yaml:"sourcePort"`
	TargetPort     string     `json:"targetPort" yaml:"targetPort"`
	LinkType       LinkType   `json:"linkType" yaml:"linkType"`
	Bandwidth      string     `json:"bandwidth" yaml:"bandwidth"` // free text, e.g. "10Gbps"
	Status         LinkStatus `json:"status" yaml:"status"`
}

// Touches reports whether the link has deviceID as either endpoint.
func (l Link) Touches(deviceID string) bool {
	return l.SourceDeviceID == deviceID || l.TargetDeviceID == deviceID
}

// LinkInput is the body of an add-link request. Endpoints are not checked against the device list.
type LinkInput struct {
	SourceDeviceID string     `json:"sourceDeviceId" validate:"required"`
	TargetDeviceID string     `json:"targetDeviceId" validate:"required"`
	SourcePort     string     `json:"sourcePort" validate:"max=64"`
	TargetPort     string     `json:"targetPort" validate:"max=64"`
	LinkType       LinkType   `json:"linkType" validate:"required,oneof=ethernet fiber wireless"`
	Bandwidth      string     `json:"bandwidth" validate:"max=32"`
	Status         LinkStatus `json:"status" validate:"required,oneof=active inactive"`
}

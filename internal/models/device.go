package models

import "time"

// DeviceType is the kind of network element.
type DeviceType string

const (
	DeviceTypeSwitch DeviceType = "switch"
	// DeviceTypeOLT is an optical line terminal.
	DeviceTypeOLT DeviceType = "olt"
)

// DeviceStatus is the operational state of a device.
type DeviceStatus string

const (
	DeviceOnline      DeviceStatus = "online"
	DeviceOffline     DeviceStatus = "offline"
	DeviceMaintenance DeviceStatus = "maintenance"
)

// Device represents a switch or OLT tracked by the dashboard.
type Device struct {
	ID               string       `json:"id" yaml:"id"`
	Name             string       `json:"name" yaml:"name"`
	Type             DeviceType   `json:"type" yaml:"type"`
	IPAddress        string       `json:"ipAddress" yaml:"ipAddress"`
	Location         string       `json:"location" yaml:"location"`
	Status           DeviceStatus `json:"status" yaml:"status"`
	Model            string       `json:"model" yaml:"model"`
	Ports            int          `json:"ports" yaml:"ports"`
	ConnectedDevices int          `json:"connectedDevices" yaml:"connectedDevices"` // hinted <= Ports, not enforced
	LastSeen         time.Time    `json:"lastSeen" yaml:"lastSeen"`
	TrunkLine        string       `json:"trunkLine" yaml:"trunkLine"`
}

// DeviceInput is the body of an add-device request. ID and LastSeen are assigned by the store.
type DeviceInput struct {
	Name             string       `json:"name" validate:"required,max=128"`
	Type             DeviceType   `json:"type" validate:"required,oneof=switch olt"`
	IPAddress        string       `json:"ipAddress" validate:"omitempty,ip"`
	Location         string       `json:"location" validate:"max=256"`
	Status           DeviceStatus `json:"status" validate:"required,oneof=online offline maintenance"`
	Model            string       `json:"model" validate:"max=128"`
	Ports            int          `json:"ports" validate:"gte=0"`
	ConnectedDevices int          `json:"connectedDevices" validate:"gte=0"`
	TrunkLine        string       `json:"trunkLine" validate:"max=64"`
}

// DevicePatch is a partial device update; nil fields are left unchanged.
type DevicePatch struct {
	Name             *string       `json:"name,omitempty" validate:"omitnil,min=1,max=128"`
	IPAddress        *string       `json:"ipAddress,omitempty" validate:"omitempty,ip"`
	Location         *string       `json:"location,omitempty" validate:"omitnil,max=256"`
	Status           *DeviceStatus `json:"status,omitempty" validate:"omitnil,oneof=online offline maintenance"`
	Model            *string       `json:"model,omitempty" validate:"omitnil,max=128"`
	Ports            *int          `json:"ports,omitempty" validate:"omitnil,gte=0"`
	ConnectedDevices *int          `json:"connectedDevices,omitempty" validate:"omitnil,gte=0"`
	TrunkLine        *string       `json:"trunkLine,omitempty" validate:"omitnil,max=64"`
}

// Apply copies the non-nil patch fields onto d.
func (p DevicePatch) Apply(d *Device) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.IPAddress != nil {
		d.IPAddress = *p.IPAddress
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Model != nil {
		d.Model = *p.Model
	}
	if p.Ports != nil {
		d.Ports = *p.Ports
	}
	if p.ConnectedDevices != nil {
		d.ConnectedDevices = *p.ConnectedDevices
	}
	if p.TrunkLine != nil {
		d.TrunkLine = *p.TrunkLine
	}
}

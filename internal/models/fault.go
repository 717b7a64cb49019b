package models

import "time"

// Severity of a fault. Ordered critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists the severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// FaultStatus is the lifecycle state of a fault. Resolved faults are ignored by correlation.
type FaultStatus string

const (
	FaultActive        FaultStatus = "active"
	FaultInvestigating FaultStatus = "investigating"
	FaultResolved      FaultStatus = "resolved"
)

// Fault is a reported incident. Its relation to devices and links is computed on read.
type Fault struct {
	ID              string      `json:"id" yaml:"id"`
	Location        string      `json:"location" yaml:"location"`
	Description     string      `json:"description" yaml:"description"`
	Severity        Severity    `json:"severity" yaml:"severity"`
	Status          FaultStatus `json:"status" yaml:"status"`
	ReportedAt      time.Time   `json:"reportedAt" yaml:"reportedAt"`
	EstimatedRepair *time.Time  `json:"estimatedRepair,omitempty" yaml:"estimatedRepair,omitempty"`
	TrunkLine       string      `json:"trunkLine" yaml:"trunkLine"`
}

// FaultInput is the body of a report-fault request.
type FaultInput struct {
	Location        string      `json:"location" validate:"required,max=256"`
	Description     string      `json:"description" validate:"required,max=4096"`
	Severity        Severity    `json:"severity" validate:"required,oneof=critical high medium low"`
	Status          FaultStatus `json:"status" validate:"required,oneof=active investigating resolved"`
	EstimatedRepair *time.Time  `json:"estimatedRepair,omitempty"`
	TrunkLine       string      `json:"trunkLine" validate:"max=64"`
}

// FaultPatch is a partial fault update; nil fields are left unchanged.
type FaultPatch struct {
	Location        *string      `json:"location,omitempty" validate:"omitnil,min=1,max=256"`
	Description     *string      `json:"description,omitempty" validate:"omitnil,min=1,max=4096"`
	Severity        *Severity    `json:"severity,omitempty" validate:"omitnil,oneof=critical high medium low"`
	Status          *FaultStatus `json:"status,omitempty" validate:"omitnil,oneof=active investigating resolved"`
	EstimatedRepair *time.Time   `json:"estimatedRepair,omitempty"`
	TrunkLine       *string      `json:"trunkLine,omitempty" validate:"omitnil,max=64"`
}

// Apply copies the non-nil patch fields onto f.
func (p FaultPatch) Apply(f *Fault) {
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Severity != nil {
		f.Severity = *p.Severity
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.EstimatedRepair != nil {
		t := *p.EstimatedRepair
		f.EstimatedRepair = &t
	}
	if p.TrunkLine != nil {
		f.TrunkLine = *p.TrunkLine
	}
}

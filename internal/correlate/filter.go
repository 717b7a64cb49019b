package correlate

import (
	"strings"

	"github.com/Beenod004/Networkfault/internal/models"
)

// FilterAll disables a status or severity filter.
const FilterAll = "all"

// FaultFilter narrows the fault list.
type FaultFilter struct {
	Search   string `json:"search"`
	Status   string `json:"status" validate:"omitempty,oneof=all active investigating resolved"`
	Severity string `json:"severity" validate:"omitempty,oneof=all critical high medium low"`
}

func (ff FaultFilter) matches(f models.Fault) bool {
	if ff.Status != "" && ff.Status != FilterAll && string(f.Status) != ff.Status {
		return false
	}
	if ff.Severity != "" && ff.Severity != FilterAll && string(f.Severity) != ff.Severity {
		return false
	}
	if ff.Search == "" {
		return true
	}
	q := strings.ToLower(ff.Search)
	for _, field := range []string{f.ID, f.Location, f.Description, f.TrunkLine} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterFaults returns the faults matching ff, in input order.
func FilterFaults(faults []models.Fault, ff FaultFilter) []models.Fault {
	out := []models.Fault{}
	for _, f := range faults {
		if ff.matches(f) {
			out = append(out, f)
		}
	}
	return out
}

package models

// Priority constants
const (
	PriorityNone     = 0
	PriorityLow      = 1
	PriorityMedium   = 2
	PriorityHigh     = 3
	PriorityCritical = 4
)

// PriorityLabel returns the display name for a priority value.
func PriorityLabel(priorityID int) string {
	switch priorityID {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return ""
	}
}

package routing

// Priority is the urgency level of a work order. Lower is more urgent:
// 1=Critical, 2=High, 3=Medium, 4=Low.
type Priority int

const (
	PriorityCritical Priority = 1
	PriorityHigh     Priority = 2
	PriorityMedium   Priority = 3
	PriorityLow      Priority = 4
)

var priorityLabels = map[Priority]string{
	PriorityCritical: "Critical",
	PriorityHigh:     "High",
	PriorityMedium:   "Medium",
	PriorityLow:      "Low",
}

// ClampPriority forces a raw integer into the valid [1,4] range.
// Out-of-range input is never an error.
func ClampPriority(p int) Priority {
	if p < int(PriorityCritical) {
		return PriorityCritical
	}
	if p > int(PriorityLow) {
		return PriorityLow
	}
	return Priority(p)
}

// Label returns the display word for a priority, "Unknown" when out of
// range.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return "Unknown"
}

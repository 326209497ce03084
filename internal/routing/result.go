package routing

// Input carries everything Compute needs to route one work order.
type Input struct {
	// Department is the requester's department name, matched
	// case-sensitively against the known set.
	Department string
	// Category is one of the fixed category slugs.
	Category string
	// SubType refines the category; empty means no sub-type modifier.
	SubType string
	// UserPriority is the raw user selection; it is clamped to [1,4]
	// before any tier runs.
	UserPriority int
	// Text is the combined title + description, scanned
	// case-insensitively for keywords.
	Text string
}

// Result is the fully resolved routing decision. It is constructed once
// per Compute call and never mutated afterwards.
type Result struct {
	Tier      Tier     `json:"tier"`
	TierLabel string   `json:"tier_label"`
	TierIcon  string   `json:"tier_icon"`
	TierColor string   `json:"tier_color"`
	Team      string   `json:"team"`
	SLA       string   `json:"sla"`
	// EffectivePriority is the final urgency after all four tiers.
	EffectivePriority Priority `json:"effective_priority"`
	// UserPriority is the clamped value the user originally selected.
	UserPriority Priority `json:"user_priority"`
	// SuggestedPriority equals EffectivePriority; kept as its own field
	// for callers that highlight the engine's recommendation.
	SuggestedPriority Priority `json:"suggested_priority"`
	EscalationPath    []string `json:"escalation_path"`
	// Reasons holds one human-readable line per rule that altered the
	// outcome, in evaluation order.
	Reasons []string `json:"reasons"`
	// WasModified is true when the engine changed the user's selection.
	WasModified bool `json:"was_modified"`
}

// PriorityLabel returns the display word for the effective priority.
func (r Result) PriorityLabel() string {
	return r.EffectivePriority.Label()
}

// UserPriorityLabel returns the display word for the user's selection.
func (r Result) UserPriorityLabel() string {
	return r.UserPriority.Label()
}

package routing

// TeamAssignment holds the standard queue for a category and the
// override used when the requester belongs to a Critical Infrastructure
// department.
type TeamAssignment struct {
	Standard      string
	CriticalInfra string
}

// FallbackTeam catches tickets whose category has no assignment entry.
const FallbackTeam = "General IST Queue"

// criticalInfraP1Categories lists the categories that auto-escalate to
// P1 for Critical Infrastructure departments.
var criticalInfraP1Categories = map[string]struct{}{
	"network":  {},
	"server":   {},
	"security": {},
}

var categoryTeams = map[string]TeamAssignment{
	"hardware": {
		Standard:      "Desktop Support Team",
		CriticalInfra: "Field Tech Unit (Priority Response)",
	},
	"software": {
		Standard:      "Application Support Team",
		CriticalInfra: "Application Support Team",
	},
	"network": {
		Standard:      "Network Operations Team",
		CriticalInfra: "NOC On-Call",
	},
	"email": {
		Standard:      "Messaging & Collaboration Team",
		CriticalInfra: "Messaging & Collaboration Team",
	},
	"security": {
		Standard:      "Security & Identity Team",
		CriticalInfra: "Security & Identity Team",
	},
	"phone": {
		Standard:      "Telecom & VOIP Team",
		CriticalInfra: "Telecom & VOIP Team",
	},
	"server": {
		Standard:      "Infrastructure & DBA Team",
		CriticalInfra: "Infrastructure & DBA Team",
	},
	"data": {
		Standard:      "Infrastructure & DBA Team",
		CriticalInfra: "Infrastructure & DBA Team",
	},
}

// SubTypeRule modifies priority based on the selected sub-type.
// Bump raises urgency by N levels. CIForceP1 hard-sets Critical for
// Critical Infrastructure departments. Cap clamps priority no more
// urgent than the given value, for non-Critical-Infra departments only;
// zero means no cap.
type SubTypeRule struct {
	Bump      int
	CIForceP1 bool
	Cap       Priority
}

var subTypeRules = map[string]SubTypeRule{
	"complete_outage": {Bump: 1, CIForceP1: true},
	"no_internet":     {Bump: 1, CIForceP1: true},
	"no_login":        {Bump: 1, CIForceP1: true},
	"data_loss":       {Bump: 1},
	"no_boot":         {},
	"app_crash":       {},
	"pw_reset":        {Cap: PriorityMedium},
	"new_user":        {Cap: PriorityMedium},
	"slow":            {},
	"display":         {},
	"peripheral":      {},
	"slow_conn":       {},
}

// KeywordRule triggers on free-text phrases. Force hard-sets priority
// when more urgent than the current value (zero = no force); Bump
// raises urgency by N levels, never past Critical. Rules are evaluated
// in order and the first rule with any matching phrase ends the scan.
type KeywordRule struct {
	Keywords []string
	Force    Priority
	Bump     int
	Note     string
}

var keywordRules = []KeywordRule{
	{
		Keywords: []string{"scada", "dispatch", "911", " cad ", "computer aided dispatch"},
		Force:    PriorityCritical,
		Note:     "Mission-critical system keyword detected (SCADA / 911 / CAD)",
	},
	{
		Keywords: []string{
			"everyone", "entire department", "entire dept",
			"all users", "city-wide", "citywide", "entire building",
			"entire division",
		},
		Force: PriorityCritical,
		Note:  "City/department-wide impact keywords detected",
	},
	{
		Keywords: []string{
			"outage", "completely down", "totally down",
			"not working at all", "offline", "no access", "cannot access",
		},
		Bump: 1,
		Note: "Outage-level keyword detected",
	},
	{
		Keywords: []string{"urgent", "asap", "emergency", "immediately"},
		Bump:     1,
		Note:     "Urgency keyword detected in description",
	},
}

// slaMatrix maps [tier][priority] to the promised response window.
var slaMatrix = map[Tier]map[Priority]string{
	TierCriticalInfra: {PriorityCritical: "1 hr", PriorityHigh: "2 hrs", PriorityMedium: "4 hrs", PriorityLow: "1 day"},
	TierExecutive:     {PriorityCritical: "1 hr", PriorityHigh: "2 hrs", PriorityMedium: "4 hrs", PriorityLow: "1 day"},
	TierPublicSafety:  {PriorityCritical: "2 hrs", PriorityHigh: "4 hrs", PriorityMedium: "8 hrs", PriorityLow: "2 days"},
	TierStandard:      {PriorityCritical: "4 hrs", PriorityHigh: "8 hrs", PriorityMedium: "1 day", PriorityLow: "3 days"},
}

// escalationPaths lists the chain of roles a ticket traverses if
// unresolved, keyed by final priority.
var escalationPaths = map[Priority][]string{
	PriorityCritical: {"L1 Intake", "Team Lead", "IT Director", "City Manager"},
	PriorityHigh:     {"L1 Intake", "L2 Specialist", "Team Lead"},
	PriorityMedium:   {"L1 Intake", "L2 Specialist"},
	PriorityLow:      {"L1 Intake"},
}

// SLAFor resolves the SLA string for a tier/priority pair, falling back
// to the Standard tier row and then "TBD".
func SLAFor(tier Tier, p Priority) string {
	row, ok := slaMatrix[tier]
	if !ok {
		row = slaMatrix[TierStandard]
	}
	if sla, ok := row[p]; ok {
		return sla
	}
	return "TBD"
}

// EscalationPathFor returns the escalation chain for a priority,
// defaulting to the shortest (P4) path.
func EscalationPathFor(p Priority) []string {
	if path, ok := escalationPaths[p]; ok {
		return append([]string(nil), path...)
	}
	return append([]string(nil), escalationPaths[PriorityLow]...)
}

// TeamFor resolves the assigned support team for a category under the
// given tier.
func TeamFor(category string, tier Tier) string {
	assignment, ok := categoryTeams[category]
	if !ok {
		return FallbackTeam
	}
	if tier == TierCriticalInfra {
		return assignment.CriticalInfra
	}
	return assignment.Standard
}

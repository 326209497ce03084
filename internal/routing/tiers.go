package routing

// Tier classifies a requesting department. The tier sets a priority
// floor and how aggressive the SLA matrix row is.
type Tier string

const (
	TierCriticalInfra Tier = "CRITICAL_INFRA"
	TierExecutive     Tier = "EXECUTIVE"
	TierPublicSafety  Tier = "PUBLIC_SAFETY"
	TierStandard      Tier = "STANDARD"
)

// TierMeta carries display and policy metadata for a department tier.
type TierMeta struct {
	Label string
	// PriorityFloor is the most urgent value the tier guarantees
	// (1=Critical .. 4=Low). A floor of 4 means the user selection is
	// authoritative.
	PriorityFloor Priority
	// SLAFactor is informational: the fraction of the baseline SLA
	// this tier is held to.
	SLAFactor float64
	Color     string
	Icon      string
}

// departmentTiers maps every known department name to its tier.
// Matching is case-sensitive; unknown departments resolve to Standard.
var departmentTiers = map[string]Tier{
	"Police Department":     TierCriticalInfra,
	"Fire Department":       TierCriticalInfra,
	"Utilities":             TierCriticalInfra,
	"City Manager's Office": TierExecutive,
	"Health Department":     TierPublicSafety,
	"Finance":               TierStandard,
	"Public Works":          TierStandard,
	"Parks & Recreation":    TierStandard,
	"City Clerk":            TierStandard,
	"Planning & Zoning":     TierStandard,
}

var tierMeta = map[Tier]TierMeta{
	TierCriticalInfra: {
		Label:         "Critical Infrastructure",
		PriorityFloor: 2,
		SLAFactor:     0.5,
		Color:         "red",
		Icon:          "🔴",
	},
	TierExecutive: {
		Label:         "Executive",
		PriorityFloor: 2,
		SLAFactor:     0.5,
		Color:         "gold",
		Icon:          "🟡",
	},
	TierPublicSafety: {
		Label:         "Public Safety Support",
		PriorityFloor: 3,
		SLAFactor:     0.75,
		Color:         "purple",
		Icon:          "🟣",
	},
	TierStandard: {
		Label:         "Standard",
		PriorityFloor: 4,
		SLAFactor:     1.0,
		Color:         "steel",
		Icon:          "⚪",
	},
}

// DepartmentTier resolves a department name to its tier, defaulting to
// Standard for unrecognized departments.
func DepartmentTier(department string) Tier {
	if tier, ok := departmentTiers[department]; ok {
		return tier
	}
	return TierStandard
}

// MetaForTier returns the metadata for a tier, defaulting to the
// Standard tier's metadata for unknown slugs.
func MetaForTier(tier Tier) TierMeta {
	if meta, ok := tierMeta[tier]; ok {
		return meta
	}
	return tierMeta[TierStandard]
}

package routing

// Reference bundles read-only copies of every routing table for
// documentation surfaces. Callers receive fresh copies; the underlying
// tables are never exposed for mutation.
type Reference struct {
	DepartmentTiers map[string]Tier              `json:"department_tiers"`
	TierMeta        map[Tier]TierMeta            `json:"tier_meta"`
	CategoryTeams   map[string]TeamAssignment    `json:"category_teams"`
	SubTypeRules    map[string]SubTypeRule       `json:"subtype_rules"`
	KeywordRules    []KeywordRule                `json:"keyword_rules"`
	SLAMatrix       map[Tier]map[Priority]string `json:"sla_matrix"`
	EscalationPaths map[Priority][]string        `json:"escalation_paths"`
}

// Tables returns a snapshot of all routing tables.
func Tables() Reference {
	ref := Reference{
		DepartmentTiers: make(map[string]Tier, len(departmentTiers)),
		TierMeta:        make(map[Tier]TierMeta, len(tierMeta)),
		CategoryTeams:   make(map[string]TeamAssignment, len(categoryTeams)),
		SubTypeRules:    make(map[string]SubTypeRule, len(subTypeRules)),
		KeywordRules:    make([]KeywordRule, 0, len(keywordRules)),
		SLAMatrix:       make(map[Tier]map[Priority]string, len(slaMatrix)),
		EscalationPaths: make(map[Priority][]string, len(escalationPaths)),
	}
	for dept, tier := range departmentTiers {
		ref.DepartmentTiers[dept] = tier
	}
	for tier, meta := range tierMeta {
		ref.TierMeta[tier] = meta
	}
	for category, teams := range categoryTeams {
		ref.CategoryTeams[category] = teams
	}
	for sub, rule := range subTypeRules {
		ref.SubTypeRules[sub] = rule
	}
	for _, rule := range keywordRules {
		copied := rule
		copied.Keywords = append([]string(nil), rule.Keywords...)
		ref.KeywordRules = append(ref.KeywordRules, copied)
	}
	for tier, row := range slaMatrix {
		copied := make(map[Priority]string, len(row))
		for p, sla := range row {
			copied[p] = sla
		}
		ref.SLAMatrix[tier] = copied
	}
	for p, path := range escalationPaths {
		ref.EscalationPaths[p] = append([]string(nil), path...)
	}
	return ref
}

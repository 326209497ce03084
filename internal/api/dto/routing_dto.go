package dto

import "github.com/laredo-ist/workorder-service/internal/routing"

// PreviewResponse mirrors the live form preview. Until department and
// category are chosen there is no decision to show.
type PreviewResponse struct {
	Ready             bool             `json:"ready"`
	Team              string           `json:"team"`
	SLA               string           `json:"sla"`
	EffectivePriority routing.Priority `json:"effective_priority"`
	PriorityLabel     string           `json:"priority_label"`
	Tier              routing.Tier     `json:"tier"`
	TierLabel         string           `json:"tier_label"`
	TierIcon          string           `json:"tier_icon"`
	SuggestedPriority routing.Priority `json:"suggested_priority"`
	WasModified       bool             `json:"was_modified"`
	EscalationPath    []string         `json:"escalation_path"`
	Reasons           []string         `json:"reasons"`
}

// PreviewFromResult maps an engine result to the preview shape.
func PreviewFromResult(result routing.Result) PreviewResponse {
	return PreviewResponse{
		Ready:             true,
		Team:              result.Team,
		SLA:               result.SLA,
		EffectivePriority: result.EffectivePriority,
		PriorityLabel:     result.PriorityLabel(),
		Tier:              result.Tier,
		TierLabel:         result.TierLabel,
		TierIcon:          result.TierIcon,
		SuggestedPriority: result.SuggestedPriority,
		WasModified:       result.WasModified,
		EscalationPath:    result.EscalationPath,
		Reasons:           result.Reasons,
	}
}

// PriorityChoice is a user-facing priority option.
type PriorityChoice struct {
	Value routing.Priority `json:"value"`
	Label string           `json:"label"`
}

// CascadeResponse exposes the form taxonomy: departments, categories,
// priorities, and the nested Category → Sub-Type → Issue Type cascade.
type CascadeResponse struct {
	Departments []string                               `json:"departments"`
	Categories  []routing.Choice                       `json:"categories"`
	Priorities  []PriorityChoice                       `json:"priorities"`
	SubTypes    map[string][]routing.Choice            `json:"subtypes"`
	IssueTypes  map[string]map[string][]routing.Choice `json:"issue_types"`
}

// BuildCascadeResponse assembles the taxonomy from the routing tables.
func BuildCascadeResponse() CascadeResponse {
	resp := CascadeResponse{
		Departments: append([]string{}, routing.DepartmentChoices...),
		Categories:  append([]routing.Choice{}, routing.CategoryChoices...),
		Priorities:  make([]PriorityChoice, 0, len(routing.PriorityChoices)),
		SubTypes:    make(map[string][]routing.Choice, len(routing.CategoryChoices)),
		IssueTypes:  make(map[string]map[string][]routing.Choice, len(routing.CategoryChoices)),
	}
	for _, p := range routing.PriorityChoices {
		resp.Priorities = append(resp.Priorities, PriorityChoice{Value: p.Value, Label: p.Label})
	}
	for _, category := range routing.CategoryChoices {
		subTypes := routing.SubTypesFor(category.Slug)
		resp.SubTypes[category.Slug] = subTypes
		byType := make(map[string][]routing.Choice, len(subTypes))
		for _, st := range subTypes {
			byType[st.Slug] = routing.IssueTypesFor(category.Slug, st.Slug)
		}
		resp.IssueTypes[category.Slug] = byType
	}
	return resp
}

// Package routing implements the hierarchical routing engine for the
// IST work order system.
//
// The engine is a pure computation pipeline: a department, category,
// sub-type, user priority, and free text flow through four ordered
// tiers, producing one immutable Result. It performs no I/O, holds no
// mutable state, and is safe to call concurrently.
//
// Tier 1 applies the department tier's priority floor. Tier 2 escalates
// network/server/security tickets from Critical Infrastructure
// departments to P1. Tier 3 applies the sub-type rule (bump, force, or
// downward cap). Tier 4 scans the free text for keyword rules,
// first match wins.
package routing

import (
	"fmt"
	"strings"
)

// Engine evaluates routing decisions. The zero value matches the
// canonical behavior: substring-only keyword matching.
type Engine struct {
	fuzzy bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithFuzzyMatching enables edit-distance tolerance for single-word
// keywords in the Tier 4 scan. Off by default.
func WithFuzzyMatching() Option {
	return func(e *Engine) { e.fuzzy = true }
}

// NewEngine builds an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = &Engine{}

// Compute routes a work order through the default engine.
func Compute(in Input) Result {
	return defaultEngine.Compute(in)
}

// Compute runs all four routing tiers and returns the resolved
// decision. It is total: unknown departments, categories, and sub-types
// fall back to safe defaults, and out-of-range priorities are clamped,
// never rejected.
func (e *Engine) Compute(in Input) Result {
	var reasons []string

	ep := ClampPriority(in.UserPriority)
	up := ep

	// Tier 1: department floor. Only ever raises urgency.
	tier := DepartmentTier(in.Department)
	meta := MetaForTier(tier)
	if meta.PriorityFloor < ep {
		reasons = append(reasons, fmt.Sprintf(
			"Tier 1 (%s): priority elevated from %s to %s.",
			meta.Label, ep.Label(), meta.PriorityFloor.Label()))
		ep = meta.PriorityFloor
	}

	// Tier 2: category escalation for Critical Infrastructure.
	if tier == TierCriticalInfra {
		if _, hit := criticalInfraP1Categories[in.Category]; hit && ep > PriorityCritical {
			reasons = append(reasons, fmt.Sprintf(
				"Tier 2: '%s' on Critical Infrastructure dept — auto-escalated to Critical (P1).",
				in.Category))
			ep = PriorityCritical
		}
	}

	// Tier 3: sub-type modifier. Force and bump are mutually exclusive;
	// the cap applies independently but only to non-Critical-Infra
	// departments, and is the engine's sole relaxation path.
	if rule, ok := subTypeRules[in.SubType]; ok {
		if rule.CIForceP1 && tier == TierCriticalInfra && ep > PriorityCritical {
			reasons = append(reasons, fmt.Sprintf(
				"Tier 3 (sub-type '%s'): complete outage on Critical Infra — forced Critical (P1).",
				in.SubType))
			ep = PriorityCritical
		} else if rule.Bump > 0 {
			bumped := ep - Priority(rule.Bump)
			if bumped >= PriorityCritical && bumped < ep {
				reasons = append(reasons, fmt.Sprintf(
					"Tier 3 (sub-type '%s'): +%d priority bump → %s.",
					in.SubType, rule.Bump, bumped.Label()))
				ep = bumped
			}
		}
		if rule.Cap != 0 && tier != TierCriticalInfra && ep < rule.Cap {
			reasons = append(reasons, fmt.Sprintf(
				"Tier 3 (sub-type '%s'): capped at %s (non-urgent sub-type).",
				in.SubType, rule.Cap.Label()))
			ep = rule.Cap
		}
	}

	// Tier 4: keyword scan. The first rule with any matching phrase
	// consumes the scan, whether or not it changes the priority.
	combined := strings.ToLower(in.Text)
	for _, rule := range keywordRules {
		matched, keyword, fuzzyFor := e.matchRule(rule, combined)
		if !matched {
			continue
		}
		fuzzyNote := ""
		if fuzzyFor != "" {
			fuzzyNote = fmt.Sprintf(" (fuzzy match for '%s')", fuzzyFor)
		}
		if rule.Force != 0 && ep > rule.Force {
			reasons = append(reasons, fmt.Sprintf(
				"Tier 4: keyword '%s'%s detected — forced %s. (%s)",
				keyword, fuzzyNote, rule.Force.Label(), rule.Note))
			ep = rule.Force
		} else if rule.Bump > 0 {
			bumped := ep - Priority(rule.Bump)
			if bumped < PriorityCritical {
				bumped = PriorityCritical
			}
			if bumped < ep {
				reasons = append(reasons, fmt.Sprintf(
					"Tier 4: keyword '%s'%s detected — bumped to %s. (%s)",
					keyword, fuzzyNote, bumped.Label(), rule.Note))
				ep = bumped
			}
		}
		break
	}

	team := TeamFor(in.Category, tier)
	sla := SLAFor(tier, ep)

	if len(reasons) == 0 {
		reasons = append(reasons,
			"All tiers evaluated with no modifications. Ticket routed by category with user-selected priority.")
	}

	return Result{
		Tier:              tier,
		TierLabel:         meta.Label,
		TierIcon:          meta.Icon,
		TierColor:         meta.Color,
		Team:              team,
		SLA:               sla,
		EffectivePriority: ep,
		UserPriority:      up,
		SuggestedPriority: ep,
		EscalationPath:    EscalationPathFor(ep),
		Reasons:           reasons,
		WasModified:       ep != up,
	}
}

// matchRule tests each phrase of a keyword rule against the lowered
// text. It returns the phrase that matched and, for fuzzy hits, the
// configured keyword the token resembled.
func (e *Engine) matchRule(rule KeywordRule, combined string) (bool, string, string) {
	var tokens []string
	if e.fuzzy {
		tokens = strings.Fields(combined)
	}
	for _, keyword := range rule.Keywords {
		if strings.Contains(combined, keyword) {
			return true, keyword, ""
		}
		if e.fuzzy && !strings.Contains(keyword, " ") {
			if token, ok := closestToken(keyword, tokens); ok {
				return true, token, keyword
			}
		}
	}
	return false, "", ""
}

package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeClampsUserPriority(t *testing.T) {
	cases := []struct {
		raw  int
		want Priority
	}{
		{-3, PriorityCritical},
		{0, PriorityCritical},
		{1, PriorityCritical},
		{2, PriorityHigh},
		{4, PriorityLow},
		{5, PriorityLow},
		{99, PriorityLow},
	}
	for _, tc := range cases {
		result := Compute(Input{Department: "Finance", Category: "hardware", UserPriority: tc.raw})
		assert.Equal(t, tc.want, result.UserPriority, "raw priority %d", tc.raw)
	}
}

func TestComputePoliceNetworkOutage(t *testing.T) {
	result := Compute(Input{
		Department:   "Police Department",
		Category:     "network",
		SubType:      "complete_outage",
		UserPriority: 3,
		Text:         "no internet",
	})

	assert.Equal(t, PriorityCritical, result.EffectivePriority)
	assert.Equal(t, "NOC On-Call", result.Team)
	assert.Equal(t, "1 hr", result.SLA)
	assert.True(t, result.WasModified)
	assert.Equal(t, TierCriticalInfra, result.Tier)
}

func TestComputePasswordResetCapRelaxes(t *testing.T) {
	result := Compute(Input{
		Department:   "Finance",
		Category:     "software",
		SubType:      "pw_reset",
		UserPriority: 1,
	})

	assert.Equal(t, PriorityMedium, result.EffectivePriority)
	assert.Equal(t, "Application Support Team", result.Team)
	assert.True(t, result.WasModified)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "capped at Medium")
}

func TestComputePublicSafetyFloor(t *testing.T) {
	result := Compute(Input{
		Department:   "Health Department",
		Category:     "hardware",
		UserPriority: 4,
	})

	assert.Equal(t, PriorityMedium, result.EffectivePriority)
	assert.Equal(t, "Desktop Support Team", result.Team)
	assert.True(t, result.WasModified)
}

func TestComputeUrgencyKeywordBump(t *testing.T) {
	result := Compute(Input{
		Department:   "Finance",
		Category:     "email",
		UserPriority: 3,
		Text:         "this is urgent, asap",
	})

	assert.Equal(t, PriorityHigh, result.EffectivePriority)
	assert.True(t, result.WasModified)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "keyword 'urgent'")
}

func TestComputeCriticalInfraSecurityStacksReasons(t *testing.T) {
	result := Compute(Input{
		Department:   "Utilities",
		Category:     "security",
		UserPriority: 4,
	})

	assert.Equal(t, PriorityCritical, result.EffectivePriority)
	assert.True(t, result.WasModified)
	require.Len(t, result.Reasons, 2)
	assert.Contains(t, result.Reasons[0], "Tier 1")
	assert.Contains(t, result.Reasons[1], "Tier 2")
}

func TestComputeDefaultsForUnknownInputs(t *testing.T) {
	result := Compute(Input{
		Department:   "Bureau of Imaginary Affairs",
		Category:     "quantum",
		SubType:      "nonexistent",
		UserPriority: 3,
		Text:         "nothing notable here",
	})

	assert.Equal(t, TierStandard, result.Tier)
	assert.Equal(t, FallbackTeam, result.Team)
	assert.Equal(t, PriorityMedium, result.EffectivePriority)
	assert.False(t, result.WasModified)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "no modifications")
	assert.Equal(t, "1 day", result.SLA)
}

func TestComputeKeywordScanStopsAtFirstMatchingRule(t *testing.T) {
	// "scada" matches the first rule. The force cannot apply because
	// priority is already Critical, but the scan must still stop there:
	// the later "urgent" rule may not fire.
	result := Compute(Input{
		Department:   "Finance",
		Category:     "server",
		UserPriority: 1,
		Text:         "scada historian urgent review",
	})

	assert.Equal(t, PriorityCritical, result.EffectivePriority)
	assert.False(t, result.WasModified)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "no modifications")
}

func TestComputeKeywordRuleOrder(t *testing.T) {
	// Both the outage rule and the urgency rule match; the outage rule
	// comes first in the list and wins.
	result := Compute(Input{
		Department:   "Finance",
		Category:     "network",
		UserPriority: 3,
		Text:         "complete outage, urgent",
	})

	assert.Equal(t, PriorityHigh, result.EffectivePriority)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "Outage-level keyword")
}

func TestComputeKeywordForceOnlyWhenMoreUrgent(t *testing.T) {
	result := Compute(Input{
		Department:   "Finance",
		Category:     "phone",
		UserPriority: 4,
		Text:         "the entire building lost phones",
	})

	assert.Equal(t, PriorityCritical, result.EffectivePriority)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "City/department-wide impact")
}

func TestComputeCapSkippedForCriticalInfra(t *testing.T) {
	// pw_reset caps to Medium for standard departments but never for
	// Critical Infrastructure ones.
	result := Compute(Input{
		Department:   "Fire Department",
		Category:     "security",
		SubType:      "pw_reset",
		UserPriority: 1,
	})

	assert.Equal(t, PriorityCritical, result.EffectivePriority)
	for _, reason := range result.Reasons {
		assert.NotContains(t, reason, "capped")
	}
}

func TestComputeSubTypeBumpStandardDepartment(t *testing.T) {
	result := Compute(Input{
		Department:   "Public Works",
		Category:     "software",
		SubType:      "data_loss",
		UserPriority: 3,
	})

	assert.Equal(t, PriorityHigh, result.EffectivePriority)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "+1 priority bump")
}

func TestComputeCriticalInfraFloorInvariant(t *testing.T) {
	for _, dept := range []string{"Police Department", "Fire Department", "Utilities", "City Manager's Office"} {
		for priority := 1; priority <= 4; priority++ {
			result := Compute(Input{Department: dept, Category: "hardware", UserPriority: priority})
			assert.LessOrEqual(t, result.EffectivePriority, PriorityHigh,
				"%s with user priority %d", dept, priority)
		}
	}
}

func TestComputeMonotonicFloorWithoutCap(t *testing.T) {
	// Absent a Tier 3 cap, the result is never less urgent than the
	// clamped user selection.
	for _, dept := range DepartmentChoices {
		for _, category := range CategoryChoices {
			for priority := 1; priority <= 4; priority++ {
				result := Compute(Input{Department: dept, Category: category.Slug, UserPriority: priority})
				assert.LessOrEqual(t, result.EffectivePriority, result.UserPriority,
					"%s/%s p%d", dept, category.Slug, priority)
			}
		}
	}
}

func TestComputeWasModifiedFlag(t *testing.T) {
	inputs := []Input{
		{Department: "Finance", Category: "hardware", UserPriority: 4},
		{Department: "Utilities", Category: "network", UserPriority: 4},
		{Department: "Finance", Category: "software", SubType: "pw_reset", UserPriority: 1},
		{Department: "Health Department", Category: "data", UserPriority: 2},
	}
	for _, in := range inputs {
		result := Compute(in)
		assert.Equal(t, result.EffectivePriority != result.UserPriority, result.WasModified, "%+v", in)
	}
}

func TestComputeSuggestedEqualsEffective(t *testing.T) {
	result := Compute(Input{Department: "Utilities", Category: "server", UserPriority: 4, Text: "outage"})
	assert.Equal(t, result.EffectivePriority, result.SuggestedPriority)
}

func TestComputeDeterministic(t *testing.T) {
	in := Input{
		Department:   "Police Department",
		Category:     "network",
		SubType:      "no_internet",
		UserPriority: 4,
		Text:         "entire division cannot access dispatch",
	}
	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)
}

func TestComputeEscalationPathTracksFinalPriority(t *testing.T) {
	result := Compute(Input{Department: "Utilities", Category: "network", UserPriority: 4})
	assert.Equal(t, []string{"L1 Intake", "Team Lead", "IT Director", "City Manager"}, result.EscalationPath)

	result = Compute(Input{Department: "Finance", Category: "hardware", UserPriority: 4})
	assert.Equal(t, []string{"L1 Intake"}, result.EscalationPath)
}

func TestFuzzyMatchingOptIn(t *testing.T) {
	in := Input{
		Department:   "Finance",
		Category:     "email",
		UserPriority: 3,
		Text:         "emergancy cannot open outlook at my desk",
	}

	// Canonical engine: substring only, the misspelling does not hit.
	strict := Compute(in)
	assert.Equal(t, PriorityMedium, strict.EffectivePriority)

	fuzzy := NewEngine(WithFuzzyMatching()).Compute(in)
	assert.Equal(t, PriorityHigh, fuzzy.EffectivePriority)
	require.Len(t, fuzzy.Reasons, 1)
	assert.Contains(t, fuzzy.Reasons[0], "fuzzy match for 'emergency'")
}

func TestFuzzyMatchingIgnoresDistantTokens(t *testing.T) {
	result := NewEngine(WithFuzzyMatching()).Compute(Input{
		Department:   "Finance",
		Category:     "email",
		UserPriority: 3,
		Text:         "printer toner order",
	})
	assert.Equal(t, PriorityMedium, result.EffectivePriority)
	assert.False(t, result.WasModified)
}

package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSLAForFallsBackToStandard(t *testing.T) {
	assert.Equal(t, "1 hr", SLAFor(TierCriticalInfra, PriorityCritical))
	assert.Equal(t, "3 days", SLAFor(TierStandard, PriorityLow))
	assert.Equal(t, "1 day", SLAFor(Tier("MYSTERY"), PriorityMedium))
	assert.Equal(t, "TBD", SLAFor(TierStandard, Priority(9)))
}

func TestEscalationPathDefaultsToShortest(t *testing.T) {
	assert.Equal(t, []string{"L1 Intake"}, EscalationPathFor(Priority(7)))
	assert.Len(t, EscalationPathFor(PriorityCritical), 4)
}

func TestEscalationPathIsACopy(t *testing.T) {
	path := EscalationPathFor(PriorityHigh)
	path[0] = "tampered"
	assert.Equal(t, "L1 Intake", EscalationPathFor(PriorityHigh)[0])
}

func TestTeamForCriticalInfraOverride(t *testing.T) {
	assert.Equal(t, "Field Tech Unit (Priority Response)", TeamFor("hardware", TierCriticalInfra))
	assert.Equal(t, "Desktop Support Team", TeamFor("hardware", TierStandard))
	assert.Equal(t, FallbackTeam, TeamFor("telepathy", TierStandard))
}

func TestDepartmentTierDefaults(t *testing.T) {
	assert.Equal(t, TierCriticalInfra, DepartmentTier("Utilities"))
	assert.Equal(t, TierExecutive, DepartmentTier("City Manager's Office"))
	assert.Equal(t, TierStandard, DepartmentTier("utilities"))
	assert.Equal(t, TierStandard, DepartmentTier(""))
}

func TestMetaForTierUnknownSlug(t *testing.T) {
	meta := MetaForTier(Tier("NOPE"))
	assert.Equal(t, "Standard", meta.Label)
	assert.Equal(t, PriorityLow, meta.PriorityFloor)
}

func TestPriorityLabels(t *testing.T) {
	assert.Equal(t, "Critical", PriorityCritical.Label())
	assert.Equal(t, "Low", PriorityLow.Label())
	assert.Equal(t, "Unknown", Priority(0).Label())
}

func TestTablesSnapshotIsIsolated(t *testing.T) {
	ref := Tables()
	ref.DepartmentTiers["Finance"] = TierCriticalInfra
	ref.KeywordRules[0].Keywords[0] = "tampered"
	ref.EscalationPaths[PriorityCritical][0] = "tampered"

	assert.Equal(t, TierStandard, DepartmentTier("Finance"))
	assert.Equal(t, "scada", Tables().KeywordRules[0].Keywords[0])
	assert.Equal(t, "L1 Intake", EscalationPathFor(PriorityCritical)[0])
}

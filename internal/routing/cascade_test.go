package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeCoversEveryCategory(t *testing.T) {
	for _, category := range CategoryChoices {
		cascade, ok := CascadeFor(category.Slug)
		require.True(t, ok, category.Slug)
		require.NotEmpty(t, cascade.SubTypes, category.Slug)
		for _, sub := range cascade.SubTypes {
			assert.NotEmpty(t, cascade.IssueTypes[sub.Slug],
				"%s/%s has no issue types", category.Slug, sub.Slug)
		}
	}
}

func TestEverySubTypeHasARuleEntry(t *testing.T) {
	// Every sub-type in the cascade must resolve in the rules table so
	// Tier 3 behavior is defined for all selectable values.
	for _, choice := range AllSubTypeChoices() {
		_, ok := subTypeRules[choice.Slug]
		assert.True(t, ok, "no sub-type rule for %q", choice.Slug)
	}
}

func TestValidSubType(t *testing.T) {
	assert.True(t, ValidSubType("network", "no_internet"))
	assert.True(t, ValidSubType("network", ""))
	assert.False(t, ValidSubType("network", "pw_reset"))
	assert.False(t, ValidSubType("unknown", "no_internet"))
}

func TestValidIssueType(t *testing.T) {
	assert.True(t, ValidIssueType("hardware", "no_boot", "bios_error"))
	assert.True(t, ValidIssueType("hardware", "no_boot", ""))
	assert.False(t, ValidIssueType("hardware", "no_boot", "dead_pixels"))
	assert.False(t, ValidIssueType("hardware", "display", "bios_error"))
}

func TestSubTypesForReturnsCopy(t *testing.T) {
	first := SubTypesFor("phone")
	require.NotEmpty(t, first)
	first[0].Slug = "tampered"
	assert.Equal(t, "complete_outage", SubTypesFor("phone")[0].Slug)
}

func TestAllSubTypeChoicesDeduplicates(t *testing.T) {
	seen := map[string]int{}
	for _, choice := range AllSubTypeChoices() {
		seen[choice.Slug]++
	}
	for slug, count := range seen {
		assert.Equal(t, 1, count, slug)
	}
}

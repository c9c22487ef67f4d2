package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestAgentStatus_BadgeColor(t *testing.T) {
	tests := []struct {
		status AgentStatus
		want   string
	}{
		{AgentStatusActive, ColorGreen},
		{AgentStatusInactive, ColorGray},
		{AgentStatusDeprecated, ColorYellow},
		{AgentStatusArchived, ColorRed},
		{AgentStatus("retired"), ColorGray},
		{AgentStatus(""), ColorGray},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.BadgeColor())
		})
	}
}

func TestLevelBadgeColor(t *testing.T) {
	assert.Equal(t, ColorBlue, LevelBadgeColor(1))
	assert.Equal(t, ColorGreen, LevelBadgeColor(2))
	assert.Equal(t, ColorYellow, LevelBadgeColor(3))
	assert.Equal(t, ColorOrange, LevelBadgeColor(4))
	assert.Equal(t, ColorRed, LevelBadgeColor(5))
	assert.Equal(t, ColorGray, LevelBadgeColor(0))
	assert.Equal(t, ColorGray, LevelBadgeColor(6))
}

func TestSeverityAndPriorityLabels(t *testing.T) {
	assert.Equal(t, "Minor", SeverityLabel(1))
	assert.Equal(t, "Critical", SeverityLabel(5))
	assert.Equal(t, "Unknown", SeverityLabel(9))

	assert.Equal(t, "Very Low", PriorityLabel(1))
	assert.Equal(t, "High", PriorityLabel(4))
	assert.Equal(t, "Unknown", PriorityLabel(-1))
}

func TestSuccessPresentation(t *testing.T) {
	assert.Equal(t, "Success", SuccessLabel(ptr(true)))
	assert.Equal(t, "Failed", SuccessLabel(ptr(false)))
	assert.Equal(t, "Unknown", SuccessLabel(nil))

	assert.Equal(t, ColorGreen, SuccessBadgeColor(ptr(true)))
	assert.Equal(t, ColorRed, SuccessBadgeColor(ptr(false)))
	assert.Equal(t, ColorGray, SuccessBadgeColor(nil))
}

func TestRatingStars(t *testing.T) {
	assert.Equal(t, "—", RatingStars(nil))
	assert.Equal(t, "★★★☆☆", RatingStars(ptr(3)))
	assert.Equal(t, "★★★★★", RatingStars(ptr(5)))
	assert.Equal(t, "★★★★★", RatingStars(ptr(7)))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Spec update", Humanize("spec_update"))
	assert.Equal(t, "Subagent integration", Humanize("subagent_integration"))
	assert.Equal(t, "Research", Humanize("research"))
	assert.Equal(t, "", Humanize(""))
}

func TestChangeEnums(t *testing.T) {
	assert.Len(t, ChangeType("").Values(), 8)
	assert.Len(t, TriggeredBy("").Values(), 5)

	assert.Equal(t, ColorOrange, ChangeTypeCapabilityRemoved.BadgeColor())
	assert.Equal(t, ColorPurple, ChangeTypeSubagentIntegration.BadgeColor())
	assert.Equal(t, ColorGray, ChangeType("rename").BadgeColor())
	assert.Equal(t, ColorPurple, TriggeredByInitialCreation.BadgeColor())
	assert.Equal(t, ColorGray, TriggeredBy("cron").BadgeColor())
	assert.Equal(t, "Bug fix", ChangeTypeBugFix.Label())
}

func TestStatusEnums(t *testing.T) {
	assert.True(t, CategoryCoding.IsValid())
	assert.False(t, Category("astrology").IsValid())
	assert.Len(t, Category("").Values(), 18)

	assert.Equal(t, ColorPurple, InvocationModeSubagent.BadgeColor())
	assert.Equal(t, ColorBlue, InvocationModeManual.BadgeColor())
	assert.Equal(t, ColorGray, InvocationMode("cron").BadgeColor())

	assert.Equal(t, ColorRed, IssueStatusOpen.BadgeColor())
	assert.Equal(t, ColorGray, IssueStatus("closed").BadgeColor())

	assert.True(t, ImprovementStatusProposed.IsPending())
	assert.True(t, ImprovementStatusApproved.IsPending())
	assert.False(t, ImprovementStatusImplemented.IsPending())
	assert.Equal(t, ColorGray, ImprovementStatus("").BadgeColor())
}

func TestListParams_Normalize(t *testing.T) {
	p := ListParams{}.Normalize(50)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = ListParams{Page: 3, PageSize: 500}.Normalize(25)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

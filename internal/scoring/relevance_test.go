package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleRelevance_RecruitingTier(t *testing.T) {
	assert.Equal(t, TierRecruiting, TitleRelevance("Senior Technical Recruiter"))
	assert.Equal(t, TierRecruiting, TitleRelevance("Head of Talent Acquisition"))
	assert.Equal(t, TierRecruiting, TitleRelevance("Director of People Operations"))
	assert.Equal(t, TierRecruiting, TitleRelevance("Human Resources Manager"))
}

func TestTitleRelevance_EngineeringManagementTier(t *testing.T) {
	assert.Equal(t, TierEngManagement, TitleRelevance("Engineering Manager"))
	assert.Equal(t, TierEngManagement, TitleRelevance("Director of Engineering"))
	assert.Equal(t, TierEngManagement, TitleRelevance("VP of Engineering"))
}

func TestTitleRelevance_ExecutiveTier(t *testing.T) {
	assert.Equal(t, TierExecutive, TitleRelevance("CEO"))
	assert.Equal(t, TierExecutive, TitleRelevance("Co-Founder"))
	assert.Equal(t, TierExecutive, TitleRelevance("Chief Marketing Officer"))
}

func TestTitleRelevance_Default(t *testing.T) {
	assert.Equal(t, TierDefault, TitleRelevance("Software Engineer"))
	assert.Equal(t, TierDefault, TitleRelevance(""))
	assert.Equal(t, TierDefault, TitleRelevance("Barista"))
}

func TestTitleRelevance_RecruitingBeatsExecutive(t *testing.T) {
	// A recruiting title with a leadership word still scores as recruiting.
	assert.Equal(t, TierRecruiting, TitleRelevance("Director of Talent"))
	assert.Equal(t, TierRecruiting, TitleRelevance("VP of People Operations"))
}

func TestTargetRoleBoost_SharedToken(t *testing.T) {
	boost := TargetRoleBoost("Backend Software Developer", "Software Engineer")
	assert.InDelta(t, SharedTokenBoost, boost, 0.0001)
}

func TestTargetRoleBoost_StemMatch(t *testing.T) {
	// "engineer" in the target role matches "Engineering" in the title,
	// and "Manager" adds the management boost.
	boost := TargetRoleBoost("Engineering Manager", "Software Engineer")
	assert.InDelta(t, SharedTokenBoost+ManagementBoost, boost, 0.0001)
}

func TestTargetRoleBoost_ManagementOnly(t *testing.T) {
	boost := TargetRoleBoost("Head of Design", "Software Engineer")
	assert.InDelta(t, ManagementBoost, boost, 0.0001)
}

func TestTargetRoleBoost_NoMatch(t *testing.T) {
	assert.Zero(t, TargetRoleBoost("Barista", "Software Engineer"))
	assert.Zero(t, TargetRoleBoost("", "Software Engineer"))
	assert.Zero(t, TargetRoleBoost("Engineering Manager", ""))
}

func TestTargetRoleBoost_Idempotent(t *testing.T) {
	first := TargetRoleBoost("Engineering Manager", "Software Engineer")
	second := TargetRoleBoost("Engineering Manager", "Software Engineer")
	assert.Equal(t, first, second)
}

func TestRoleMatchScore_FullMatch(t *testing.T) {
	assert.InDelta(t, 1.0, RoleMatchScore("Software Engineer", "Software Engineer"), 0.0001)
}

func TestRoleMatchScore_PartialMatch(t *testing.T) {
	// One of two target tokens appears in the title.
	assert.InDelta(t, 0.5, RoleMatchScore("Senior Software Developer", "Software Engineer"), 0.0001)
}

func TestRoleMatchScore_NoTarget(t *testing.T) {
	assert.Zero(t, RoleMatchScore("Software Engineer", ""))
}

func TestRoleMatchScore_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, 1.0, RoleMatchScore("SOFTWARE ENGINEER", "software engineer"), 0.0001)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 1.0, ClampScore(1.4))
	assert.Equal(t, 0.0, ClampScore(-0.2))
	assert.Equal(t, 0.5, ClampScore(0.5))
}

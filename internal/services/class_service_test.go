package services

import (
	"fmt"
	"testing"

	"github.com/quizgen/quizgen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSection_DefaultLimitWithoutPlan(t *testing.T) {
	users := newFakeUserRepo()
	sections := newFakeSectionRepo()
	svc := NewClassService(users, sections)

	require.NoError(t, users.Create(&models.User{Username: "alice", Email: "a@example.com"}))

	section, err := svc.CreateSection(1, "Period 1")
	require.NoError(t, err)
	assert.Equal(t, "Period 1", section.Name)
	assert.Equal(t, uint(1), section.OwnerID)

	// default limit is one section
	_, err = svc.CreateSection(1, "Period 2")
	assert.ErrorIs(t, err, ErrPlanLimit)
}

func TestCreateSection_PlanLimitBoundary(t *testing.T) {
	users := newFakeUserRepo()
	sections := newFakeSectionRepo()
	svc := NewClassService(users, sections)

	planID := uint(2)
	require.NoError(t, users.Create(&models.User{
		Username: "alice",
		Email:    "a@example.com",
		PlanID:   &planID,
		Plan:     &models.Plan{ID: planID, Name: "pro", MonthlyQuotaBytes: 1 << 30, MaxClassSections: 3},
	}))

	for i := 1; i <= 3; i++ {
		_, err := svc.CreateSection(1, fmt.Sprintf("Period %d", i))
		require.NoError(t, err, "section %d should fit inside the plan limit", i)
	}

	_, err := svc.CreateSection(1, "Period 4")
	assert.ErrorIs(t, err, ErrPlanLimit)

	count, err := sections.CountByOwner(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCreateSection_LimitIsPerOwner(t *testing.T) {
	users := newFakeUserRepo()
	sections := newFakeSectionRepo()
	svc := NewClassService(users, sections)

	require.NoError(t, users.Create(&models.User{Username: "alice", Email: "a@example.com"}))
	require.NoError(t, users.Create(&models.User{Username: "bob", Email: "b@example.com"}))

	_, err := svc.CreateSection(1, "Alice 1")
	require.NoError(t, err)

	// bob's count starts at zero regardless of alice's sections
	_, err = svc.CreateSection(2, "Bob 1")
	require.NoError(t, err)
}

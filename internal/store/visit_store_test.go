package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/homebase/internal/domain"
)

func TestVisitStoreCreateAndList(t *testing.T) {
	store := NewVisitStore(openTestDB(t))
	ctx := context.Background()

	notes := "arriving by train"
	first, err := store.Create(ctx, &domain.Visit{
		VisitorName: "Grandma",
		StartDate:   domain.NewDate(2024, time.July, 1),
		EndDate:     domain.NewDate(2024, time.July, 5),
		Notes:       &notes,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	require.NotNil(t, first.Notes)
	assert.Equal(t, notes, *first.Notes)

	second, err := store.Create(ctx, &domain.Visit{
		VisitorName: "Uncle Bob",
		StartDate:   domain.NewDate(2024, time.August, 10),
		EndDate:     domain.NewDate(2024, time.August, 3),
	})
	require.NoError(t, err)
	assert.Nil(t, second.Notes)
	assert.Equal(t, "2024-08-10", second.StartDate.String())
	assert.Equal(t, "2024-08-03", second.EndDate.String())

	visits, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, []int64{visits[0].ID, visits[1].ID})
}

func TestRequirementStoreCreate(t *testing.T) {
	d := openTestDB(t)
	visits := NewVisitStore(d)
	reqs := NewRequirementStore(d)
	ctx := context.Background()

	visit, err := visits.Create(ctx, &domain.Visit{
		VisitorName: "Ann",
		StartDate:   domain.NewDate(2024, time.March, 1),
		EndDate:     domain.NewDate(2024, time.March, 2),
	})
	require.NoError(t, err)

	meal := "chili con carne"
	req, err := reqs.Create(ctx, &domain.VisitRequirement{VisitID: visit.ID, MealRequest: &meal})
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, visit.ID, req.VisitID)
	require.NotNil(t, req.MealRequest)
	assert.Equal(t, meal, *req.MealRequest)
	assert.Nil(t, req.SpecialNotes)
}

func TestRequirementStoreAcceptsOrphan(t *testing.T) {
	reqs := NewRequirementStore(openTestDB(t))

	special := "wheelchair access"
	req, err := reqs.Create(context.Background(), &domain.VisitRequirement{VisitID: 12345, SpecialNotes: &special})
	require.NoError(t, err)
	assert.Equal(t, int64(12345), req.VisitID)
}

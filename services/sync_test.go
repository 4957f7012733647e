package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncedRecord struct {
	ID    uuid.UUID
	Label string
}

func (r syncedRecord) GetID() uuid.UUID { return r.ID }

func TestPlanSyncAllNew(t *testing.T) {
	submitted := []syncedRecord{
		{ID: uuid.New(), Label: "a"},
		{ID: uuid.New(), Label: "b"},
	}

	plan := PlanSync(nil, submitted)

	assert.Len(t, plan.Creates, 2)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Deletes)
}

func TestPlanSyncMixed(t *testing.T) {
	kept := syncedRecord{ID: uuid.New(), Label: "kept"}
	dropped := syncedRecord{ID: uuid.New(), Label: "dropped"}
	existing := []syncedRecord{kept, dropped}

	added := syncedRecord{ID: uuid.New(), Label: "added"}
	submitted := []syncedRecord{
		{ID: kept.ID, Label: "kept-renamed"},
		added,
	}

	plan := PlanSync(existing, submitted)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, kept.ID, plan.Updates[0].ID)
	assert.Equal(t, "kept-renamed", plan.Updates[0].Label)

	require.Len(t, plan.Creates, 1)
	assert.Equal(t, added.ID, plan.Creates[0].ID)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, dropped.ID, plan.Deletes[0])
}

// After applying a plan the persisted set must equal the submission.
func TestPlanSyncFinalSetEqualsSubmission(t *testing.T) {
	existing := []syncedRecord{
		{ID: uuid.New()},
		{ID: uuid.New()},
		{ID: uuid.New()},
	}
	submitted := []syncedRecord{
		{ID: existing[1].ID},
		{ID: uuid.New()},
	}

	plan := PlanSync(existing, submitted)

	final := make(map[uuid.UUID]struct{})
	for _, r := range existing {
		final[r.ID] = struct{}{}
	}
	for _, id := range plan.Deletes {
		_, ok := final[id]
		require.True(t, ok, "delete targets a record that was never persisted")
		delete(final, id)
	}
	for _, r := range plan.Updates {
		_, ok := final[r.ID]
		require.True(t, ok, "update targets a record that is not persisted")
	}
	for _, r := range plan.Creates {
		_, ok := final[r.ID]
		require.False(t, ok, "create collides with a persisted record")
		final[r.ID] = struct{}{}
	}

	assert.Len(t, final, len(submitted))
	for _, r := range submitted {
		assert.Contains(t, final, r.ID)
	}
}

// Resubmitting the persisted set schedules only in-place updates.
func TestPlanSyncIdempotent(t *testing.T) {
	existing := []syncedRecord{
		{ID: uuid.New(), Label: "a"},
		{ID: uuid.New(), Label: "b"},
	}

	plan := PlanSync(existing, existing)

	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Deletes)
	assert.Len(t, plan.Updates, len(existing))
}

func TestPlanSyncEmptySubmissionDeletesEverything(t *testing.T) {
	existing := []syncedRecord{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}

	plan := PlanSync(existing, nil)

	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Updates)
	assert.Equal(t, []uuid.UUID{existing[0].ID, existing[1].ID}, plan.Deletes)
}

func TestSyncPlanIsEmpty(t *testing.T) {
	assert.True(t, PlanSync[syncedRecord](nil, nil).IsEmpty())
	assert.False(t, PlanSync(nil, []syncedRecord{{ID: uuid.New()}}).IsEmpty())
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SubResource is implemented by nested records that are reconciled
// against the persisted set of a parent (order items, product images).
type SubResource interface {
	GetID() uuid.UUID
}

// SyncPlan is the outcome of diffing a submitted sub-resource sequence
// against the persisted set: matched ids become updates, unmatched
// submissions become creates, and persisted records omitted from the
// submission are deleted. After applying the plan the persisted set
// equals the submission.
type SyncPlan[T SubResource] struct {
	Creates []T
	Updates []T
	Deletes []uuid.UUID
}

// IsEmpty reports whether the plan schedules no writes at all.
func (p SyncPlan[T]) IsEmpty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// PlanSync diffs submitted sub-resources against the existing persisted
// set. Submitted records must already carry their intended field values;
// a submitted record whose id matches an existing one is scheduled as an
// in-place update, anything else as a create. Existing records not
// matched by any submission are scheduled for deletion.
func PlanSync[T SubResource](existing []T, submitted []T) SyncPlan[T] {
	remaining := make(map[uuid.UUID]struct{}, len(existing))
	for _, record := range existing {
		remaining[record.GetID()] = struct{}{}
	}

	var plan SyncPlan[T]
	for _, record := range submitted {
		id := record.GetID()
		if _, ok := remaining[id]; ok {
			plan.Updates = append(plan.Updates, record)
			delete(remaining, id)
			continue
		}
		plan.Creates = append(plan.Creates, record)
	}

	// Preserve the original order for deterministic delete statements
	for _, record := range existing {
		if _, ok := remaining[record.GetID()]; ok {
			plan.Deletes = append(plan.Deletes, record.GetID())
		}
	}

	return plan
}

// ApplySync executes a sync plan on the given transaction handle.
// updateColumns names the columns written for in-place updates, so
// creation timestamps and parent references stay untouched. The caller
// is expected to run this inside a transaction; a failure partway rolls
// the whole pass back.
func ApplySync[T SubResource](ctx context.Context, idb bun.IDB, plan SyncPlan[T], updateColumns ...string) error {
	if len(plan.Creates) > 0 {
		if _, err := idb.NewInsert().Model(&plan.Creates).Exec(ctx); err != nil {
			return fmt.Errorf("sync insert failed: %w", err)
		}
	}

	for i := range plan.Updates {
		query := idb.NewUpdate().Model(&plan.Updates[i]).WherePK()
		if len(updateColumns) > 0 {
			query = query.Column(updateColumns...)
		}
		if _, err := query.Exec(ctx); err != nil {
			return fmt.Errorf("sync update failed: %w", err)
		}
	}

	if len(plan.Deletes) > 0 {
		var model T
		_, err := idb.NewDelete().
			Model(&model).
			Where("id IN (?)", bun.In(plan.Deletes)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("sync delete failed: %w", err)
		}
	}

	return nil
}

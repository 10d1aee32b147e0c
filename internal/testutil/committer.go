// Package testutil holds fakes shared by the unit tests and the Spanner
// emulator helpers used by the integration tests.
package testutil

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// RecordingApplier is a committer.Applier that keeps every applied mutation
// instead of writing it. ApplyInTransaction runs fn with Txn, which fake
// repositories are free to ignore.
type RecordingApplier struct {
	mu        sync.Mutex
	Txn       committer.Txn
	Err       error
	Mutations []*spanner.Mutation
	Commits   int
}

// NewRecordingApplier creates an empty RecordingApplier.
func NewRecordingApplier() *RecordingApplier {
	return &RecordingApplier{}
}

// Apply records the plan's mutations, or returns Err when set.
func (a *RecordingApplier) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	if a.Err != nil {
		return a.Err
	}
	a.record(plan)
	return nil
}

// ApplyInTransaction runs fn once and records the plan it returns.
func (a *RecordingApplier) ApplyInTransaction(ctx context.Context, fn committer.TxnFunc) error {
	plan, err := fn(ctx, a.Txn)
	if err != nil {
		return err
	}
	if a.Err != nil {
		return a.Err
	}
	a.record(plan)
	return nil
}

func (a *RecordingApplier) record(plan *committer.CommitPlan) {
	if plan.IsEmpty() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Mutations = append(a.Mutations, plan.Mutations()...)
	a.Commits++
}

// Count returns the number of recorded mutations.
func (a *RecordingApplier) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.Mutations)
}

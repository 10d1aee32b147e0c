// Package committer collects Spanner mutations produced by repositories and
// applies them in one commit.
//
// Repositories never write. They return mutations; a use case gathers the row
// mutations and the matching outbox mutations into a CommitPlan and hands the
// plan to an Applier:
//
//	plan := committer.NewPlan()
//	plan.Add(repo.InsertMut(coupon))
//	plan.AddMultiple(eventMuts)
//	return applier.Apply(ctx, plan)
//
// When a decision depends on what is stored (ownership checks, usage limits),
// the use case reads through the Txn given to ApplyInTransaction and returns
// the plan from inside the callback, so the read and the write share one
// read-write transaction.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered set of mutations applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple appends every non-nil mutation in muts.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty reports whether the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return cp == nil || len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	if cp == nil {
		return 0
	}
	return len(cp.mutations)
}

// Txn is the read side of a read-write transaction.
// *spanner.ReadWriteTransaction satisfies it.
type Txn interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// TxnFunc reads through txn and returns the plan to buffer in the same transaction.
// A nil or empty plan commits nothing.
type TxnFunc func(ctx context.Context, txn Txn) (*CommitPlan, error)

// Applier applies commit plans. Committer is the Spanner implementation.
type Applier interface {
	Apply(ctx context.Context, plan *CommitPlan) error
	ApplyInTransaction(ctx context.Context, fn TxnFunc) error
}

// Committer applies plans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply writes every mutation in the plan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyInTransaction runs fn inside a read-write transaction and buffers the
// plan it returns. Spanner may call fn more than once on abort; fn must not
// have side effects outside the returned plan.
//
// An error returned by fn is returned unwrapped so callers can match the
// domain sentinel it carries.
func (c *Committer) ApplyInTransaction(ctx context.Context, fn TxnFunc) error {
	var fnErr error
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		fnErr = nil
		plan, err := fn(ctx, txn)
		if err != nil {
			fnErr = err
			return err
		}
		if plan.IsEmpty() {
			return nil
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

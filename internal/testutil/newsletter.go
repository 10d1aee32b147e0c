package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// SubscriberRepo is an in-memory contracts.SubscriberRepository keyed by email.
type SubscriberRepo struct {
	Emails   map[string]bool
	Inserted []*domain.Subscriber
}

// NewSubscriberRepo creates a repo that already holds emails.
func NewSubscriberRepo(emails ...string) *SubscriberRepo {
	r := &SubscriberRepo{Emails: make(map[string]bool)}
	for _, e := range emails {
		r.Emails[e] = true
	}
	return r
}

func (r *SubscriberRepo) InsertMut(s *domain.Subscriber) *spanner.Mutation {
	r.Inserted = append(r.Inserted, s)
	return spanner.Insert("newsletters", []string{"id", "email"}, []interface{}{s.ID(), s.Email()})
}

func (r *SubscriberRepo) EmailExists(ctx context.Context, txn committer.Txn, email string) (bool, error) {
	return r.Emails[email], nil
}

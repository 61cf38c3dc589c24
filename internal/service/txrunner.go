package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/InsightsLog/Insights-sub001/core/db"
	"github.com/InsightsLog/Insights-sub001/core/db/sqlc"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Users() store.UserStore
	Organizations() store.OrganizationStore
	Members() store.MemberStore
	Invitations() store.InvitationStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
	// AsUser runs fn in a transaction whose row-security identity is userID.
	AsUser(ctx context.Context, userID uuid.UUID, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

func (r *dbTxRunner) AsUser(ctx context.Context, userID uuid.UUID, fn func(stores StoreProvider) error) error {
	return r.db.AsUser(ctx, userID, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

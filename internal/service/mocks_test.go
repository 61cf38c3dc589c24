package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"github.com/InsightsLog/Insights-sub001/internal/model"
	"github.com/InsightsLog/Insights-sub001/internal/queue"
)

type mockUserStore struct {
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	upsertFn     func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return nil
}

type mockSessionStore struct {
	createFn   func(ctx context.Context, session *model.Session) error
	getValidFn func(ctx context.Context, tokenHash string) (*model.Session, error)
	deleteFn   func(ctx context.Context, tokenHash string) error
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockSessionStore) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tokenHash)
	}
	return nil
}

type mockAuditEventStore struct {
	createFn func(ctx context.Context, event *model.AuditEvent) (bool, error)
	listFn   func(ctx context.Context, orgID uuid.UUID, limit int32) ([]model.AuditEvent, error)
}

func (m *mockAuditEventStore) Create(ctx context.Context, event *model.AuditEvent) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return true, nil
}

func (m *mockAuditEventStore) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int32) ([]model.AuditEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orgID, limit)
	}
	return nil, nil
}

type mockCodeAuthenticator struct {
	authenticateFn func(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error)
}

func (m *mockCodeAuthenticator) AuthenticateWithCode(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, opts)
	}
	return usermanagement.AuthenticateResponse{}, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	err    error
	events []queue.MemberEvent
}

func (m *mockPublisher) Publish(_ context.Context, event queue.MemberEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *mockPublisher) Types() []queue.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]queue.EventType, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

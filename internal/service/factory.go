package service

import (
	"github.com/InsightsLog/Insights-sub001/core/config"
	"github.com/InsightsLog/Insights-sub001/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	publisher    EventPublisher
	workos       CodeAuthenticator
	workOSCfg    config.WorkOSConfig
	dashboardURL string
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	publisher EventPublisher,
	workos CodeAuthenticator,
	workOSCfg config.WorkOSConfig,
	dashboardURL string,
) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		publisher:    publisher,
		workos:       workos,
		workOSCfg:    workOSCfg,
		dashboardURL: dashboardURL,
	}
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.txRunner, s.publisher)
}

func (s *Services) Memberships() MembershipService {
	return NewMembershipService(s.txRunner, s.publisher)
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(s.txRunner, s.publisher, s.dashboardURL)
}

func (s *Services) Audit() AuditService {
	return NewAuditService(s.stores.AuditEvents())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.workos,
		s.workOSCfg,
	)
}

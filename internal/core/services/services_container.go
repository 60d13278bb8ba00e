package services

import (
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/platform/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	googleOAuth := NewGoogleOAuthService(cfg)

	return &portssvc.ServiceContainer{
		Member:      NewMemberService(repos.MemberRepo, repos.AuthAccountRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.MemberRepo),
		Reporting:   NewReportService(repos.MemberRepo, repos.TransactionRepo),
		Auth:        NewAuthService(cfg, repos.AuthAccountRepo, repos.MemberRepo, googleOAuth),
		Token:       NewTokenService(cfg, repos.AuthAccountRepo),
		GoogleOAuth: googleOAuth,
	}
}

package pgsql

import (
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql-backed repository over a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		MemberRepo:      newPgxMemberRepository(db),
		TransactionRepo: newPgxTransactionRepository(db),
		AuthAccountRepo: newPgxAuthAccountRepository(db),
	}
}

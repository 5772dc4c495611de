package repository

import "context"

// TransactionManager runs use case steps inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. The transaction is rolled back when
	// fn returns an error or panics, and committed otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	BlogRepo() BlogRepository
}

package repository

import "context"

// TransactionManager defines the interface for managing multi-document transactions.
// This allows the use case layer to handle transactions without depending on a specific database driver.
type TransactionManager interface {
	// Execute runs a function within one transactional session.
	// If the function returns an error, the transaction is aborted. Otherwise, it's committed.
	// Repository operations must use the context passed to the function so that
	// every read and write observes the same session snapshot.
	Execute(ctx context.Context, fn func(ctx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same session.
type RepositoryFactory interface {
	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// DeliveryRepo returns a DeliveryRepository bound to the current transaction.
	DeliveryRepo() DeliveryRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}

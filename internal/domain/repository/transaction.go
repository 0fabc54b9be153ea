package repository

import "context"

// TransactionManager runs a unit of work in one database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	SupplierRepo() SupplierRepository
	AddressRepo() AddressRepository
	StallRepo() StallRepository
	ProductRepo() ProductRepository
	ChatRepo() ChatRepository
	MessageRepo() MessageRepository
}

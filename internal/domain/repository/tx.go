package repository

import "context"

// Repositories gives access to every repository bound to one database
// transaction. All repositories returned by a single instance share the same
// underlying transaction handle.
type Repositories interface {
	Products() ProductRepository
	Categories() CategoryRepository
	Clients() ClientRepository
	Suppliers() SupplierRepository
	Purchases() PurchaseRepository
	PurchaseItems() PurchaseItemRepository
	Sales() SaleRepository
	SaleItems() SaleItemRepository
}

// TxManager runs a unit of work inside a single database transaction.
// If fn returns an error the transaction is rolled back and no partial
// writes survive; otherwise it is committed.
type TxManager interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}

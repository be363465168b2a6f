// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the deliveries service.
//
// Each business operation obtains a fresh unit of work from the factory,
// giving it an isolated transaction boundary. Correctness of the lifecycle
// transitions does not depend on these transactions, since every guarded
// write is a single conditional UPDATE, but the unit of work keeps
// the application layer's persistence access uniform and leaves room for
// multi-statement operations.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"deliveries/internal/adapters/out/postgres/deliveryrepo"
	"deliveries/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database handle. The handle is the process-wide storage dependency:
// constructed once at startup, injected here, disposed at shutdown.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction for one business
// operation. Instances are not safe for concurrent use; concurrent callers
// each create their own.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Calling Begin again on the
// same instance is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DeliveryRepository returns a repository bound to the current transaction
// if one is active, otherwise to the main database connection.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return deliveryrepo.NewGormDeliveryRepository(db)
}

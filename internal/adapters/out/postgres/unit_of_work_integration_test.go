package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "deliveries/internal/adapters/out/postgres"
	"deliveries/internal/adapters/out/postgres/deliveryrepo"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommittedWriteIsVisible verifies a write inside a committed
// transaction persists and is visible from a fresh unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedWriteIsVisible() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createTestDelivery()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	// Visible within the transaction before commit.
	retrieved, err := uow.DeliveryRepository().Get(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.True(aggregate.IsEqual(retrieved))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.DeliveryRepository().Get(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.True(aggregate.IsEqual(retrieved))
}

// TestUnitOfWork_RollbackDiscardsWrites verifies rollback undoes everything
// written within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createTestDelivery()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.DeliveryRepository().Get(ctx, aggregate.OrderID())
	suite.Require().Error(err, "Delivery should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that uncommitted writes of one
// transaction are invisible to another.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	delivery1 := suite.createTestDelivery()
	delivery2 := suite.createTestDelivery()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.DeliveryRepository().Add(ctx, delivery1)
	suite.Require().NoError(err)
	err = uow2.DeliveryRepository().Add(ctx, delivery2)
	suite.Require().NoError(err)

	_, err = uow1.DeliveryRepository().Get(ctx, delivery1.OrderID())
	suite.Require().NoError(err, "UOW1 should see its own write")
	_, err = uow1.DeliveryRepository().Get(ctx, delivery2.OrderID())
	suite.Require().Error(err, "UOW1 should not see UOW2's uncommitted write")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.DeliveryRepository().Get(ctx, delivery1.OrderID())
	suite.Require().NoError(err, "Committed delivery should persist")
	_, err = newUow.DeliveryRepository().Get(ctx, delivery2.OrderID())
	suite.Require().Error(err, "Rolled back delivery should not persist")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work in auto-commit
// mode when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createTestDelivery()

	err := uow.DeliveryRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.DeliveryRepository().Get(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.True(aggregate.IsEqual(retrieved))
}

// TestUnitOfWork_TransitionInsideTransaction verifies a guarded transition
// participates in the surrounding transaction boundary.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransitionInsideTransaction() {
	ctx := context.Background()

	aggregate := suite.createTestDelivery()
	setupUow := suite.factory.Create()
	err := setupUow.DeliveryRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	err = uow.DeliveryRepository().ApplyTransition(ctx, aggregate.OrderID(), delivery.NewApproveTransition(now))
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// The rolled back transition must leave the record untouched.
	newUow := suite.factory.Create()
	retrieved, err := newUow.DeliveryRepository().Get(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.ApprovalTime())
}

// createTestDelivery creates a valid delivery whose access window has already
// elapsed, so lifecycle transitions apply to it.
func (suite *UnitOfWorkIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	orderID, err := kernel.NewOrderID(uuid.NewString())
	suite.Require().NoError(err)

	recipient, err := kernel.NewRecipient("Jane Doe", "1 Main St", "jane@example.com", "+1-555-0100")
	suite.Require().NoError(err)

	end := time.Now().UTC().Add(-time.Hour)
	window, err := kernel.NewAccessWindow(end.Add(-4*time.Hour), end)
	suite.Require().NoError(err)

	aggregate, err := delivery.NewDelivery(orderID, "Sender Corp", recipient, window)
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

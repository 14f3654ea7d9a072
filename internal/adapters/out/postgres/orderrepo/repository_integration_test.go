package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NewOrder_PersistsWithNullStatus() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err = suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.LatestStatus().IsUnset())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SetsProjectedStatus() {
	ctx := context.Background()

	aggregate := suite.addOrder()
	suite.Require().NoError(aggregate.ApplyLatestStatus(order.Complete))
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Complete, restored.LatestStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnsetStatusStoredAsNull() {
	ctx := context.Background()

	aggregate := suite.addOrder()
	suite.Require().NoError(aggregate.ApplyLatestStatus(order.Pending))
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	// Back to Unset, as after the last event is deleted.
	suite.Require().NoError(aggregate.ApplyLatestStatus(order.Unset))
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	var nullCount int64
	err := suite.db.Raw(
		"SELECT COUNT(*) FROM orders WHERE id = ? AND latest_status IS NULL",
		aggregate.ID().Bytes(),
	).Row().Scan(&nullCount)
	suite.Require().NoError(err)
	suite.Equal(int64(1), nullCount)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.LatestStatus().IsUnset())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), order.Pending)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction_ReturnsOrder() {
	ctx := context.Background()

	aggregate := suite.addOrder()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	locked, err := txRepo.GetForUpdate(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(locked.ID().IsEqual(aggregate.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	_, err := txRepo.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_Succeeds() {
	ctx := context.Background()

	aggregate := suite.addOrder()

	err := suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteAll_RemovesEveryOrder() {
	ctx := context.Background()

	for range 3 {
		suite.addOrder()
	}

	err := suite.repository.DeleteAll(ctx)
	suite.Require().NoError(err)

	ids, err := suite.repository.GetAllIDs(ctx)
	suite.Require().NoError(err)
	suite.Empty(ids)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteAll_EmptyStore_Succeeds() {
	suite.Require().NoError(suite.repository.DeleteAll(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllIDs_ReturnsSortedIDs() {
	ctx := context.Background()

	added := make([]kernel.UUID, 0, 3)
	for range 3 {
		added = append(added, suite.addOrder().ID())
	}

	ids, err := suite.repository.GetAllIDs(ctx)
	suite.Require().NoError(err)
	suite.Len(ids, len(added))

	for i := range len(ids) - 1 {
		suite.Less(ids[i].String(), ids[i+1].String())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/customerrepo"
	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

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

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()

	testCustomer := suite.createTestCustomer("ada@example.com")
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()

	err := suite.repository.Add(ctx, testCustomer)
	suite.Require().NoError(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_UnconstructedCustomer_Rejected() {
	err := suite.repository.Add(context.Background(), &customer.Customer{})

	suite.Require().ErrorIs(err, customer.ErrCustomerIsNotConstructed)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_ExistingCustomer_RoundTrips() {
	ctx := context.Background()

	original, err := customer.RestoreCustomer(
		kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "+15551234567", "cus_123")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(original))
	suite.Equal("Ada Lovelace", retrieved.Name())
	suite.Equal("ada@example.com", retrieved.Email())
	suite.Equal("+15551234567", retrieved.Phone())
	suite.Equal("cus_123", retrieved.PaymentProviderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistentCustomer_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_FindsCustomer() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.addCustomer(ctx, "ada@example.com")
	grace := suite.addCustomer(ctx, "grace@example.com")

	retrieved, err := suite.repository.GetByEmail(ctx, "grace@example.com")
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(grace))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFoundError() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@example.com")

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_EmptyEmail_ReturnsError() {
	_, err := suite.repository.GetByEmail(context.Background(), "")

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsProviderLink() {
	ctx := context.Background()

	testCustomer := suite.createTestCustomer("ada@example.com")
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testCustomer))

	suite.Require().NoError(testCustomer.LinkPaymentProvider("cus_456"))
	suite.Require().NoError(suite.repository.Update(ctx, testCustomer))

	retrieved, err := suite.repository.Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal("cus_456", retrieved.PaymentProviderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_NonExistentCustomer_ReturnsError() {
	err := suite.repository.Update(context.Background(), suite.createTestCustomer("ada@example.com"))

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer(email string) *customer.Customer {
	testCustomer, err := customer.NewCustomer(kernel.NewUUID(), "Ada Lovelace", email)
	suite.Require().NoError(err)
	return testCustomer
}

func (suite *CustomerRepositoryIntegrationTestSuite) addCustomer(ctx context.Context, email string) *customer.Customer {
	testCustomer := suite.createTestCustomer(email)
	suite.Require().NoError(suite.repository.Add(ctx, testCustomer))
	return testCustomer
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/core/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveBulkOrderRequest(ctx context.Context, req domain.BulkOrderRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockOrderRepository) FindBulkOrderRequestByID(ctx context.Context, requestID string) (*domain.BulkOrderRequest, error) {
	args := m.Called(ctx, requestID)
	var req *domain.BulkOrderRequest
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.BulkOrderRequest)
	}
	return req, args.Error(1)
}

func (m *MockOrderRepository) ListBulkOrderRequests(ctx context.Context, status domain.BulkOrderStatus, params portsrepo.ListParams) ([]domain.BulkOrderRequest, error) {
	args := m.Called(ctx, status, params)
	var reqs []domain.BulkOrderRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.BulkOrderRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockOrderRepository) UpdateBulkOrderStatus(ctx context.Context, requestID string, status domain.BulkOrderStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, requestID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	service       portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo)
}

func (suite *OrderServiceTestSuite) TestCreateBulkOrderRequest_StartsNew() {
	ctx := context.Background()
	req := dto.CreateBulkOrderRequest{
		Name:      "School Librarian",
		Email:     "library@example.org",
		BookTitle: "A Walk Through the Hills",
		Quantity:  50,
	}

	suite.mockOrderRepo.On("SaveBulkOrderRequest", ctx, mock.MatchedBy(func(r domain.BulkOrderRequest) bool {
		return r.Status == domain.BulkOrderStatusNew && r.Quantity == 50 && r.RequestID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateBulkOrderRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.BulkOrderStatusNew, created.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_ForwardTransition() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()
	existing := &domain.BulkOrderRequest{RequestID: requestID, Status: domain.BulkOrderStatusNew}

	suite.mockOrderRepo.On("FindBulkOrderRequestByID", ctx, requestID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateBulkOrderStatus", ctx, requestID, domain.BulkOrderStatusContacted, adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateStatus(ctx, requestID, domain.BulkOrderStatusContacted, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.BulkOrderStatusContacted, updated.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_RejectsBackwardTransition() {
	ctx := context.Background()
	requestID := uuid.NewString()
	existing := &domain.BulkOrderRequest{RequestID: requestID, Status: domain.BulkOrderStatusClosed}

	suite.mockOrderRepo.On("FindBulkOrderRequestByID", ctx, requestID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateStatus(ctx, requestID, domain.BulkOrderStatusContacted, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateBulkOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_ClosingDirectlyAllowed() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()
	existing := &domain.BulkOrderRequest{RequestID: requestID, Status: domain.BulkOrderStatusNew}

	suite.mockOrderRepo.On("FindBulkOrderRequestByID", ctx, requestID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateBulkOrderStatus", ctx, requestID, domain.BulkOrderStatusClosed, adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateStatus(ctx, requestID, domain.BulkOrderStatusClosed, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.BulkOrderStatusClosed, updated.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListBulkOrderRequests_InvalidToken() {
	ctx := context.Background()
	req := dto.ListBulkOrdersRequest{NextToken: "not-a-token"}

	_, _, err := suite.service.ListBulkOrderRequests(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListBulkOrderRequests", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

package httphandler_test

import (
	"context"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsManager struct {
	mock.Mock
}

func (m *MockProductsManager) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsManager) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsManager) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Product)
	return v, args.Error(1)
}

func (m *MockProductsManager) UpdateProduct(
	ctx context.Context, id string, patch domain.ProductPatch,
) (domain.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsManager) DeleteProduct(
	ctx context.Context, id string,
) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductsManager) GetProductRating(
	ctx context.Context, productID string,
) (domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.RatingSummary), args.Error(1)
}

type MockOrdersManager struct {
	mock.Mock
}

func (m *MockOrdersManager) PlaceOrder(
	ctx context.Context, cmd domain.PlaceOrder,
) (domain.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersManager) GetOrder(
	ctx context.Context, id string,
) (domain.OrderView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.OrderView), args.Error(1)
}

func (m *MockOrdersManager) ListOrders(
	ctx context.Context,
) ([]domain.OrderView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.OrderView)
	return v, args.Error(1)
}

func (m *MockOrdersManager) UpdateOrder(
	ctx context.Context, id string, patch domain.OrderPatch,
) (domain.Order, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersManager) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewsManager struct {
	mock.Mock
}

func (m *MockReviewsManager) PostReview(
	ctx context.Context, r domain.Review,
) (domain.Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewsManager) GetReview(
	ctx context.Context, id string,
) (domain.ReviewView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReviewView), args.Error(1)
}

func (m *MockReviewsManager) ListReviews(
	ctx context.Context,
) ([]domain.ReviewView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.ReviewView)
	return v, args.Error(1)
}

func (m *MockReviewsManager) ListProductReviews(
	ctx context.Context, productID string,
) ([]domain.ReviewView, error) {
	args := m.Called(ctx, productID)
	v, _ := args.Get(0).([]domain.ReviewView)
	return v, args.Error(1)
}

func (m *MockReviewsManager) UpdateReview(
	ctx context.Context, id string, patch domain.ReviewPatch,
) (domain.Review, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewsManager) DeleteReview(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCatalogReader) ListCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Category)
	return v, args.Error(1)
}

func (m *MockCatalogReader) GetCustomer(
	ctx context.Context, id string,
) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *MockCatalogReader) ListCustomers(
	ctx context.Context,
) ([]domain.Customer, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Customer)
	return v, args.Error(1)
}

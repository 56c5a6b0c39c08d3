package service_test

import (
	"context"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsStorage struct {
	mock.Mock
}

func (m *MockProductsStorage) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsStorage) ReadProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsStorage) ReadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Product)
	return v, args.Error(1)
}

func (m *MockProductsStorage) ReadProductsByIDs(
	ctx context.Context, ids []string, p domain.Projection,
) ([]domain.Product, error) {
	args := m.Called(ctx, ids, p)
	v, _ := args.Get(0).([]domain.Product)
	return v, args.Error(1)
}

func (m *MockProductsStorage) UpdateProduct(
	ctx context.Context, id string, patch domain.ProductPatch,
) (domain.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsStorage) DeleteProduct(
	ctx context.Context, id string,
) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrdersStorage struct {
	mock.Mock
}

func (m *MockOrdersStorage) CreateOrder(
	ctx context.Context, o domain.Order,
) (domain.Order, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersStorage) ReadOrder(
	ctx context.Context, id string,
) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersStorage) ReadOrders(
	ctx context.Context,
) ([]domain.Order, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Order)
	return v, args.Error(1)
}

func (m *MockOrdersStorage) UpdateOrder(
	ctx context.Context, id string, patch domain.OrderPatch,
) (domain.Order, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrdersStorage) DeleteOrder(
	ctx context.Context, id string,
) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

type MockReviewsStorage struct {
	mock.Mock
}

func (m *MockReviewsStorage) CreateReview(
	ctx context.Context, r domain.Review,
) (domain.Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewsStorage) ReadReview(
	ctx context.Context, id string,
) (domain.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewsStorage) ReadReviews(
	ctx context.Context, f domain.ReviewFilter,
) ([]domain.Review, error) {
	args := m.Called(ctx, f)
	v, _ := args.Get(0).([]domain.Review)
	return v, args.Error(1)
}

func (m *MockReviewsStorage) UpdateReview(
	ctx context.Context, id string, patch domain.ReviewPatch,
) (domain.Review, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewsStorage) DeleteReview(
	ctx context.Context, id string,
) (domain.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Review), args.Error(1)
}

type MockCustomersStorage struct {
	mock.Mock
}

func (m *MockCustomersStorage) ReadCustomer(
	ctx context.Context, id string,
) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *MockCustomersStorage) ReadCustomers(
	ctx context.Context,
) ([]domain.Customer, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Customer)
	return v, args.Error(1)
}

func (m *MockCustomersStorage) ReadCustomersByIDs(
	ctx context.Context, ids []string, p domain.Projection,
) ([]domain.Customer, error) {
	args := m.Called(ctx, ids, p)
	v, _ := args.Get(0).([]domain.Customer)
	return v, args.Error(1)
}

type MockCategoriesStorage struct {
	mock.Mock
}

func (m *MockCategoriesStorage) ReadCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesStorage) ReadCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Category)
	return v, args.Error(1)
}

type MockRatingsReader struct {
	mock.Mock
}

func (m *MockRatingsReader) ReadRating(
	ctx context.Context, productID string,
) (domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.RatingSummary), args.Error(1)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderEvent(
	ctx context.Context, evt domain.OrderEvent,
) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockReviewEventsProducer struct {
	mock.Mock
}

func (m *MockReviewEventsProducer) ProduceReviewEvent(
	ctx context.Context, evt domain.ReviewEvent,
) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type deps struct {
	products     *MockProductsStorage
	orders       *MockOrdersStorage
	reviews      *MockReviewsStorage
	customers    *MockCustomersStorage
	categories   *MockCategoriesStorage
	ratings      *MockRatingsReader
	orderEvents  *MockOrderEventsProducer
	reviewEvents *MockReviewEventsProducer
}

func newDeps() deps {
	return deps{
		products:     new(MockProductsStorage),
		orders:       new(MockOrdersStorage),
		reviews:      new(MockReviewsStorage),
		customers:    new(MockCustomersStorage),
		categories:   new(MockCategoriesStorage),
		ratings:      new(MockRatingsReader),
		orderEvents:  new(MockOrderEventsProducer),
		reviewEvents: new(MockReviewEventsProducer),
	}
}

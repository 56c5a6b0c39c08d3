package port

import (
	"context"

	"github.com/niksmo/emporium/internal/core/domain"
)

// Inbound ports, implemented by the core service.

type ProductsManager interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(context.Context) ([]domain.Product, error)
	UpdateProduct(
		ctx context.Context, id string, patch domain.ProductPatch,
	) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProductRating(
		ctx context.Context, productID string,
	) (domain.RatingSummary, error)
}

type OrdersManager interface {
	PlaceOrder(context.Context, domain.PlaceOrder) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.OrderView, error)
	ListOrders(context.Context) ([]domain.OrderView, error)
	UpdateOrder(
		ctx context.Context, id string, patch domain.OrderPatch,
	) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type ReviewsManager interface {
	PostReview(context.Context, domain.Review) (domain.Review, error)
	GetReview(ctx context.Context, id string) (domain.ReviewView, error)
	ListReviews(context.Context) ([]domain.ReviewView, error)
	ListProductReviews(
		ctx context.Context, productID string,
	) ([]domain.ReviewView, error)
	UpdateReview(
		ctx context.Context, id string, patch domain.ReviewPatch,
	) (domain.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type CatalogReader interface {
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	ListCategories(context.Context) ([]domain.Category, error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	ListCustomers(context.Context) ([]domain.Customer, error)
}

// Outbound ports, implemented by adapters.

type ProductsStorage interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	ReadProduct(ctx context.Context, id string) (domain.Product, error)
	ReadProducts(context.Context) ([]domain.Product, error)

	// ReadProductsByIDs returns the products that exist among ids,
	// loading only the projected fields. Missing ids are skipped.
	ReadProductsByIDs(
		ctx context.Context, ids []string, p domain.Projection,
	) ([]domain.Product, error)
	UpdateProduct(
		ctx context.Context, id string, patch domain.ProductPatch,
	) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type OrdersStorage interface {
	CreateOrder(context.Context, domain.Order) (domain.Order, error)
	ReadOrder(ctx context.Context, id string) (domain.Order, error)
	ReadOrders(context.Context) ([]domain.Order, error)
	UpdateOrder(
		ctx context.Context, id string, patch domain.OrderPatch,
	) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (domain.Order, error)
}

type ReviewsStorage interface {
	CreateReview(context.Context, domain.Review) (domain.Review, error)
	ReadReview(ctx context.Context, id string) (domain.Review, error)
	ReadReviews(context.Context, domain.ReviewFilter) ([]domain.Review, error)
	UpdateReview(
		ctx context.Context, id string, patch domain.ReviewPatch,
	) (domain.Review, error)
	DeleteReview(ctx context.Context, id string) (domain.Review, error)
}

type CustomersStorage interface {
	ReadCustomer(ctx context.Context, id string) (domain.Customer, error)
	ReadCustomers(context.Context) ([]domain.Customer, error)
	ReadCustomersByIDs(
		ctx context.Context, ids []string, p domain.Projection,
	) ([]domain.Customer, error)
}

type CategoriesStorage interface {
	ReadCategory(ctx context.Context, id string) (domain.Category, error)
	ReadCategories(context.Context) ([]domain.Category, error)
}

type RatingsReader interface {
	ReadRating(
		ctx context.Context, productID string,
	) (domain.RatingSummary, error)
}

type OrderEventsProducer interface {
	ProduceOrderEvent(context.Context, domain.OrderEvent) error
}

type ReviewEventsProducer interface {
	ProduceReviewEvent(context.Context, domain.ReviewEvent) error
}

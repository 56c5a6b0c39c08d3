package main

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

type categoryCreator interface {
	CreateCategory(context.Context, domain.Category) (domain.Category, error)
}

type productCreator interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
}

type customerCreator interface {
	CreateCustomer(context.Context, domain.Customer) (domain.Customer, error)
}

type orderCreator interface {
	CreateOrder(context.Context, domain.Order) (domain.Order, error)
}

type reviewCreator interface {
	CreateReview(context.Context, domain.Review) (domain.Review, error)
}

type seeder struct {
	categories categoryCreator
	products   productCreator
	customers  customerCreator
	orders     orderCreator
	reviews    reviewCreator
	hash       func(password string) (string, error)
}

// summary counts what was written.
type summary struct {
	Categories, Products, Customers, Orders, Reviews int
}

func bcryptHash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s seeder) seed(ctx context.Context) (summary, error) {
	const op = "seeder.seed"
	var sum summary

	categories, err := createAll(ctx, s.categories.CreateCategory, []domain.Category{
		{Name: "Shirts", Description: "All types of shirts"},
		{Name: "Pants", Description: "Trousers, jeans, and more"},
		{Name: "Accessories", Description: "Belts, ties, and other accessories"},
	})
	if err != nil {
		return sum, fmt.Errorf("%s: categories: %w", op, err)
	}
	sum.Categories = len(categories)

	products, err := createAll(ctx, s.products.CreateProduct, []domain.Product{
		{
			Name:        "Classic White Shirt",
			SKU:         "CWS001",
			Description: "A timeless white shirt for any occasion",
			Price:       4999,
			CategoryID:  categories[0].ID,
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White"},
			InStock:     true,
		},
		{
			Name:        "Blue Denim Jeans",
			SKU:         "BDJ001",
			Description: "Comfortable and stylish blue jeans",
			Price:       7999,
			CategoryID:  categories[1].ID,
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Blue"},
			InStock:     true,
		},
		{
			Name:        "Leather Belt",
			SKU:         "LB001",
			Description: "Classic brown leather belt",
			Price:       2999,
			CategoryID:  categories[2].ID,
			Sizes:       []string{"One Size"},
			Colors:      []string{"Brown"},
			InStock:     true,
		},
	})
	if err != nil {
		return sum, fmt.Errorf("%s: products: %w", op, err)
	}
	sum.Products = len(products)

	customerSeeds := []domain.Customer{
		{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "password123",
			Address: domain.Address{
				Street: "123 Main St", City: "Anytown", State: "CA",
				ZipCode: "12345", Country: "USA",
			},
		},
		{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
			Password:  "password456",
			Address: domain.Address{
				Street: "456 Elm St", City: "Otherville", State: "NY",
				ZipCode: "67890", Country: "USA",
			},
		},
	}
	for i := range customerSeeds {
		customerSeeds[i].Password, err = s.hash(customerSeeds[i].Password)
		if err != nil {
			return sum, fmt.Errorf("%s: hash password: %w", op, err)
		}
	}
	customers, err := createAll(ctx, s.customers.CreateCustomer, customerSeeds)
	if err != nil {
		return sum, fmt.Errorf("%s: customers: %w", op, err)
	}
	sum.Customers = len(customers)

	orders, err := createAll(ctx, s.orders.CreateOrder, []domain.Order{
		orderOf(customers[0], domain.OrderPending, products[0], products[2]),
		orderOf(customers[1], domain.OrderShipped, products[1]),
	})
	if err != nil {
		return sum, fmt.Errorf("%s: orders: %w", op, err)
	}
	sum.Orders = len(orders)

	reviews, err := createAll(ctx, s.reviews.CreateReview, []domain.Review{
		{
			ProductID:  products[0].ID,
			CustomerID: customers[0].ID,
			Rating:     5,
			Comment:    "Great shirt, very comfortable!",
		},
		{
			ProductID:  products[1].ID,
			CustomerID: customers[1].ID,
			Rating:     4,
			Comment:    "Nice jeans, but a bit tight.",
		},
	})
	if err != nil {
		return sum, fmt.Errorf("%s: reviews: %w", op, err)
	}
	sum.Reviews = len(reviews)

	return sum, nil
}

// orderOf builds an order of one unit per product shipped to the
// customer's address.
func orderOf(
	c domain.Customer, status domain.OrderStatus, products ...domain.Product,
) domain.Order {
	o := domain.Order{
		CustomerID:      c.ID,
		Status:          status,
		ShippingAddress: c.Address,
	}
	for _, p := range products {
		o.Items = append(o.Items, domain.OrderItem{
			ProductID: p.ID, Quantity: 1, Price: p.Price,
		})
		o.Total += p.Price
	}
	return o
}

func createAll[T any](
	ctx context.Context, create func(context.Context, T) (T, error), vs []T,
) ([]T, error) {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		created, err := create(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

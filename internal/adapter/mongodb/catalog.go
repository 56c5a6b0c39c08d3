package mongodb

import (
	"context"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ port.CategoriesStorage = (*CategoriesRepository)(nil)
	_ port.CustomersStorage  = (*CustomersRepository)(nil)
)

type CategoriesRepository struct {
	coll *mongo.Collection
}

func NewCategoriesRepository(db *mongo.Database) CategoriesRepository {
	return CategoriesRepository{db.Collection(categoriesCollection)}
}

// CreateCategory is used by the seeder; the API never writes categories.
func (r CategoriesRepository) CreateCategory(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	const op = "CategoriesRepository.CreateCategory"

	if err := c.Validate(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	parent, err := optionalRef("parentCategory", c.ParentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	doc := categoryDoc{
		Name:           c.Name,
		Description:    c.Description,
		ParentCategory: parent,
		CreatedAt:      now(),
	}
	doc.UpdatedAt = doc.CreatedAt

	doc.ID, err = insertOne(ctx, r.coll, doc)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

func (r CategoriesRepository) ReadCategory(
	ctx context.Context, id string,
) (domain.Category, error) {
	const op = "CategoriesRepository.ReadCategory"

	doc, err := findOne[categoryDoc](ctx, r.coll, domain.EntityCategory, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

func (r CategoriesRepository) ReadCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.ReadCategories"

	docs, err := findAll[categoryDoc](
		ctx, r.coll, bson.D{}, options.Find().SetSort(byInsertion),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, len(docs))
	for i, doc := range docs {
		cs[i] = doc.toDomain()
	}
	return cs, nil
}

type CustomersRepository struct {
	coll *mongo.Collection
}

func NewCustomersRepository(db *mongo.Database) CustomersRepository {
	return CustomersRepository{db.Collection(customersCollection)}
}

// CreateCustomer stores c as given. Password is expected to be hashed
// by the caller.
func (r CustomersRepository) CreateCustomer(
	ctx context.Context, c domain.Customer,
) (domain.Customer, error) {
	const op = "CustomersRepository.CreateCustomer"

	if err := c.Validate(); err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	doc := customerDoc{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Password:  c.Password,
		Address:   toAddressDoc(c.Address),
		CreatedAt: now(),
	}
	doc.UpdatedAt = doc.CreatedAt

	var err error
	doc.ID, err = insertOne(ctx, r.coll, doc)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, duplicate(err, "email"))
	}
	return doc.toDomain(), nil
}

func (r CustomersRepository) ReadCustomer(
	ctx context.Context, id string,
) (domain.Customer, error) {
	const op = "CustomersRepository.ReadCustomer"

	doc, err := findOne[customerDoc](ctx, r.coll, domain.EntityCustomer, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toDomain(), nil
}

func (r CustomersRepository) ReadCustomers(
	ctx context.Context,
) ([]domain.Customer, error) {
	const op = "CustomersRepository.ReadCustomers"

	docs, err := findAll[customerDoc](
		ctx, r.coll, bson.D{}, options.Find().SetSort(byInsertion),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customersToDomain(docs), nil
}

func (r CustomersRepository) ReadCustomersByIDs(
	ctx context.Context, ids []string, p domain.Projection,
) ([]domain.Customer, error) {
	const op = "CustomersRepository.ReadCustomersByIDs"

	docs, err := findByIDs[customerDoc](ctx, r.coll, ids, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customersToDomain(docs), nil
}

func customersToDomain(docs []customerDoc) []domain.Customer {
	cs := make([]domain.Customer, len(docs))
	for i, doc := range docs {
		cs[i] = doc.toDomain()
	}
	return cs
}

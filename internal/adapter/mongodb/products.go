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

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	coll *mongo.Collection
}

func NewProductsRepository(db *mongo.Database) ProductsRepository {
	return ProductsRepository{db.Collection(productsCollection)}
}

func (r ProductsRepository) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.CreateProduct"

	doc, err := toProductDoc(p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	doc.ID, err = insertOne(ctx, r.coll, doc)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, duplicate(err, "sku"))
	}

	created, err := doc.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r ProductsRepository) ReadProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "ProductsRepository.ReadProduct"

	doc, err := findOne[productDoc](ctx, r.coll, domain.EntityProduct, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := doc.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) ReadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ReadProducts"

	docs, err := findAll[productDoc](
		ctx, r.coll, bson.D{}, options.Find().SetSort(byInsertion),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := productsToDomain(docs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) ReadProductsByIDs(
	ctx context.Context, ids []string, p domain.Projection,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ReadProductsByIDs"

	docs, err := findByIDs[productDoc](ctx, r.coll, ids, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := productsToDomain(docs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) UpdateProduct(
	ctx context.Context, id string, patch domain.ProductPatch,
) (domain.Product, error) {
	const op = "ProductsRepository.UpdateProduct"

	set, err := productSet(patch)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	doc, err := updateOne[productDoc](ctx, r.coll, domain.EntityProduct, id, set)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, duplicate(err, "sku"))
	}

	updated, err := doc.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r ProductsRepository) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductsRepository.DeleteProduct"

	_, err := deleteOne[productDoc](ctx, r.coll, domain.EntityProduct, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func productSet(p domain.ProductPatch) (bson.D, error) {
	var set bson.D
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.SKU != nil {
		set = append(set, bson.E{Key: "sku", Value: *p.SKU})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: toDecimal128(*p.Price)})
	}
	if p.CategoryID != nil {
		category, err := optionalRef("category", *p.CategoryID)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "category", Value: category})
	}
	if p.Sizes != nil {
		set = append(set, bson.E{Key: "size", Value: nonNil(*p.Sizes)})
	}
	if p.Colors != nil {
		set = append(set, bson.E{Key: "color", Value: nonNil(*p.Colors)})
	}
	if p.InStock != nil {
		set = append(set, bson.E{Key: "inStock", Value: *p.InStock})
	}
	if p.Images != nil {
		set = append(set, bson.E{Key: "images", Value: nonNil(*p.Images)})
	}
	return set, nil
}

func productsToDomain(docs []productDoc) ([]domain.Product, error) {
	ps := make([]domain.Product, len(docs))
	for i, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/niksmo/emporium/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	coll *mongo.Collection
}

func NewOrdersRepository(db *mongo.Database) OrdersRepository {
	return OrdersRepository{db.Collection(ordersCollection)}
}

func (r OrdersRepository) CreateOrder(
	ctx context.Context, o domain.Order,
) (domain.Order, error) {
	const op = "OrdersRepository.CreateOrder"

	doc, err := toOrderDoc(o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	doc.ID, err = insertOne(ctx, r.coll, doc)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := doc.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r OrdersRepository) ReadOrder(
	ctx context.Context, id string,
) (domain.Order, error) {
	const op = "OrdersRepository.ReadOrder"

	doc, err := findOne[orderDoc](ctx, r.coll, domain.EntityOrder, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	o, err := doc.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func (r OrdersRepository) ReadOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrdersRepository.ReadOrders"

	docs, err := findAll[orderDoc](
		ctx, r.coll, bson.D{}, options.Find().SetSort(byInsertion),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]domain.Order, len(docs))
	for i, doc := range docs {
		if orders[i], err = doc.toDomain(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return orders, nil
}

// UpdateOrder applies patch only while the stored status may still move
// to the patched one, so concurrent updates cannot move an order back.
func (r OrdersRepository) UpdateOrder(
	ctx context.Context, id string, patch domain.OrderPatch,
) (domain.Order, error) {
	const op = "OrdersRepository.UpdateOrder"

	var set, cond bson.D
	if patch.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*patch.Status)})
		cond = bson.D{{Key: "status", Value: bson.D{
			{Key: "$in", Value: statusStrings(patch.Status.Predecessors())},
		}}}
	}
	if patch.ShippingAddress != nil {
		set = append(set, bson.E{
			Key: "shippingAddress", Value: toAddressDoc(*patch.ShippingAddress),
		})
	}

	doc, err := updateOneWhere[orderDoc](
		ctx, r.coll, domain.EntityOrder, id, cond, set,
	)
	if errors.Is(err, domain.ErrNotFound) && cond != nil {
		err = r.statusConflict(ctx, id, *patch.Status)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := doc.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// statusConflict tells a missing order from one whose status has already
// moved past next.
func (r OrdersRepository) statusConflict(
	ctx context.Context, id string, next domain.OrderStatus,
) error {
	doc, err := findOne[orderDoc](ctx, r.coll, domain.EntityOrder, id)
	if err != nil {
		return err
	}
	return domain.StatusMoveError(domain.OrderStatus(doc.Status), next)
}

func statusStrings(statuses []domain.OrderStatus) bson.A {
	a := make(bson.A, len(statuses))
	for i, s := range statuses {
		a[i] = string(s)
	}
	return a
}

func (r OrdersRepository) DeleteOrder(
	ctx context.Context, id string,
) (domain.Order, error) {
	const op = "OrdersRepository.DeleteOrder"

	doc, err := deleteOne[orderDoc](ctx, r.coll, domain.EntityOrder, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := doc.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return deleted, nil
}

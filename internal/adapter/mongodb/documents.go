package mongodb

import (
	"math/big"
	"time"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type addressDoc struct {
	Street  string `bson:"street,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty"`
	Country string `bson:"country,omitempty"`
}

func toAddressDoc(a domain.Address) addressDoc {
	return addressDoc(a)
}

func (d addressDoc) toDomain() domain.Address {
	return domain.Address(d)
}

type categoryDoc struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Name           string              `bson:"name"`
	Description    string              `bson:"description,omitempty"`
	ParentCategory *primitive.ObjectID `bson:"parentCategory,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}

func (d categoryDoc) toDomain() domain.Category {
	return domain.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ParentID:    refHex(d.ParentCategory),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type productDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	SKU         string               `bson:"sku"`
	Description string               `bson:"description,omitempty"`
	Price       primitive.Decimal128 `bson:"price"`
	Category    *primitive.ObjectID  `bson:"category,omitempty"`
	Sizes       []string             `bson:"size"`
	Colors      []string             `bson:"color"`
	InStock     bool                 `bson:"inStock"`
	Images      []string             `bson:"images"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func toProductDoc(p domain.Product) (productDoc, error) {
	category, err := optionalRef("category", p.CategoryID)
	if err != nil {
		return productDoc{}, err
	}
	return productDoc{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       toDecimal128(p.Price),
		Category:    category,
		Sizes:       nonNil(p.Sizes),
		Colors:      nonNil(p.Colors),
		InStock:     p.InStock,
		Images:      nonNil(p.Images),
	}, nil
}

func (d productDoc) toDomain() (domain.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		SKU:         d.SKU,
		Description: d.Description,
		Price:       price,
		CategoryID:  refHex(d.Category),
		Sizes:       d.Sizes,
		Colors:      d.Colors,
		InStock:     d.InStock,
		Images:      d.Images,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

type customerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Address   addressDoc         `bson:"address"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d customerDoc) toDomain() domain.Customer {
	return domain.Customer{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Password:  d.Password,
		Address:   d.Address.toDomain(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type orderItemDoc struct {
	Product  primitive.ObjectID   `bson:"product"`
	Quantity int                  `bson:"quantity"`
	Price    primitive.Decimal128 `bson:"price"`
}

type orderDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Customer        primitive.ObjectID   `bson:"customer"`
	Products        []orderItemDoc       `bson:"products"`
	TotalAmount     primitive.Decimal128 `bson:"totalAmount"`
	Status          string               `bson:"status"`
	ShippingAddress addressDoc           `bson:"shippingAddress"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

func toOrderDoc(o domain.Order) (orderDoc, error) {
	customer, err := requiredRef("customer", o.CustomerID)
	if err != nil {
		return orderDoc{}, err
	}

	items := make([]orderItemDoc, len(o.Items))
	for i, item := range o.Items {
		product, err := requiredRef("product", item.ProductID)
		if err != nil {
			return orderDoc{}, err
		}
		items[i] = orderItemDoc{
			Product:  product,
			Quantity: item.Quantity,
			Price:    toDecimal128(item.Price),
		}
	}

	return orderDoc{
		Customer:        customer,
		Products:        items,
		TotalAmount:     toDecimal128(o.Total),
		Status:          string(o.Status),
		ShippingAddress: toAddressDoc(o.ShippingAddress),
	}, nil
}

func (d orderDoc) toDomain() (domain.Order, error) {
	total, err := fromDecimal128(d.TotalAmount)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, len(d.Products))
	for i, item := range d.Products {
		price, err := fromDecimal128(item.Price)
		if err != nil {
			return domain.Order{}, err
		}
		items[i] = domain.OrderItem{
			ProductID: item.Product.Hex(),
			Quantity:  item.Quantity,
			Price:     price,
		}
	}

	return domain.Order{
		ID:              d.ID.Hex(),
		CustomerID:      d.Customer.Hex(),
		Items:           items,
		Total:           total,
		Status:          domain.OrderStatus(d.Status),
		ShippingAddress: d.ShippingAddress.toDomain(),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Product   primitive.ObjectID `bson:"product"`
	Customer  primitive.ObjectID `bson:"customer"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func toReviewDoc(r domain.Review) (reviewDoc, error) {
	product, err := requiredRef("product", r.ProductID)
	if err != nil {
		return reviewDoc{}, err
	}
	customer, err := requiredRef("customer", r.CustomerID)
	if err != nil {
		return reviewDoc{}, err
	}
	return reviewDoc{
		Product:  product,
		Customer: customer,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}, nil
}

func (d reviewDoc) toDomain() domain.Review {
	return domain.Review{
		ID:         d.ID.Hex(),
		ProductID:  d.Product.Hex(),
		CustomerID: d.Customer.Hex(),
		Rating:     d.Rating,
		Comment:    d.Comment,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// parseID reports false for ids that can never match a document.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func parseIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := parseID(id); ok {
			oids = append(oids, oid)
		}
	}
	return oids
}

func requiredRef(field, id string) (primitive.ObjectID, error) {
	oid, ok := parseID(id)
	if !ok {
		return primitive.NilObjectID, domain.ValidationError{
			Field: field, Reason: "must be a valid id",
		}
	}
	return oid, nil
}

func optionalRef(field, id string) (*primitive.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := requiredRef(field, id)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func refHex(oid *primitive.ObjectID) string {
	if oid == nil {
		return ""
	}
	return oid.Hex()
}

func toDecimal128(m domain.Money) primitive.Decimal128 {
	d, _ := primitive.ParseDecimal128FromBigInt(big.NewInt(int64(m)), -2)
	return d
}

func fromDecimal128(d primitive.Decimal128) (domain.Money, error) {
	bi, exp, err := d.BigInt()
	if err != nil {
		return 0, err
	}
	if bi.Sign() == 0 {
		return 0, nil
	}
	return domain.MoneyFromDecimal(decimal.NewFromBigInt(bi, int32(exp)))
}

// projection returns nil for an empty p, which loads whole documents.
func projection(p domain.Projection) bson.D {
	if len(p) == 0 {
		return nil
	}
	fields := make(bson.D, len(p))
	for i, f := range p {
		fields[i] = bson.E{Key: f, Value: 1}
	}
	return fields
}

func nonNil(vs []string) []string {
	if vs == nil {
		return []string{}
	}
	return vs
}

// now is truncated to the precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

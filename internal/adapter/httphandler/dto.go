package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		return malformedJSONError{err}
	}
	return nil
}

func moneyJSON(m domain.Money) json.Number {
	return json.Number(m.String())
}

func toMoney(field string, d decimal.Decimal) (domain.Money, error) {
	m, err := domain.MoneyFromDecimal(d)
	if err != nil {
		return 0, domain.ValidationError{
			Field: field, Reason: "must have at most two decimal places",
		}
	}
	return m, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a addressDTO) toDomain() domain.Address {
	return domain.Address(a)
}

func addressFromDomain(a domain.Address) addressDTO {
	return addressDTO(a)
}

// unresolvedRef stands in for a referenced entity that no longer exists.
type unresolvedRef struct {
	ID         string `json:"id"`
	Unresolved bool   `json:"unresolved"`
}

func renderRef[T, R any](ref domain.Resolved[T], render func(T) R) any {
	if ref.Unresolved() {
		return unresolvedRef{ID: ref.ID, Unresolved: true}
	}
	return render(*ref.Entity)
}

// Products

type productRequest struct {
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Size        []string         `json:"size"`
	Color       []string         `json:"color"`
	InStock     *bool            `json:"inStock"`
	Images      []string         `json:"images"`
}

func (p productRequest) toDomain() (domain.Product, error) {
	if p.Price == nil {
		return domain.Product{}, domain.ValidationError{
			Field: "price", Reason: "is required",
		}
	}
	price, err := toMoney("price", *p.Price)
	if err != nil {
		return domain.Product{}, err
	}
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	return domain.Product{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       price,
		CategoryID:  p.Category,
		Sizes:       p.Size,
		Colors:      p.Color,
		InStock:     inStock,
		Images:      p.Images,
	}, nil
}

type productPatchRequest struct {
	Name        *string          `json:"name"`
	SKU         *string          `json:"sku"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Size        *[]string        `json:"size"`
	Color       *[]string        `json:"color"`
	InStock     *bool            `json:"inStock"`
	Images      *[]string        `json:"images"`
}

func (p productPatchRequest) toDomain() (domain.ProductPatch, error) {
	patch := domain.ProductPatch{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		CategoryID:  p.Category,
		Sizes:       p.Size,
		Colors:      p.Color,
		InStock:     p.InStock,
		Images:      p.Images,
	}
	if p.Price != nil {
		price, err := toMoney("price", *p.Price)
		if err != nil {
			return domain.ProductPatch{}, err
		}
		patch.Price = &price
	}
	return patch, nil
}

type productResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category,omitempty"`
	Size        []string    `json:"size"`
	Color       []string    `json:"color"`
	InStock     bool        `json:"inStock"`
	Images      []string    `json:"images"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

func productFromDomain(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       moneyJSON(p.Price),
		Category:    p.CategoryID,
		Size:        nonNil(p.Sizes),
		Color:       nonNil(p.Colors),
		InStock:     p.InStock,
		Images:      nonNil(p.Images),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type productNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func productNameFromDomain(p domain.Product) productNameResponse {
	return productNameResponse{ID: p.ID, Name: p.Name}
}

type ratingResponse struct {
	ProductID string       `json:"productId"`
	Count     int64        `json:"count"`
	Average   *json.Number `json:"average"`
}

func ratingFromDomain(r domain.RatingSummary) ratingResponse {
	res := ratingResponse{ProductID: r.ProductID, Count: r.Count}
	if r.Count > 0 {
		avg := json.Number(
			decimal.NewFromInt(r.Sum).
				Div(decimal.NewFromInt(r.Count)).
				StringFixed(2),
		)
		res.Average = &avg
	}
	return res
}

// Orders

type orderLineRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	CustomerID      string             `json:"customerId"`
	Products        []orderLineRequest `json:"products"`
	TotalAmount     *decimal.Decimal   `json:"totalAmount"`
	ShippingAddress addressDTO         `json:"shippingAddress"`
}

func (o orderRequest) toDomain() (domain.PlaceOrder, error) {
	if o.TotalAmount == nil {
		return domain.PlaceOrder{}, domain.ValidationError{
			Field: "totalAmount", Reason: "is required",
		}
	}
	total, err := toMoney("totalAmount", *o.TotalAmount)
	if err != nil {
		return domain.PlaceOrder{}, err
	}
	lines := make([]domain.OrderLine, len(o.Products))
	for i, l := range o.Products {
		lines[i] = domain.OrderLine{ProductID: l.Product, Quantity: l.Quantity}
	}
	return domain.PlaceOrder{
		CustomerID:      o.CustomerID,
		Lines:           lines,
		ClaimedTotal:    total,
		ShippingAddress: o.ShippingAddress.toDomain(),
	}, nil
}

type orderPatchRequest struct {
	Status          *string     `json:"status"`
	ShippingAddress *addressDTO `json:"shippingAddress"`
}

func (o orderPatchRequest) toDomain() domain.OrderPatch {
	var patch domain.OrderPatch
	if o.Status != nil {
		status := domain.OrderStatus(*o.Status)
		patch.Status = &status
	}
	if o.ShippingAddress != nil {
		addr := o.ShippingAddress.toDomain()
		patch.ShippingAddress = &addr
	}
	return patch
}

type orderItemResponse struct {
	Product  any         `json:"product"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	Customer        any                 `json:"customer"`
	Products        []orderItemResponse `json:"products"`
	TotalAmount     json.Number         `json:"totalAmount"`
	Status          string              `json:"status"`
	ShippingAddress addressDTO          `json:"shippingAddress"`
	CreatedAt       time.Time           `json:"createdAt,omitzero"`
	UpdatedAt       time.Time           `json:"updatedAt,omitzero"`
}

// orderFromDomain renders references as plain ids.
func orderFromDomain(o domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    moneyJSON(item.Price),
		}
	}
	return orderResponse{
		ID:              o.ID,
		Customer:        o.CustomerID,
		Products:        items,
		TotalAmount:     moneyJSON(o.Total),
		Status:          string(o.Status),
		ShippingAddress: addressFromDomain(o.ShippingAddress),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// orderViewFromDomain replaces ids with the resolved entities, when present.
func orderViewFromDomain(v domain.OrderView) orderResponse {
	res := orderFromDomain(v.Order)
	res.Customer = renderRef(v.Customer, customerContactFromDomain)
	if len(v.Products) == len(res.Products) {
		for i, p := range v.Products {
			res.Products[i].Product = renderRef(p, productFromDomain)
		}
	}
	return res
}

// Reviews

type reviewRequest struct {
	Product  string `json:"product"`
	Customer string `json:"customer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (r reviewRequest) toDomain() domain.Review {
	return domain.Review{
		ProductID:  r.Product,
		CustomerID: r.Customer,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

type reviewPatchRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (r reviewPatchRequest) toDomain() domain.ReviewPatch {
	return domain.ReviewPatch{Rating: r.Rating, Comment: r.Comment}
}

type reviewResponse struct {
	ID        string    `json:"id"`
	Product   any       `json:"product"`
	Customer  any       `json:"customer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func reviewFromDomain(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Product:   r.ProductID,
		Customer:  r.CustomerID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func reviewViewFromDomain(v domain.ReviewView) reviewResponse {
	res := reviewFromDomain(v.Review)
	if v.Product != nil {
		res.Product = renderRef(*v.Product, productNameFromDomain)
	}
	res.Customer = renderRef(v.Customer, customerNameFromDomain)
	return res
}

// Catalog

type categoryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ParentCategory string    `json:"parentCategory,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
	UpdatedAt      time.Time `json:"updatedAt,omitzero"`
}

func categoryFromDomain(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		ParentCategory: c.ParentID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type customerResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Address   addressDTO `json:"address"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

func customerFromDomain(c domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   addressFromDomain(c.Address),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type customerContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func customerContactFromDomain(c domain.Customer) customerContactResponse {
	return customerContactResponse{
		ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email,
	}
}

type customerNameResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func customerNameFromDomain(c domain.Customer) customerNameResponse {
	return customerNameResponse{
		ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

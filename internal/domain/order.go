package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// Label returns the Arabic display label shown in the back-office.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusNew:
		return "جديد"
	case OrderStatusInProgress:
		return "قيد التنفيذ"
	case OrderStatusCompleted:
		return "مكتمل"
	}
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// OrderItem captures one product reference plus the price at the time
// the order was placed.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int32              `bson:"quantity" json:"quantity"`
}

// ShippingInfo is an optional free-form address block; every field is optional.
type ShippingInfo struct {
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer      string             `bson:"customer" json:"customer"`
	Items         []OrderItem        `bson:"items" json:"items"`
	ShippingInfo  *ShippingInfo      `bson:"shippingInfo,omitempty" json:"shippingInfo,omitempty"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	Total         float64            `bson:"total" json:"total"`
	Status        OrderStatus        `bson:"status" json:"status"`
	Date          string             `bson:"date" json:"date"`
	Version       int64              `bson:"version" json:"version"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CalculateTotal recomputes Total from the line items. The client-submitted
// total is never trusted; this is the single place the sum is produced.
func (o *Order) CalculateTotal() {
	o.Total = LineItemTotal(o.Items)
}

// LineItemTotal sums price×quantity over items. Empty input yields 0.
func LineItemTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// OrderPatch is a partial update to an order. Nil fields are left untouched
// by the merge; Date and CreatedAt are immutable and have no patch field.
type OrderPatch struct {
	Customer      *string
	Items         *[]OrderItem
	ShippingInfo  *ShippingInfo
	PaymentMethod *PaymentMethod
	Status        *OrderStatus
}

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	Customer string
	Status   OrderStatus
}

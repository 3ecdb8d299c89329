package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderState string

const (
	OrderStateOpen   OrderState = "open"
	OrderStateClosed OrderState = "closed"
)

type Order struct {
	OrderID     uint       `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID  uint       `gorm:"column:customer_id;not null;index" json:"customer_id" validate:"required"`
	DateCreated time.Time  `gorm:"column:date_created;not null" json:"date_created"`
	LastEdited  *time.Time `gorm:"column:last_edited" json:"last_edited,omitempty"`
	State       OrderState `gorm:"column:state;size:16;not null;default:open" json:"state" validate:"oneof=open closed"`

	Items []*OrderItem `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
}

func (Order) TableName() string { return "orders" }

func NewOrder(customer *Customer) *Order {
	o := &Order{State: OrderStateOpen, DateCreated: time.Now().UTC()}
	if customer != nil {
		o.CustomerID = customer.CustomerID
	}
	return o
}

func (o *Order) IdentityKey() uint { return o.OrderID }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.DateCreated.IsZero() {
		o.DateCreated = time.Now().UTC()
	}
	if o.State == "" {
		o.State = OrderStateOpen
	}
	return nil
}

// Close moves the order to its terminal state. Closed orders stay closed.
func (o *Order) Close() error {
	if o.State == OrderStateClosed {
		return fmt.Errorf("order %d is already closed", o.OrderID)
	}
	o.State = OrderStateClosed
	return nil
}

type OrderItem struct {
	OrderID            uint            `gorm:"column:order_id;primaryKey;autoIncrement:false" json:"order_id" validate:"required"`
	ProductID          uint            `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id" validate:"required"`
	ListPrice          decimal.Decimal `gorm:"column:list_price;type:decimal(18,2);not null" json:"list_price" validate:"gte=0"`
	Quantity           int             `gorm:"column:quantity;not null" json:"quantity" validate:"min=1"`
	DiscountPercentage decimal.Decimal `gorm:"column:discount_percentage;type:decimal(5,2);not null" json:"discount_percentage" validate:"gte=0,lte=100"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty" validate:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

// NewOrderItem prices a line at the product's current list price and discount.
func NewOrderItem(order *Order, product *Product, quantity int) *OrderItem {
	it := &OrderItem{Quantity: quantity}
	if order != nil {
		it.OrderID = order.OrderID
	}
	if product != nil {
		it.ProductID = product.ProductID
		it.ListPrice = product.ListPrice
		it.DiscountPercentage = product.DiscountPercentage
	}
	return it
}

func (it *OrderItem) IdentityKey() LineKey {
	return LineKey{ParentID: it.OrderID, ProductID: it.ProductID}
}
func (it *OrderItem) ParentKey() uint { return it.OrderID }

// Package store holds tagged record types used by the converter generator
// tests and as a worked example of the tags it understands.
package store

import (
	"errors"
	"time"
)

// Product represents an individual item available for sale.
// Prices are in cents to avoid floating-point errors.
type Product struct {
	ID          int64     `conv:"id"`
	SKU         string    `conv:"sku"`
	Name        string    `conv:"name"`
	Description string    `conv:"description"     default:""`
	PriceCents  int64     `conv:"price_cents"`
	Inventory   int       `conv:"inventory_count" default:"0"`
	CreatedAt   time.Time `conv:"created_at"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64   `conv:"id"`
	Email    string  `conv:"email"`
	FullName string  `conv:"full_name"`
	Address  *string `conv:"address"   default:"null"`
	IsActive bool    `conv:"is_active" default:"true"`
	password string
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `conv:"id"`
	CustomerID int64       `conv:"customer_id"`
	Status     OrderStatus `conv:"status"      default:"PENDING"`
	Items      []OrderItem `conv:"items"       default_factory:"NoItems"`
	TotalCents int64       `conv:"total_cents" default_self:"SumItems"`
	OrderedAt  time.Time   `conv:"ordered_at"`
	Token      string      `conv:"_token"      default:""`
	Audit      string      `conv:"-"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64  `conv:"product_id"`
	Name      string `conv:"name"`
	Quantity  int    `conv:"quantity"   default:"1"`
	UnitPrice int64  `conv:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// NoItems is the default item list of an Order.
func NoItems() []OrderItem {
	return []OrderItem{}
}

// SumItems is the default total of an Order.
func SumItems(o Order) int64 {
	var total int64
	for _, it := range o.Items {
		total += int64(it.Quantity) * it.UnitPrice
	}

	return total
}

// Validate rejects orders with a negative total.
func (o Order) Validate() error {
	if o.TotalCents < 0 {
		return errors.New("negative order total")
	}

	return nil
}

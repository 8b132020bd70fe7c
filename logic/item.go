package logic

import "github.com/shopspring/decimal"

// Item is one product line in a cart.
type Item struct {
	product   Product
	unitPrice decimal.Decimal
	quantity  int32
}

// NewItem returns an item for product. Callers are responsible for passing a
// positive quantity and a non-negative price.
func NewItem(product Product, unitPrice decimal.Decimal, quantity int32) *Item {
	return &Item{product: product, unitPrice: unitPrice, quantity: quantity}
}

func (i *Item) Product() Product {
	return i.product
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *Item) Quantity() int32 {
	return i.quantity
}

// LineTotal returns unit price × quantity.
func (i *Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt32(i.quantity))
}

func (i *Item) setUnitPrice(price decimal.Decimal) {
	i.unitPrice = price
}

func (i *Item) setQuantity(quantity int32) {
	i.quantity = quantity
}

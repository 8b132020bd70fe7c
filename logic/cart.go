package logic

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcart/common"
)

// Cart is a customer's shopping cart.
//
// Items keep the order in which their products were first added. The total is
// a running sum updated by every mutation rather than recomputed on read.
type Cart struct {
	root       uuid.UUID
	customerID string
	order      []string         // product IDs in insertion order
	items      map[string]*Item // productID -> item
	total      decimal.Decimal
	journal    *common.EventBook

	logger *zap.Logger
	now    func() time.Time
}

func newCart(customerID string, logger *zap.Logger, now func() time.Time) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	root := uuid.Nil
	if customerID != "" {
		root = common.CartRoot(customerID)
	}
	return &Cart{
		root:       root,
		customerID: customerID,
		items:      make(map[string]*Item),
		total:      decimal.Zero,
		journal:    &common.EventBook{Root: root},
		logger:     logger,
		now:        now,
	}
}

// Root returns the cart's deterministic identifier, derived from the customer ID.
func (c *Cart) Root() uuid.UUID {
	return c.root
}

func (c *Cart) CustomerID() string {
	return c.customerID
}

// Total returns the running total of the cart.
func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

// Items returns a copy of the cart's items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

// Item returns a copy of the item for productID.
func (c *Cart) Item(productID string) (Item, bool) {
	item, ok := c.items[productID]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// Events returns a copy of the cart's journal.
func (c *Cart) Events() *common.EventBook {
	return c.journal.Clone()
}

func (c *Cart) indexOf(productID string) int {
	return slices.Index(c.order, productID)
}

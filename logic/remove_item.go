package logic

import (
	"slices"

	"go.uber.org/zap"

	"shopcart/common"
)

// RemoveItem takes product's line out of the cart and subtracts its line
// total. It reports false when the product is not in the cart.
func (c *Cart) RemoveItem(product Product) (bool, error) {
	if err := common.RequirePresent(product.ID(), ErrMsgProductRequired); err != nil {
		return false, err
	}

	position := c.indexOf(product.ID())
	if position < 0 {
		return false, nil
	}
	if err := c.removeAt(position); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveItemAt removes the item at position, counted in insertion order from
// zero, and subtracts its line total. It reports false for a position outside
// the cart.
func (c *Cart) RemoveItemAt(position int) bool {
	if position < 0 || position >= len(c.order) {
		return false
	}
	if err := c.removeAt(position); err != nil {
		c.logger.Error("removing item by position",
			zap.String("customer_id", c.customerID),
			zap.Int("position", position),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (c *Cart) removeAt(position int) error {
	productID := c.order[position]
	item := c.items[productID]
	lineTotal := item.LineTotal()

	page, err := c.pack(EventItemRemoved, map[string]interface{}{
		"product_id": productID,
		"position":   position,
		"line_total": lineTotal.String(),
	})
	if err != nil {
		return err
	}

	c.removeItem(position)
	c.journal.Pages = append(c.journal.Pages, page)

	c.logger.Debug("removing item",
		zap.String("customer_id", c.customerID),
		zap.String("product_id", productID),
		zap.Int("position", position),
		zap.Stringer("line_total", lineTotal),
		zap.Stringer("total", c.total),
	)
	return nil
}

func (c *Cart) removeItem(position int) {
	productID := c.order[position]
	c.total = c.total.Sub(c.items[productID].LineTotal())
	delete(c.items, productID)
	c.order = slices.Delete(c.order, position, position+1)
}

package logic

import (
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcart/common"
)

// AddItem puts quantity units of product in the cart at unitPrice.
//
// If the product is already in the cart its quantity grows by quantity, and
// its unit price is replaced when unitPrice differs from the stored one. The
// running total always grows by unitPrice × quantity of this call.
func (c *Cart) AddItem(product Product, unitPrice decimal.Decimal, quantity int32) error {
	if err := validateAddItem(product, unitPrice, quantity); err != nil {
		return err
	}

	page, err := c.pack(EventItemAdded, map[string]interface{}{
		"product_id":  product.ID(),
		"description": product.Description(),
		"unit_price":  unitPrice.String(),
		"quantity":    quantity,
	})
	if err != nil {
		return err
	}
	if err := c.addItem(product, unitPrice, quantity); err != nil {
		return err
	}
	c.journal.Pages = append(c.journal.Pages, page)

	c.logger.Debug("adding item",
		zap.String("customer_id", c.customerID),
		zap.String("product_id", product.ID()),
		zap.Int32("quantity", quantity),
		zap.Stringer("unit_price", unitPrice),
		zap.Stringer("total", c.total),
	)
	return nil
}

func validateAddItem(product Product, unitPrice decimal.Decimal, quantity int32) error {
	if err := common.RequirePresent(product.ID(), ErrMsgProductRequired); err != nil {
		return err
	}
	if err := common.RequireNotNegative(unitPrice, ErrMsgUnitPriceNegative); err != nil {
		return err
	}
	if err := common.RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return err
	}
	return nil
}

// addItem applies the merge rule. It leaves the cart untouched on error.
func (c *Cart) addItem(product Product, unitPrice decimal.Decimal, quantity int32) error {
	if item, ok := c.items[product.ID()]; ok {
		merged := int64(item.Quantity()) + int64(quantity)
		if merged > math.MaxInt32 {
			return common.NewOutOfRange(ErrMsgQuantityOverflow)
		}
		item.setQuantity(int32(merged))
		if !unitPrice.Equal(item.UnitPrice()) {
			item.setUnitPrice(unitPrice)
		}
	} else {
		c.items[product.ID()] = NewItem(product, unitPrice, quantity)
		c.order = append(c.order, product.ID())
	}

	c.total = c.total.Add(unitPrice.Mul(decimal.NewFromInt32(quantity)))
	return nil
}

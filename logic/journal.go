package logic

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"shopcart/common"
)

// Journal event types recorded by a cart.
const (
	EventCartCreated = "CartCreated"
	EventItemAdded   = "ItemAdded"
	EventItemRemoved = "ItemRemoved"
)

func (c *Cart) pack(eventType string, fields map[string]interface{}) (*common.EventPage, error) {
	return common.PackEvent(eventType, fields, common.NextSequence(c.journal), c.now())
}

var cartBuilder = common.NewStateBuilder(func() Cart { return *newCart("", nil, nil) }).
	On(EventCartCreated, applyCartCreated).
	On(EventItemAdded, applyItemAdded).
	On(EventItemRemoved, applyItemRemoved)

// ReplayCart rebuilds a cart from its journal.
//
// The replayed cart has the same items, order and running total as the cart
// that recorded the journal, and continues its sequence numbering.
func ReplayCart(book *common.EventBook) (*Cart, error) {
	if book == nil || len(book.Pages) == 0 || book.Pages[0].EventType() != EventCartCreated {
		return nil, common.NewFailedPrecondition(ErrMsgCartNotCreatedInBook)
	}

	state, err := cartBuilder.Rebuild(book)
	if err != nil {
		return nil, errors.Wrap(err, "replay cart")
	}
	if book.Root != state.root {
		return nil, common.NewFailedPreconditionf("journal root %s does not match cart root %s", book.Root, state.root)
	}

	cart := state
	cart.journal = book.Clone()
	return &cart, nil
}

func applyCartCreated(state *Cart, event *structpb.Struct) error {
	if state.customerID != "" {
		return common.NewFailedPrecondition(ErrMsgCartAlreadyCreated)
	}
	customerID := event.GetFields()["customer_id"].GetStringValue()
	if err := common.RequirePresent(customerID, ErrMsgCustomerIDRequired); err != nil {
		return err
	}
	state.customerID = customerID
	state.root = common.CartRoot(customerID)
	return nil
}

func applyItemAdded(state *Cart, event *structpb.Struct) error {
	fields := event.GetFields()
	product := NewProduct(fields["product_id"].GetStringValue(), fields["description"].GetStringValue())

	unitPrice, err := decimal.NewFromString(fields["unit_price"].GetStringValue())
	if err != nil {
		return common.NewInvalidArgument(ErrMsgMalformedUnitPrice)
	}
	quantity, err := wholeNumber(fields["quantity"])
	if err != nil {
		return err
	}

	if err := validateAddItem(product, unitPrice, quantity); err != nil {
		return err
	}
	return state.addItem(product, unitPrice, quantity)
}

func applyItemRemoved(state *Cart, event *structpb.Struct) error {
	productID := event.GetFields()["product_id"].GetStringValue()
	position := state.indexOf(productID)
	if position < 0 {
		return common.NewFailedPreconditionf("%s: %s", ErrMsgItemNotInCart, productID)
	}
	state.removeItem(position)
	return nil
}

func wholeNumber(v *structpb.Value) (int32, error) {
	n := v.GetNumberValue()
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, common.NewInvalidArgument(ErrMsgMalformedQuantity)
	}
	return int32(n), nil
}

package logic

// Error message constants for the cart domain.
const (
	ErrMsgProductRequired      = "Product is required"
	ErrMsgUnitPriceNegative    = "Unit price must not be negative"
	ErrMsgQuantityPositive     = "Quantity must be positive"
	ErrMsgQuantityOverflow     = "Merged quantity exceeds the supported range"
	ErrMsgCustomerIDRequired   = "Customer ID is required"
	ErrMsgCartRequired         = "Cart is required"
	ErrMsgItemNotInCart        = "Item not in cart"
	ErrMsgCartAlreadyCreated   = "Cart already exists"
	ErrMsgMalformedUnitPrice   = "Unit price is not a decimal"
	ErrMsgMalformedQuantity    = "Quantity is not a whole number"
	ErrMsgCartNotCreatedInBook = "Journal does not start with CartCreated"
)

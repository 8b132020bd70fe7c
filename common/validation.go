package common

// Guards used by command handlers. Each returns nil when the check passes, so
// handlers can chain them as `if err := RequireX(...); err != nil { return err }`.

// RequirePresent checks that an identifier is non-empty.
func RequirePresent(value, errMsg string) *CommandError {
	if value == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive[T ~int | ~int32 | ~int64](value T, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// Signed is satisfied by exact numeric types such as decimal.Decimal.
type Signed interface {
	IsNegative() bool
}

// RequireNotNegative checks that an exact numeric value is zero or greater.
func RequireNotNegative(value Signed, errMsg string) *CommandError {
	if value.IsNegative() {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNotNil checks that a pointer argument was supplied.
func RequireNotNil[T any](value *T, errMsg string) *CommandError {
	if value == nil {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

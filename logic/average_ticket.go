package logic

import "github.com/shopspring/decimal"

// TicketPrecision is the number of fractional digits of the average ticket.
const TicketPrecision = 2

// AverageTicket returns the aggregate total divided by the number of
// registrations, rounded to two places with halves rounded up (0-4 down,
// 5-9 up). It returns exactly zero when nothing is registered.
func (r *CartRegistry) AverageTicket() decimal.Decimal {
	if r.registeredCount == 0 {
		return decimal.Zero
	}
	return r.aggregateTotal.DivRound(decimal.NewFromInt(int64(r.registeredCount)), TicketPrecision)
}

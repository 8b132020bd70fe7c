package logic

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcart/common"
)

// RegistryConfig configures a CartRegistry. The zero value is valid.
type RegistryConfig struct {
	// Logger receives structured logs for registry and cart activity.
	// Defaults to a no-op logger.
	Logger *zap.Logger
	// Now stamps journal pages. Defaults to time.Now.
	Now func() time.Time
}

// CartRegistry creates and owns the carts of every customer, and keeps the
// aggregate behind the average ticket.
//
// The aggregate is built from snapshots: Register adds the cart's total at the
// moment of the call, and later changes to the cart are not reflected. A cart
// registered twice is counted twice.
type CartRegistry struct {
	carts         map[string]*Cart
	registrations map[*Cart][]decimal.Decimal

	aggregateTotal  decimal.Decimal
	registeredCount int

	logger *zap.Logger
	now    func() time.Time
}

// NewCartRegistry returns an empty registry.
func NewCartRegistry(cfg RegistryConfig) *CartRegistry {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CartRegistry{
		carts:          make(map[string]*Cart),
		registrations:  make(map[*Cart][]decimal.Decimal),
		aggregateTotal: decimal.Zero,
		logger:         cfg.Logger,
		now:            cfg.Now,
	}
}

// GetOrCreate returns the cart of customerID, creating an empty one on first
// use. Every call for the same customer returns the same *Cart.
func (r *CartRegistry) GetOrCreate(customerID string) (*Cart, error) {
	if err := common.RequirePresent(customerID, ErrMsgCustomerIDRequired); err != nil {
		return nil, err
	}
	if cart, ok := r.carts[customerID]; ok {
		return cart, nil
	}

	cart := newCart(customerID, r.logger, r.now)
	page, err := cart.pack(EventCartCreated, map[string]interface{}{
		"customer_id": customerID,
	})
	if err != nil {
		return nil, err
	}
	cart.journal.Pages = append(cart.journal.Pages, page)
	r.carts[customerID] = cart

	r.logger.Info("creating cart",
		zap.String("customer_id", customerID),
		zap.Stringer("root", cart.Root()),
	)
	return cart, nil
}

// Cart returns the cart of customerID without creating one.
func (r *CartRegistry) Cart(customerID string) (*Cart, bool) {
	cart, ok := r.carts[customerID]
	return cart, ok
}

// Len returns the number of carts currently held.
func (r *CartRegistry) Len() int {
	return len(r.carts)
}

// Invalidate drops the cart of customerID, e.g. on checkout or session expiry.
// Any snapshots the cart contributed to the average ticket are reversed. It
// reports false when the customer has no cart.
func (r *CartRegistry) Invalidate(customerID string) bool {
	cart, ok := r.carts[customerID]
	if !ok {
		return false
	}
	delete(r.carts, customerID)

	snapshots := r.registrations[cart]
	for _, snapshot := range snapshots {
		r.aggregateTotal = r.aggregateTotal.Sub(snapshot)
		r.registeredCount--
	}
	delete(r.registrations, cart)

	common.LogEventBook(r.logger, "cart", cart.journal)
	r.logger.Info("invalidating cart",
		zap.String("customer_id", customerID),
		zap.Int("reversed_snapshots", len(snapshots)),
		zap.Stringer("aggregate_total", r.aggregateTotal),
		zap.Int("registered_count", r.registeredCount),
	)
	return true
}

// Register adds the cart's current total to the average ticket.
func (r *CartRegistry) Register(cart *Cart) error {
	if err := common.RequireNotNil(cart, ErrMsgCartRequired); err != nil {
		return err
	}

	snapshot := cart.Total()
	r.registrations[cart] = append(r.registrations[cart], snapshot)
	r.aggregateTotal = r.aggregateTotal.Add(snapshot)
	r.registeredCount++

	r.logger.Info("registering cart",
		zap.String("customer_id", cart.CustomerID()),
		zap.Stringer("total", snapshot),
		zap.Stringer("aggregate_total", r.aggregateTotal),
		zap.Int("registered_count", r.registeredCount),
	)
	return nil
}

// AggregateTotal returns the sum of all live registration snapshots.
func (r *CartRegistry) AggregateTotal() decimal.Decimal {
	return r.aggregateTotal
}

// RegisteredCount returns the number of live registration snapshots.
func (r *CartRegistry) RegisteredCount() int {
	return r.registeredCount
}

// StateBuilder provides declarative event handler registration for state reconstruction.
//
// Replaces manual switch/case chains in replay functions: each event type name
// is bound to an applier with On, and Rebuild folds an EventBook into state.
package common

import (
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"google.golang.org/protobuf/types/known/structpb"
)

// StateApplier applies a decoded event payload to state.
type StateApplier[S any] func(state *S, event *structpb.Struct) error

type applierEntry[S any] struct {
	suffix string
	apply  StateApplier[S]
}

// StateBuilder builds state from events with registered handlers.
//
// Example:
//
//	builder := common.NewStateBuilder(newCart).
//	    On("CartCreated", applyCartCreated).
//	    On("ItemAdded", applyItemAdded)
//
//	cart, err := builder.Rebuild(book)
type StateBuilder[S any] struct {
	newState func() S
	appliers []applierEntry[S]
}

// NewStateBuilder creates a StateBuilder for state type S.
//
// The newState function creates a default/zero state.
func NewStateBuilder[S any](newState func() S) *StateBuilder[S] {
	return &StateBuilder[S]{
		newState: newState,
		appliers: make([]applierEntry[S], 0),
	}
}

// On registers an event applier for an event type name.
func (sb *StateBuilder[S]) On(eventType string, apply StateApplier[S]) *StateBuilder[S] {
	sb.appliers = append(sb.appliers, applierEntry[S]{
		suffix: "." + eventType,
		apply:  apply,
	})
	return sb
}

// Apply applies a single page to state using the registered handlers.
// Pages of unknown event types are ignored.
func (sb *StateBuilder[S]) Apply(state *S, page *EventPage) error {
	if page == nil || page.Event == nil {
		return nil
	}
	for _, applier := range sb.appliers {
		if !strings.HasSuffix(page.Event.GetTypeUrl(), applier.suffix) {
			continue
		}
		payload, err := UnpackEvent(page)
		if err != nil {
			return err
		}
		return applier.apply(state, payload)
	}
	return nil
}

// Rebuild reconstructs state from an EventBook.
//
// Every page is attempted; failures are wrapped with the page sequence and
// combined, so the returned error lists each page that could not be applied.
func (sb *StateBuilder[S]) Rebuild(book *EventBook) (S, error) {
	state := sb.newState()
	if book == nil {
		return state, nil
	}

	var errs error
	for _, page := range book.Pages {
		if err := sb.Apply(&state, page); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "page %d (%s)", page.Sequence, page.EventType()))
		}
	}
	return state, errs
}

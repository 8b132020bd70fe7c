package common

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TypeURLPrefix is the shared prefix for all journal event type URLs.
const TypeURLPrefix = "type.shopcart/shopcart."

// TypeURL builds the full type URL for an event type name.
// Example: TypeURL("ItemAdded") returns "type.shopcart/shopcart.ItemAdded"
func TypeURL(eventType string) string {
	return TypeURLPrefix + eventType
}

// EventPage is a single recorded event.
type EventPage struct {
	Sequence  uint32
	Event     *anypb.Any
	CreatedAt *timestamppb.Timestamp
}

// EventType returns the short type name of the page's event.
func (p *EventPage) EventType() string {
	if p == nil || p.Event == nil {
		return ""
	}
	typeURL := p.Event.GetTypeUrl()
	if idx := strings.LastIndex(typeURL, "."); idx >= 0 {
		return typeURL[idx+1:]
	}
	return typeURL
}

// EventBook is the ordered journal of one aggregate root.
type EventBook struct {
	Root  uuid.UUID
	Pages []*EventPage
}

// Clone returns a deep copy of the book.
func (b *EventBook) Clone() *EventBook {
	if b == nil {
		return nil
	}
	out := &EventBook{Root: b.Root, Pages: make([]*EventPage, 0, len(b.Pages))}
	for _, page := range b.Pages {
		if page == nil {
			continue
		}
		cp := &EventPage{Sequence: page.Sequence}
		if page.Event != nil {
			cp.Event = proto.Clone(page.Event).(*anypb.Any)
		}
		if page.CreatedAt != nil {
			cp.CreatedAt = proto.Clone(page.CreatedAt).(*timestamppb.Timestamp)
		}
		out.Pages = append(out.Pages, cp)
	}
	return out
}

// NextSequence returns the sequence number the next page of book should carry.
func NextSequence(book *EventBook) uint32 {
	if book == nil || len(book.Pages) == 0 {
		return 0
	}
	return book.Pages[len(book.Pages)-1].Sequence + 1
}

// PackEvent encodes fields as a Struct payload and wraps it in a page.
//
// Field values must be representable by structpb.NewValue; exact amounts
// should be passed as strings.
func PackEvent(eventType string, fields map[string]interface{}, seq uint32, at time.Time) (*EventPage, error) {
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", eventType)
	}
	value, err := proto.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", eventType)
	}
	return &EventPage{
		Sequence:  seq,
		Event:     &anypb.Any{TypeUrl: TypeURL(eventType), Value: value},
		CreatedAt: timestamppb.New(at),
	}, nil
}

// UnpackEvent decodes the Struct payload of a page.
func UnpackEvent(page *EventPage) (*structpb.Struct, error) {
	if page == nil || page.Event == nil {
		return nil, errors.New("page has no event")
	}
	var payload structpb.Struct
	if err := proto.Unmarshal(page.Event.GetValue(), &payload); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", page.EventType())
	}
	return &payload, nil
}

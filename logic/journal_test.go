package logic

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"shopcart/common"
)

var journalClock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newJournalRegistry() *CartRegistry {
	return NewCartRegistry(RegistryConfig{Now: func() time.Time { return journalClock }})
}

func eventTypes(book *common.EventBook) []string {
	var out []string
	for _, page := range book.Pages {
		out = append(out, page.EventType())
	}
	return out
}

func buildJournaledCart(t *testing.T) *Cart {
	t.Helper()
	cart, err := newJournalRegistry().GetOrCreate("A")
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	mustAdd(t, cart, polo, "59.90", 2)
	mustAdd(t, cart, jeans, "99.90", 1)
	mustAdd(t, cart, polo, "59.90", 1)
	mustAdd(t, cart, shoes, "149.90", 1)
	if removed, err := cart.RemoveItem(jeans); err != nil || !removed {
		t.Fatalf("remove jeans: %v", err)
	}
	if !cart.RemoveItemAt(1) {
		t.Fatal("remove at 1")
	}
	mustAdd(t, cart, jeans, "89.90", 2)
	return cart
}

func TestEvents_RecordsEveryMutation(t *testing.T) {
	cart := buildJournaledCart(t)
	book := cart.Events()

	want := []string{
		EventCartCreated,
		EventItemAdded, EventItemAdded, EventItemAdded, EventItemAdded,
		EventItemRemoved, EventItemRemoved,
		EventItemAdded,
	}
	got := eventTypes(book)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
		if book.Pages[i].Sequence != uint32(i) {
			t.Errorf("page %d: expected sequence %d, got %d", i, i, book.Pages[i].Sequence)
		}
		if !book.Pages[i].CreatedAt.AsTime().Equal(journalClock) {
			t.Errorf("page %d: expected timestamp %s, got %s", i, journalClock, book.Pages[i].CreatedAt.AsTime())
		}
	}
	if book.Root != cart.Root() {
		t.Errorf("expected book root %s, got %s", cart.Root(), book.Root)
	}
}

func TestEvents_ItemAddedPayload(t *testing.T) {
	cart := buildJournaledCart(t)
	payload, err := common.UnpackEvent(cart.Events().Pages[1])
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	fields := payload.GetFields()
	if fields["product_id"].GetStringValue() != "1" {
		t.Errorf("expected product_id 1, got %v", fields["product_id"])
	}
	if fields["description"].GetStringValue() != "Polo shirt" {
		t.Errorf("expected description, got %v", fields["description"])
	}
	if fields["unit_price"].GetStringValue() != "59.9" {
		t.Errorf("expected unit_price 59.9, got %v", fields["unit_price"])
	}
	if fields["quantity"].GetNumberValue() != 2 {
		t.Errorf("expected quantity 2, got %v", fields["quantity"])
	}
}

func TestEvents_ReturnsCopy(t *testing.T) {
	cart := buildJournaledCart(t)
	book := cart.Events()
	book.Pages = book.Pages[:1]
	book.Pages[0].Sequence = 42

	fresh := cart.Events()
	if len(fresh.Pages) != 8 {
		t.Errorf("expected 8 pages, got %d", len(fresh.Pages))
	}
	if fresh.Pages[0].Sequence != 0 {
		t.Errorf("expected sequence 0, got %d", fresh.Pages[0].Sequence)
	}
}

func TestEvents_RejectedCommandsRecordNothing(t *testing.T) {
	cart, _ := newJournalRegistry().GetOrCreate("A")
	_ = cart.AddItem(Product{}, dec("1"), 1)
	_ = cart.AddItem(polo, dec("1"), 0)
	_, _ = cart.RemoveItem(polo)
	cart.RemoveItemAt(0)

	if got := len(cart.Events().Pages); got != 1 {
		t.Errorf("expected only CartCreated, got %d pages", got)
	}
}

func TestReplayCart_ReproducesCart(t *testing.T) {
	original := buildJournaledCart(t)

	replayed, err := ReplayCart(original.Events())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replayed.CustomerID() != "A" {
		t.Errorf("expected customer A, got %q", replayed.CustomerID())
	}
	if replayed.Root() != original.Root() {
		t.Errorf("expected root %s, got %s", original.Root(), replayed.Root())
	}
	if !replayed.Total().Equal(original.Total()) {
		t.Errorf("expected total %s, got %s", original.Total(), replayed.Total())
	}

	want, got := original.Items(), replayed.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Product().Equal(want[i].Product()) ||
			got[i].Quantity() != want[i].Quantity() ||
			!got[i].UnitPrice().Equal(want[i].UnitPrice()) {
			t.Errorf("item %d: expected %s x%d @%s, got %s x%d @%s", i,
				want[i].Product(), want[i].Quantity(), want[i].UnitPrice(),
				got[i].Product(), got[i].Quantity(), got[i].UnitPrice())
		}
	}
}

func TestReplayCart_PreservesPriceChangeAccrual(t *testing.T) {
	cart, _ := newJournalRegistry().GetOrCreate("A")
	mustAdd(t, cart, polo, "10", 1)
	mustAdd(t, cart, polo, "20", 1)

	replayed, err := ReplayCart(cart.Events())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !replayed.Total().Equal(dec("30")) {
		t.Errorf("expected total 30, got %s", replayed.Total())
	}
}

func TestReplayCart_ContinuesSequence(t *testing.T) {
	original := buildJournaledCart(t)
	replayed, err := ReplayCart(original.Events())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	mustAdd(t, replayed, shoes, "149.90", 1)

	pages := replayed.Events().Pages
	if got := pages[len(pages)-1].Sequence; got != 8 {
		t.Errorf("expected sequence 8, got %d", got)
	}
	if len(original.Events().Pages) != 8 {
		t.Error("expected original journal untouched")
	}
}

func TestReplayCart_RequiresCartCreated(t *testing.T) {
	cart := buildJournaledCart(t)
	headless := cart.Events()
	headless.Pages = headless.Pages[1:]

	for name, book := range map[string]*common.EventBook{
		"nil":      nil,
		"empty":    {Root: cart.Root()},
		"headless": headless,
	} {
		_, err := ReplayCart(book)
		expectCode(t, err, common.StatusFailedPrecondition)
		if err != nil && err.Error() != ErrMsgCartNotCreatedInBook {
			t.Errorf("%s: unexpected message %q", name, err.Error())
		}
	}
}

func TestReplayCart_RejectsUnknownRemoval(t *testing.T) {
	cart, _ := newJournalRegistry().GetOrCreate("A")
	book := cart.Events()
	page, err := common.PackEvent(EventItemRemoved, map[string]interface{}{
		"product_id": "ghost",
	}, common.NextSequence(book), journalClock)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	book.Pages = append(book.Pages, page)

	_, err = ReplayCart(book)
	expectCode(t, err, common.StatusFailedPrecondition)
}

func TestReplayCart_RejectsMalformedItemAdded(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		code   common.StatusCode
	}{
		{"bad price", map[string]interface{}{"product_id": "1", "unit_price": "abc", "quantity": 1}, common.StatusInvalidArgument},
		{"fractional quantity", map[string]interface{}{"product_id": "1", "unit_price": "1", "quantity": 1.5}, common.StatusInvalidArgument},
		{"zero quantity", map[string]interface{}{"product_id": "1", "unit_price": "1", "quantity": 0}, common.StatusInvalidArgument},
		{"missing product", map[string]interface{}{"unit_price": "1", "quantity": 1}, common.StatusInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, _ := newJournalRegistry().GetOrCreate("A")
			book := cart.Events()
			page, err := common.PackEvent(EventItemAdded, tt.fields, common.NextSequence(book), journalClock)
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			book.Pages = append(book.Pages, page)

			_, err = ReplayCart(book)
			expectCode(t, err, tt.code)
		})
	}
}

func TestReplayCart_RejectsDuplicateCreation(t *testing.T) {
	cart, _ := newJournalRegistry().GetOrCreate("A")
	book := cart.Events()
	book.Pages = append(book.Pages, book.Clone().Pages[0])

	_, err := ReplayCart(book)
	expectCode(t, err, common.StatusFailedPrecondition)
}

func TestReplayCart_RejectsRootMismatch(t *testing.T) {
	cart, _ := newJournalRegistry().GetOrCreate("A")
	book := cart.Events()
	book.Root = uuid.New()

	_, err := ReplayCart(book)
	expectCode(t, err, common.StatusFailedPrecondition)
}

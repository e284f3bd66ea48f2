package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	cartsvc "papergenius_backend/internal/cart/service"
	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/logger"
)

type fakeCatalog struct {
	items   []Item
	listErr error
	getErr  error
}

func (f *fakeCatalog) ListItems(ctx context.Context) ([]Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCatalog) GetItem(ctx context.Context, id int64) (Item, error) {
	if f.getErr != nil {
		return Item{}, f.getErr
	}
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, apperr.NotFound("item not found")
}

type fakeCart struct {
	inserted []CartInsert
	err      error
}

func (f *fakeCart) InsertEntry(ctx context.Context, insert CartInsert) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, insert)
	return nil
}

type fakeGen struct {
	reply string
	err   error
}

func (f *fakeGen) Generate(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	return f.reply, f.err
}

func newTestService(catalog *fakeCatalog, cart *fakeCart, gen Generator) *Service {
	return New(catalog, cart, pricerFunc(cartsvc.TotalPrice), gen, logger.New("development"))
}

type pricerFunc func(yearsAvailable map[string]int, designType string, selectedYears []string) float64

func (f pricerFunc) Price(yearsAvailable map[string]int, designType string, selectedYears []string) float64 {
	return f(yearsAvailable, designType, selectedYears)
}

func testItems() []Item {
	return []Item{
		{
			ID:   7,
			Name: "Pure Maths 1",
			Img:  "https://img.example/pm1.png",
			YearsAvailable: map[string]int{
				"2019 Jan": 40,
				"2019 Oct": 35,
				"2020 Jun": 42,
				"2020 Oct": 38,
			},
		},
	}
}

func TestChatAddsToCart(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "Adding it now! ||ADD_CART:Pure Maths 1|2019 January|2020 October|Custom||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, Name: "Amal", LoggedIn: true}, "buy everything")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	want := "Adding it now! \n\n[SYSTEM]: ✅ Added **Pure Maths 1** (2019 Jan - 2020 Oct) to cart."
	if reply != want {
		t.Fatalf("Chat() = %q, want %q", reply, want)
	}

	if len(cart.inserted) != 1 {
		t.Fatalf("expected 1 cart insert, got %d", len(cart.inserted))
	}
	entry := cart.inserted[0]
	if entry.UserID != 3 || entry.OriginalItemID != 7 {
		t.Fatalf("unexpected entry ownership: %+v", entry)
	}

	// Keys sort lexicographically, so the full span covers all four sittings.
	wantYears := []string{"2019 Jan", "2019 Oct", "2020 Jun", "2020 Oct"}
	if len(entry.SelectedYears) != len(wantYears) {
		t.Fatalf("SelectedYears = %v, want %v", entry.SelectedYears, wantYears)
	}
	for i, year := range wantYears {
		if entry.SelectedYears[i] != year {
			t.Fatalf("SelectedYears = %v, want %v", entry.SelectedYears, wantYears)
		}
	}

	wantPrice := float64(40+35+42+38)*5 + 400 + 500
	if entry.Price != wantPrice {
		t.Fatalf("Price = %v, want %v", entry.Price, wantPrice)
	}
}

func TestChatSwapsReversedRange(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "||ADD_CART:Pure Maths 1|2020 Oct|2019 Jan|Normal||"}
	svc := newTestService(catalog, cart, gen)

	_, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if len(cart.inserted) != 1 {
		t.Fatalf("expected 1 cart insert, got %d", len(cart.inserted))
	}
	if got := len(cart.inserted[0].SelectedYears); got != 4 {
		t.Fatalf("SelectedYears length = %d, want 4", got)
	}
}

func TestChatItemNotFound(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "Sure. ||ADD_CART:Further Maths|2019 Jan|2020 Oct|Normal||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !strings.HasSuffix(reply, "[SYSTEM ERROR]: Item not found.") {
		t.Fatalf("Chat() = %q, want item-not-found footer", reply)
	}
	if strings.Contains(reply, "||ADD_CART") {
		t.Fatalf("markup leaked into reply: %q", reply)
	}
	if len(cart.inserted) != 0 {
		t.Fatalf("no insert expected, got %d", len(cart.inserted))
	}
}

func TestChatYearUnresolved(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "||ADD_CART:Pure Maths 1|1999|2020 Oct|Normal||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	want := "[SYSTEM ERROR]: Could not match years '1999' or '2020 Oct' to database."
	if !strings.HasSuffix(reply, want) {
		t.Fatalf("Chat() = %q, want suffix %q", reply, want)
	}
	if len(cart.inserted) != 0 {
		t.Fatalf("no insert expected, got %d", len(cart.inserted))
	}
}

func TestChatPersistenceFailure(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{err: errors.New("connection reset")}
	gen := &fakeGen{reply: "||ADD_CART:Pure Maths 1|2019 Jan|2020 Oct|Normal||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !strings.HasSuffix(reply, "[SYSTEM ERROR]: Processing failed.") {
		t.Fatalf("Chat() = %q, want processing-failed footer", reply)
	}
	if strings.Contains(reply, "connection reset") {
		t.Fatalf("raw error leaked into reply: %q", reply)
	}
}

func TestChatMalformedDirective(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "Hold on ||ADD_CART:Pure Maths 1|2019 Jan||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !strings.HasSuffix(reply, "[SYSTEM ERROR]: Processing failed.") {
		t.Fatalf("Chat() = %q, want processing-failed footer", reply)
	}
	if strings.Contains(reply, "||ADD_CART") {
		t.Fatalf("markup leaked into reply: %q", reply)
	}
}

func TestChatGuestDirectiveStripped(t *testing.T) {
	catalog := &fakeCatalog{items: testItems()}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "Done! ||ADD_CART:Pure Maths 1|2019 Jan|2020 Oct|Normal||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{LoggedIn: false}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Done! " {
		t.Fatalf("Chat() = %q, want stripped reply with no footer", reply)
	}
	if len(cart.inserted) != 0 {
		t.Fatalf("guest must not mutate the cart, got %d inserts", len(cart.inserted))
	}
}

func TestChatEmptyMessage(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeCart{}, &fakeGen{})

	_, err := svc.Chat(context.Background(), ChatUser{LoggedIn: true}, "   ")
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("Chat() error = %v, want validation error", err)
	}
}

func TestChatNoGenerator(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeCart{}, nil)

	_, err := svc.Chat(context.Background(), ChatUser{LoggedIn: true}, "hello")
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("Chat() error = %v, want internal error", err)
	}
}

func TestChatCatalogOfflineStillAnswers(t *testing.T) {
	catalog := &fakeCatalog{listErr: errors.New("dial tcp: refused")}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "We seem to be out of stock right now."}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{LoggedIn: true}, "what do you sell?")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "We seem to be out of stock right now." {
		t.Fatalf("Chat() = %q", reply)
	}
}

func TestChatCatalogOfflineDirectiveFails(t *testing.T) {
	// With the inventory unreadable the name map is empty, so any directive
	// resolves to item-not-found.
	catalog := &fakeCatalog{listErr: errors.New("dial tcp: refused")}
	cart := &fakeCart{}
	gen := &fakeGen{reply: "||ADD_CART:Pure Maths 1|2019 Jan|2020 Oct|Normal||"}
	svc := newTestService(catalog, cart, gen)

	reply, err := svc.Chat(context.Background(), ChatUser{ID: 3, LoggedIn: true}, "buy")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !strings.HasSuffix(reply, "[SYSTEM ERROR]: Item not found.") {
		t.Fatalf("Chat() = %q, want item-not-found footer", reply)
	}
}

package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

func newHotels(t *testing.T) (*app.HotelStore, *memDocs) {
	t.Helper()
	docs := newMemDocs()
	return app.NewHotelStore(docs, ""), docs
}

func TestHotelCreate(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)

	h, err := s.Create(ctx, "H1", "Grand", "CDMX", 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.Rooms != 2 || h.RoomsAvailable != 2 {
		t.Fatalf("rooms_available should start at capacity: %+v", h)
	}
	if _, err := s.Create(ctx, "H1", "Again", "MTY", 3); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
	all, _ := s.List(ctx)
	if len(all) != 1 || all[0].Name != "Grand" {
		t.Fatalf("duplicate create must leave store unchanged: %+v", all)
	}
}

func TestHotelCreate_Validation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		id, nm   string
		rooms    int
		wantKind domain.Kind
	}{
		{"empty id", "", "Grand", 2, domain.KindInvalidInput},
		{"empty name", "H1", "", 2, domain.KindInvalidInput},
		{"zero rooms", "H1", "Grand", 0, domain.KindInvalidRoomCount},
		{"negative rooms", "H1", "Grand", -3, domain.KindInvalidRoomCount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, docs := newHotels(t)
			_, err := s.Create(ctx, c.id, c.nm, "CDMX", c.rooms)
			if got := domain.KindOf(err); got != c.wantKind {
				t.Fatalf("KindOf(err) = %v, want %v (err=%v)", got, c.wantKind, err)
			}
			if docs.saves != 0 {
				t.Fatalf("expected no write")
			}
		})
	}
}

func TestHotelModify(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)
	_, _ = s.Create(ctx, "H1", "Grand", "CDMX", 5)

	h, err := s.Modify(ctx, "H1", domain.HotelUpdate{Name: ptr("Grand Plaza"), Location: ptr("Guadalajara")})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if h.Name != "Grand Plaza" || h.Location != "Guadalajara" || h.Rooms != 5 {
		t.Fatalf("unexpected: %+v", h)
	}

	if _, err := s.Modify(ctx, "H1", domain.HotelUpdate{Rooms: ptr(0)}); !errors.Is(err, domain.ErrInvalidRoomCount) {
		t.Fatalf("expected InvalidRoomCount, got %v", err)
	}
	if _, err := s.Modify(ctx, "H1", domain.HotelUpdate{Rooms: ptr(-1)}); !errors.Is(err, domain.ErrInvalidRoomCount) {
		t.Fatalf("expected InvalidRoomCount, got %v", err)
	}
	if _, err := s.Modify(ctx, "nope", domain.HotelUpdate{Name: ptr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestHotelModify_RoomsShiftsAvailability(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)
	_, _ = s.Create(ctx, "H1", "Grand", "CDMX", 5)
	for i := 0; i < 4; i++ {
		if _, err := s.Reserve(ctx, "H1"); err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
	}
	// 1/5 available

	h, err := s.Modify(ctx, "H1", domain.HotelUpdate{Rooms: ptr(8)})
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	if h.Rooms != 8 || h.RoomsAvailable != 4 {
		t.Fatalf("grow by 3: got %d/%d, want 4/8", h.RoomsAvailable, h.Rooms)
	}

	h, err = s.Modify(ctx, "H1", domain.HotelUpdate{Rooms: ptr(2)})
	if err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if h.Rooms != 2 || h.RoomsAvailable != 0 {
		t.Fatalf("shrink by 6 floors at zero: got %d/%d, want 0/2", h.RoomsAvailable, h.Rooms)
	}
}

func TestHotelReserveRelease(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)
	_, _ = s.Create(ctx, "H1", "Grand", "CDMX", 2)

	h, err := s.Reserve(ctx, "H1")
	if err != nil || h.RoomsAvailable != 1 {
		t.Fatalf("first reserve: %+v, %v", h, err)
	}
	h, err = s.Reserve(ctx, "H1")
	if err != nil || h.RoomsAvailable != 0 {
		t.Fatalf("second reserve: %+v, %v", h, err)
	}
	if _, err := s.Reserve(ctx, "H1"); !errors.Is(err, domain.ErrCapacityExhausted) {
		t.Fatalf("third reserve: expected CapacityExhausted, got %v", err)
	}

	if _, err := s.Release(ctx, "H1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	h, err = s.Release(ctx, "H1")
	if err != nil || h.RoomsAvailable != 2 {
		t.Fatalf("second release: %+v, %v", h, err)
	}
	if _, err := s.Release(ctx, "H1"); !errors.Is(err, domain.ErrAllRoomsAvailable) {
		t.Fatalf("release on full hotel: expected AllRoomsAvailable, got %v", err)
	}

	if _, err := s.Reserve(ctx, "H9"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("reserve unknown: %v", err)
	}
	if _, err := s.Release(ctx, "H9"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("release unknown: %v", err)
	}
}

func TestHotelReserveThenRelease_RestoresAvailability(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)
	_, _ = s.Create(ctx, "H1", "Grand", "CDMX", 3)
	_, _ = s.Reserve(ctx, "H1")

	before, _ := s.Find(ctx, "H1")
	if _, err := s.Reserve(ctx, "H1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if _, err := s.Release(ctx, "H1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	after, _ := s.Find(ctx, "H1")
	if after.RoomsAvailable != before.RoomsAvailable {
		t.Fatalf("rooms_available %d, want %d", after.RoomsAvailable, before.RoomsAvailable)
	}
}

func TestHotelDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newHotels(t)
	_, _ = s.Create(ctx, "H1", "Grand", "CDMX", 2)

	if err := s.Delete(ctx, "H1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Find(ctx, "H1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err := s.Delete(ctx, "H1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected NotFound, got %v", err)
	}
}

func TestHotelLoad_MissingRoomsAvailableDefaultsToCapacity(t *testing.T) {
	docs := newMemDocs()
	docs.data[app.DefaultHotelsFile] = []byte(`[{"hotel_id":"H1","name":"Grand","location":"CDMX","rooms":4}]`)
	h, err := app.NewHotelStore(docs, "").Find(context.Background(), "H1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if h.RoomsAvailable != 4 {
		t.Fatalf("RoomsAvailable = %v, want %v", h.RoomsAvailable, 4)
	}
}

func TestHotelLoad_CorruptedIsEmpty(t *testing.T) {
	docs := newMemDocs()
	docs.data["elsewhere/hotels.json"] = []byte(`[{"hotel_id":`)
	all, err := app.NewHotelStore(docs, "elsewhere/hotels.json").List(context.Background())
	if err != nil || len(all) != 0 {
		t.Fatalf("expected empty collection, got %+v, %v", all, err)
	}
}

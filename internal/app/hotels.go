package app

import (
	"context"
	"time"

	"hotel_booking/internal/domain"
)

const DefaultHotelsFile = "hotels.json"

type HotelStore struct {
	records collection[domain.Hotel]
}

func NewHotelStore(docs domain.DocumentStore, name string) *HotelStore {
	if name == "" {
		name = DefaultHotelsFile
	}
	return &HotelStore{records: collection[domain.Hotel]{docs: docs, name: name}}
}

var _ domain.Hotels = (*HotelStore)(nil)

func (s *HotelStore) Create(ctx context.Context, id, name, location string, rooms int) (h domain.Hotel, err error) {
	defer observe("hotels", "create", time.Now(), &err)

	if id == "" || name == "" {
		return domain.Hotel{}, domain.Errorf(domain.KindInvalidInput, "hotel_id and name are required")
	}
	if rooms <= 0 {
		return domain.Hotel{}, domain.Errorf(domain.KindInvalidRoomCount, "rooms must be a positive integer, got %d", rooms)
	}

	all := s.records.loadAll(ctx)
	if indexHotel(all, id) >= 0 {
		return domain.Hotel{}, domain.Errorf(domain.KindAlreadyExists, "hotel %q already exists", id)
	}

	h = domain.Hotel{ID: id, Name: name, Location: location, Rooms: rooms, RoomsAvailable: rooms}
	if err := s.records.saveAll(ctx, append(all, h)); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (s *HotelStore) Delete(ctx context.Context, id string) (err error) {
	defer observe("hotels", "delete", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexHotel(all, id)
	if i < 0 {
		return hotelNotFound(id)
	}
	return s.records.saveAll(ctx, append(all[:i], all[i+1:]...))
}

func (s *HotelStore) Find(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("hotels", "find", time.Now(), &err)

	all := s.records.loadAll(ctx)
	if i := indexHotel(all, id); i >= 0 {
		return all[i], nil
	}
	return domain.Hotel{}, hotelNotFound(id)
}

// Modify applies only the fields set in upd. A rooms change shifts
// rooms_available by the same delta, floored at zero. The result is not
// capped at the new capacity.
func (s *HotelStore) Modify(ctx context.Context, id string, upd domain.HotelUpdate) (h domain.Hotel, err error) {
	defer observe("hotels", "modify", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexHotel(all, id)
	if i < 0 {
		return domain.Hotel{}, hotelNotFound(id)
	}

	if upd.Rooms != nil {
		if *upd.Rooms <= 0 {
			return domain.Hotel{}, domain.Errorf(domain.KindInvalidRoomCount, "rooms must be a positive integer, got %d", *upd.Rooms)
		}
		diff := *upd.Rooms - all[i].Rooms
		all[i].RoomsAvailable = max(0, all[i].RoomsAvailable+diff)
		all[i].Rooms = *upd.Rooms
	}
	if upd.Name != nil {
		all[i].Name = *upd.Name
	}
	if upd.Location != nil {
		all[i].Location = *upd.Location
	}

	if err := s.records.saveAll(ctx, all); err != nil {
		return domain.Hotel{}, err
	}
	return all[i], nil
}

func (s *HotelStore) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.records.loadAll(ctx), nil
}

// Reserve takes one room.
func (s *HotelStore) Reserve(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("hotels", "reserve", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexHotel(all, id)
	if i < 0 {
		return domain.Hotel{}, hotelNotFound(id)
	}
	if all[i].RoomsAvailable <= 0 {
		return domain.Hotel{}, domain.Errorf(domain.KindCapacityExhausted, "no rooms available at %q", all[i].Name)
	}
	all[i].RoomsAvailable--
	if err := s.records.saveAll(ctx, all); err != nil {
		return domain.Hotel{}, err
	}
	return all[i], nil
}

// Release gives one room back.
func (s *HotelStore) Release(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("hotels", "release", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexHotel(all, id)
	if i < 0 {
		return domain.Hotel{}, hotelNotFound(id)
	}
	if all[i].RoomsAvailable >= all[i].Rooms {
		return domain.Hotel{}, domain.Errorf(domain.KindAllRoomsAvailable, "all rooms already available at %q", all[i].Name)
	}
	all[i].RoomsAvailable++
	if err := s.records.saveAll(ctx, all); err != nil {
		return domain.Hotel{}, err
	}
	return all[i], nil
}

func indexHotel(all []domain.Hotel, id string) int {
	for i, h := range all {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func hotelNotFound(id string) error {
	return domain.Errorf(domain.KindNotFound, "hotel %q not found", id)
}

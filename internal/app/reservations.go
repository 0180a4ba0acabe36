package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

const DefaultReservationsFile = "reservations.json"

// CustomerLookup is the read-only view of the customer store a reservation needs.
type CustomerLookup interface {
	Find(ctx context.Context, id string) (domain.Customer, error)
}

// RoomLedger is the part of the hotel store a reservation reads and mutates.
type RoomLedger interface {
	Find(ctx context.Context, id string) (domain.Hotel, error)
	Reserve(ctx context.Context, id string) (domain.Hotel, error)
	Release(ctx context.Context, id string) (domain.Hotel, error)
}

type ReservationStore struct {
	records   collection[domain.Reservation]
	customers CustomerLookup
	hotels    RoomLedger
}

func NewReservationStore(docs domain.DocumentStore, name string, customers CustomerLookup, hotels RoomLedger) *ReservationStore {
	if name == "" {
		name = DefaultReservationsFile
	}
	return &ReservationStore{
		records:   collection[domain.Reservation]{docs: docs, name: name},
		customers: customers,
		hotels:    hotels,
	}
}

var _ domain.Reservations = (*ReservationStore)(nil)

// Create books one room of hotelID for customerID. The hotel counter is
// decremented before the reservation itself is written.
func (s *ReservationStore) Create(ctx context.Context, id, customerID, hotelID string) (r domain.Reservation, err error) {
	defer observe("reservations", "create", time.Now(), &err)

	if id == "" {
		return domain.Reservation{}, domain.Errorf(domain.KindInvalidInput, "reservation_id is required")
	}

	all := s.records.loadAll(ctx)
	if indexReservation(all, id) >= 0 {
		return domain.Reservation{}, domain.Errorf(domain.KindAlreadyExists, "reservation %q already exists", id)
	}
	if _, err := s.customers.Find(ctx, customerID); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := s.hotels.Find(ctx, hotelID); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := s.hotels.Reserve(ctx, hotelID); err != nil {
		return domain.Reservation{}, err
	}

	r = domain.Reservation{ID: id, CustomerID: customerID, HotelID: hotelID}
	if err := s.records.saveAll(ctx, append(all, r)); err != nil {
		return domain.Reservation{}, err
	}
	return r, nil
}

// Cancel releases the reserved room and drops the reservation. A release the
// hotel store refuses (hotel deleted, counter already full) is logged and the
// reservation is removed anyway.
func (s *ReservationStore) Cancel(ctx context.Context, id string) (err error) {
	defer observe("reservations", "cancel", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexReservation(all, id)
	if i < 0 {
		return reservationNotFound(id)
	}

	target := all[i]
	if _, err := s.hotels.Release(ctx, target.HotelID); err != nil {
		log.Warn().Err(err).
			Str("reservation_id", target.ID).
			Str("hotel_id", target.HotelID).
			Msg("room release failed during cancel")
	}
	return s.records.saveAll(ctx, append(all[:i], all[i+1:]...))
}

func (s *ReservationStore) Find(ctx context.Context, id string) (r domain.Reservation, err error) {
	defer observe("reservations", "find", time.Now(), &err)

	all := s.records.loadAll(ctx)
	if i := indexReservation(all, id); i >= 0 {
		return all[i], nil
	}
	return domain.Reservation{}, reservationNotFound(id)
}

func (s *ReservationStore) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.records.loadAll(ctx), nil
}

func indexReservation(all []domain.Reservation, id string) int {
	for i, r := range all {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func reservationNotFound(id string) error {
	return domain.Errorf(domain.KindNotFound, "reservation %q not found", id)
}

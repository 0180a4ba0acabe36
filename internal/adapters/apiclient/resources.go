package apiclient

import (
	"context"
	"net/http"

	"hotel_booking/internal/domain"
)

type Customers struct{ c *Client }

var _ domain.Customers = (*Customers)(nil)

func (r *Customers) Create(ctx context.Context, id, name, email string) (domain.Customer, error) {
	var out domain.Customer
	in := domain.Customer{ID: id, Name: name, Email: email}
	err := r.c.do(ctx, http.MethodPost, "customers.create", "/v1/customers", in, &out)
	return out, err
}

func (r *Customers) Find(ctx context.Context, id string) (domain.Customer, error) {
	var out domain.Customer
	p, err := idPath("customer", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodGet, "customers.get", p, nil, &out)
	return out, err
}

func (r *Customers) Modify(ctx context.Context, id string, upd domain.CustomerUpdate) (domain.Customer, error) {
	var out domain.Customer
	p, err := idPath("customer", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodPatch, "customers.modify", p, upd, &out)
	return out, err
}

func (r *Customers) Delete(ctx context.Context, id string) error {
	p, err := idPath("customer", id)
	if err != nil {
		return err
	}
	return r.c.do(ctx, http.MethodDelete, "customers.delete", p, nil, nil)
}

func (r *Customers) List(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.c.do(ctx, http.MethodGet, "customers.list", "/v1/customers", nil, &out)
	return out, err
}

type Hotels struct{ c *Client }

var _ domain.Hotels = (*Hotels)(nil)

func (r *Hotels) Create(ctx context.Context, id, name, location string, rooms int) (domain.Hotel, error) {
	var out domain.Hotel
	in := struct {
		ID       string `json:"hotel_id"`
		Name     string `json:"name"`
		Location string `json:"location"`
		Rooms    int    `json:"rooms"`
	}{id, name, location, rooms}
	err := r.c.do(ctx, http.MethodPost, "hotels.create", "/v1/hotels", in, &out)
	return out, err
}

func (r *Hotels) Find(ctx context.Context, id string) (domain.Hotel, error) {
	var out domain.Hotel
	p, err := idPath("hotel", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodGet, "hotels.get", p, nil, &out)
	return out, err
}

func (r *Hotels) Modify(ctx context.Context, id string, upd domain.HotelUpdate) (domain.Hotel, error) {
	var out domain.Hotel
	p, err := idPath("hotel", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodPatch, "hotels.modify", p, upd, &out)
	return out, err
}

func (r *Hotels) Delete(ctx context.Context, id string) error {
	p, err := idPath("hotel", id)
	if err != nil {
		return err
	}
	return r.c.do(ctx, http.MethodDelete, "hotels.delete", p, nil, nil)
}

func (r *Hotels) List(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	err := r.c.do(ctx, http.MethodGet, "hotels.list", "/v1/hotels", nil, &out)
	return out, err
}

func (r *Hotels) Reserve(ctx context.Context, id string) (domain.Hotel, error) {
	var out domain.Hotel
	p, err := idPath("hotel", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodPost, "hotels.reserve", p+"/reserve", nil, &out)
	return out, err
}

func (r *Hotels) Release(ctx context.Context, id string) (domain.Hotel, error) {
	var out domain.Hotel
	p, err := idPath("hotel", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodPost, "hotels.release", p+"/release", nil, &out)
	return out, err
}

type Reservations struct{ c *Client }

var _ domain.Reservations = (*Reservations)(nil)

func (r *Reservations) Create(ctx context.Context, id, customerID, hotelID string) (domain.Reservation, error) {
	var out domain.Reservation
	in := domain.Reservation{ID: id, CustomerID: customerID, HotelID: hotelID}
	err := r.c.do(ctx, http.MethodPost, "reservations.create", "/v1/reservations", in, &out)
	return out, err
}

func (r *Reservations) Find(ctx context.Context, id string) (domain.Reservation, error) {
	var out domain.Reservation
	p, err := idPath("reservation", id)
	if err != nil {
		return out, err
	}
	err = r.c.do(ctx, http.MethodGet, "reservations.get", p, nil, &out)
	return out, err
}

func (r *Reservations) Cancel(ctx context.Context, id string) error {
	p, err := idPath("reservation", id)
	if err != nil {
		return err
	}
	return r.c.do(ctx, http.MethodDelete, "reservations.cancel", p, nil, nil)
}

func (r *Reservations) List(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.c.do(ctx, http.MethodGet, "reservations.list", "/v1/reservations", nil, &out)
	return out, err
}

package domain

import "context"

// DocumentStore reads and writes whole named documents. Load returns
// ErrDocumentMissing when nothing was saved under name yet.
type DocumentStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

type Customers interface {
	Create(ctx context.Context, id, name, email string) (Customer, error)
	Find(ctx context.Context, id string) (Customer, error)
	Modify(ctx context.Context, id string, upd CustomerUpdate) (Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Customer, error)
}

type Hotels interface {
	Create(ctx context.Context, id, name, location string, rooms int) (Hotel, error)
	Find(ctx context.Context, id string) (Hotel, error)
	Modify(ctx context.Context, id string, upd HotelUpdate) (Hotel, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Hotel, error)

	// Room counter mutators
	Reserve(ctx context.Context, id string) (Hotel, error)
	Release(ctx context.Context, id string) (Hotel, error)
}

type Reservations interface {
	Create(ctx context.Context, id, customerID, hotelID string) (Reservation, error)
	Find(ctx context.Context, id string) (Reservation, error)
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]Reservation, error)
}

package app

import (
	"context"
	"strings"
	"time"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

const DefaultCustomersFile = "customers.json"

type CustomerStore struct {
	records collection[domain.Customer]
}

func NewCustomerStore(docs domain.DocumentStore, name string) *CustomerStore {
	if name == "" {
		name = DefaultCustomersFile
	}
	return &CustomerStore{records: collection[domain.Customer]{docs: docs, name: name}}
}

var _ domain.Customers = (*CustomerStore)(nil)

func validEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

func (s *CustomerStore) Create(ctx context.Context, id, name, email string) (c domain.Customer, err error) {
	defer observe("customers", "create", time.Now(), &err)

	if id == "" || name == "" {
		return domain.Customer{}, domain.Errorf(domain.KindInvalidInput, "customer_id and name are required")
	}
	if !validEmail(email) {
		return domain.Customer{}, domain.Errorf(domain.KindInvalidEmail, "a valid email is required, got %q", email)
	}

	all := s.records.loadAll(ctx)
	if indexCustomer(all, id) >= 0 {
		return domain.Customer{}, domain.Errorf(domain.KindAlreadyExists, "customer %q already exists", id)
	}

	c = domain.Customer{ID: id, Name: name, Email: email}
	if err := s.records.saveAll(ctx, append(all, c)); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *CustomerStore) Delete(ctx context.Context, id string) (err error) {
	defer observe("customers", "delete", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexCustomer(all, id)
	if i < 0 {
		return customerNotFound(id)
	}
	return s.records.saveAll(ctx, append(all[:i], all[i+1:]...))
}

func (s *CustomerStore) Find(ctx context.Context, id string) (c domain.Customer, err error) {
	defer observe("customers", "find", time.Now(), &err)

	all := s.records.loadAll(ctx)
	if i := indexCustomer(all, id); i >= 0 {
		return all[i], nil
	}
	return domain.Customer{}, customerNotFound(id)
}

// Modify applies only the fields set in upd. A supplied email is validated
// before anything is written.
func (s *CustomerStore) Modify(ctx context.Context, id string, upd domain.CustomerUpdate) (c domain.Customer, err error) {
	defer observe("customers", "modify", time.Now(), &err)

	all := s.records.loadAll(ctx)
	i := indexCustomer(all, id)
	if i < 0 {
		return domain.Customer{}, customerNotFound(id)
	}
	if upd.Email != nil && !validEmail(*upd.Email) {
		return domain.Customer{}, domain.Errorf(domain.KindInvalidEmail, "a valid email is required, got %q", *upd.Email)
	}

	if upd.Name != nil {
		all[i].Name = *upd.Name
	}
	if upd.Email != nil {
		all[i].Email = *upd.Email
	}
	if err := s.records.saveAll(ctx, all); err != nil {
		return domain.Customer{}, err
	}
	return all[i], nil
}

func (s *CustomerStore) List(ctx context.Context) ([]domain.Customer, error) {
	return s.records.loadAll(ctx), nil
}

func indexCustomer(all []domain.Customer, id string) int {
	for i, c := range all {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func customerNotFound(id string) error {
	return domain.Errorf(domain.KindNotFound, "customer %q not found", id)
}

func observe(store, op string, start time.Time, err *error) {
	observability.ObserveStore(store, op, *err, time.Since(start))
}

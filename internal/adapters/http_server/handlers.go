package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_booking/internal/domain"
)

// Handlers exposes the three stores over HTTP. The stores rewrite whole
// documents without locking, so every store call runs under a single-slot
// semaphore.
type Handlers struct {
	Customers    domain.Customers
	Hotels       domain.Hotels
	Reservations domain.Reservations

	sem *semaphore.Weighted
}

func NewHandlers(c domain.Customers, h domain.Hotels, r domain.Reservations) *Handlers {
	return &Handlers{Customers: c, Hotels: h, Reservations: r, sem: semaphore.NewWeighted(1)}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

type createCustomerReq struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createHotelReq struct {
	ID       string `json:"hotel_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int    `json:"rooms"`
}

type createReservationReq struct {
	ID         string `json:"reservation_id"`
	CustomerID string `json:"customer_id"`
	HotelID    string `json:"hotel_id"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(h.serialize)

		r.Get("/customers", h.listCustomers)
		r.Post("/customers", h.createCustomer)
		r.Get("/customers/{id}", h.getCustomer)
		r.Patch("/customers/{id}", h.modifyCustomer)
		r.Delete("/customers/{id}", h.deleteCustomer)

		r.Get("/hotels", h.listHotels)
		r.Post("/hotels", h.createHotel)
		r.Get("/hotels/{id}", h.getHotel)
		r.Patch("/hotels/{id}", h.modifyHotel)
		r.Delete("/hotels/{id}", h.deleteHotel)
		r.Post("/hotels/{id}/reserve", h.reserveRoom)
		r.Post("/hotels/{id}/release", h.releaseRoom)

		r.Get("/reservations", h.listReservations)
		r.Post("/reservations", h.createReservation)
		r.Get("/reservations/{id}", h.getReservation)
		r.Delete("/reservations/{id}", h.cancelReservation)
	})
}

func (h *Handlers) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.sem.Acquire(r.Context(), 1); err != nil {
			writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "gave up waiting for the store", "")
			return
		}
		defer h.sem.Release(1)
		next.ServeHTTP(w, r)
	})
}

// ---- customers ----

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Customers.List(r.Context())
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerReq
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.Customers.Create(r.Context(), req.ID, req.Name, req.Email)
	respond(w, r, http.StatusCreated, out, err)
}

func (h *Handlers) getCustomer(w http.ResponseWriter, r *http.Request) {
	out, err := h.Customers.Find(r.Context(), chi.URLParam(r, "id"))
	respondETag(w, r, out, err)
}

func (h *Handlers) modifyCustomer(w http.ResponseWriter, r *http.Request) {
	var upd domain.CustomerUpdate
	if !decodeBody(w, r, &upd) {
		return
	}
	out, err := h.Customers.Modify(r.Context(), chi.URLParam(r, "id"), upd)
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, r, h.Customers.Delete(r.Context(), chi.URLParam(r, "id")))
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hotels.List(r.Context())
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelReq
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.Hotels.Create(r.Context(), req.ID, req.Name, req.Location, req.Rooms)
	respond(w, r, http.StatusCreated, out, err)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hotels.Find(r.Context(), chi.URLParam(r, "id"))
	respondETag(w, r, out, err)
}

func (h *Handlers) modifyHotel(w http.ResponseWriter, r *http.Request) {
	var upd domain.HotelUpdate
	if !decodeBody(w, r, &upd) {
		return
	}
	out, err := h.Hotels.Modify(r.Context(), chi.URLParam(r, "id"), upd)
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, r, h.Hotels.Delete(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handlers) reserveRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hotels.Reserve(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) releaseRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hotels.Release(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, http.StatusOK, out, err)
}

// ---- reservations ----

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reservations.List(r.Context())
	respond(w, r, http.StatusOK, out, err)
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationReq
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.Reservations.Create(r.Context(), req.ID, req.CustomerID, req.HotelID)
	respond(w, r, http.StatusCreated, out, err)
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reservations.Find(r.Context(), chi.URLParam(r, "id"))
	respondETag(w, r, out, err)
}

func (h *Handlers) cancelReservation(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, r, h.Reservations.Cancel(r.Context(), chi.URLParam(r, "id")))
}

// ---- plumbing ----

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Malformed body", err.Error(), "")
		return false
	}
	return true
}

// StatusFor maps a store failure onto an HTTP status.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAlreadyExists, domain.KindCapacityExhausted, domain.KindAllRoomsAvailable:
		return http.StatusConflict
	case domain.KindInvalidInput, domain.KindInvalidEmail, domain.KindInvalidRoomCount:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("store operation failed")
		writeProblem(w, status, http.StatusText(status), "internal error", "")
		return
	}
	var de *domain.Error
	errors.As(err, &de)
	writeProblem(w, status, http.StatusText(status), err.Error(), string(de.Kind))
}

func writeProblem(w http.ResponseWriter, status int, title, detail, kind string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Kind: kind}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func respondEmpty(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondETag writes a single record with a weak ETag, answering 304 when
// the client already holds this version.
func respondETag(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

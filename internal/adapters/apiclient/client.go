// Package apiclient talks to the hotel HTTP API and exposes it through the
// same interfaces as the local stores.
package apiclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter

	Customers    *Customers
	Hotels       *Hotels
	Reservations *Reservations
}

func New(base string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", base)
	}
	if rps <= 0 {
		rps = 10
	}
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
	c.Customers = &Customers{c: c}
	c.Hotels = &Hotels{c: c}
	c.Reservations = &Reservations{c: c}
	return c, nil
}

// ---- Internals ----

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Kind   string `json:"kind"`
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
// GETs are retried on 429 and transient 5xx, honoring Retry-After; other
// methods are sent once since they are not idempotent.
func (c *Client) do(ctx context.Context, method, endpoint, path string, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
	}
	attempts := 1
	if method == http.MethodGet {
		attempts = 4
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := c.rl.Wait(ctx); err != nil {
			return err
		}
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "hotelctl/1.0")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("hotel-api", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < attempts-1 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}
		observability.ObserveExternal("hotel-api", endpoint, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			defer resp.Body.Close()
			if out == nil {
				return nil
			}
			return json.NewDecoder(resp.Body).Decode(out)

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			wait := retryAfter(resp)
			lastErr = decodeProblem(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			if i < attempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			err := decodeProblem(resp)
			resp.Body.Close()
			return err
		}
	}
	return lastErr
}

// decodeProblem turns a problem+json body back into a tagged *domain.Error
// when the server supplied a kind.
func decodeProblem(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var p problem
	if err := json.Unmarshal(b, &p); err == nil && p.Kind != "" {
		return &domain.Error{Kind: domain.Kind(p.Kind), Msg: p.Detail}
	}
	if p.Detail != "" {
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, p.Detail)
	}
	return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}

// idPath builds /v1/<entity>s/<id>. An empty id can never match a record,
// so it is answered locally the way a store would.
func idPath(entity, id string) (string, error) {
	if id == "" {
		return "", domain.Errorf(domain.KindNotFound, "%s %q not found", entity, id)
	}
	return "/v1/" + entity + "s/" + url.PathEscape(id), nil
}

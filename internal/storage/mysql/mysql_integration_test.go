//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

// startMySQL runs an isolated MySQL container and returns an open handle.
func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotel",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "hotel")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_DocumentsBackStores(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// idempotent
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("Migrate twice: %v", err)
	}

	if _, err := repo.Load(ctx, "customers.json"); !errors.Is(err, domain.ErrDocumentMissing) {
		t.Fatalf("expected ErrDocumentMissing, got %v", err)
	}

	customers := app.NewCustomerStore(repo, "")
	hotels := app.NewHotelStore(repo, "")
	reservations := app.NewReservationStore(repo, "", customers, hotels)

	if _, err := customers.Create(ctx, "C1", "Hélène", "helene@example.com"); err != nil {
		t.Fatalf("customer: %v", err)
	}
	if _, err := hotels.Create(ctx, "H1", "Grand", "CDMX", 2); err != nil {
		t.Fatalf("hotel: %v", err)
	}
	if _, err := reservations.Create(ctx, "R1", "C1", "H1"); err != nil {
		t.Fatalf("reservation: %v", err)
	}

	h, err := hotels.Find(ctx, "H1")
	if err != nil || h.RoomsAvailable != 1 {
		t.Fatalf("hotel after reserve: %+v, %v", h, err)
	}
	c, err := customers.Find(ctx, "C1")
	if err != nil || c.Name != "Hélène" {
		t.Fatalf("utf8 round trip: %+v, %v", c, err)
	}

	if err := reservations.Cancel(ctx, "R1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if h, _ := hotels.Find(ctx, "H1"); h.RoomsAvailable != 2 {
		t.Fatalf("rooms_available after cancel = %d, want 2", h.RoomsAvailable)
	}
}

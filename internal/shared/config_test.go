package shared_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel_booking/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	c := shared.Load()

	if c.Backend != "file" {
		t.Errorf("Backend = %v, want %v", c.Backend, "file")
	}
	if c.CustomersFile != "customers.json" || c.HotelsFile != "hotels.json" || c.ReservationsFile != "reservations.json" {
		t.Errorf("unexpected default files: %+v", c)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %v, want %v", c.HTTPAddr, ":8080")
	}
	if c.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", c.RequestTimeout, 15*time.Second)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("HOTELS_FILE", "/srv/data/h.json")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "2")

	c := shared.Load()
	if c.Backend != "redis" {
		t.Errorf("Backend = %v, want %v", c.Backend, "redis")
	}
	if c.HotelsFile != "/srv/data/h.json" {
		t.Errorf("HotelsFile = %v, want %v", c.HotelsFile, "/srv/data/h.json")
	}
	if c.RedisDB != 3 {
		t.Errorf("RedisDB = %v, want %v", c.RedisDB, 3)
	}
	if c.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", c.RequestTimeout, 2*time.Second)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "store_backend: sqlite\nsqlite_path: /tmp/x.db\ndata_dir: ./data\n"
	if err := os.WriteFile(filepath.Join(dir, "hotel.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DATA_DIR", "/override")

	c := shared.Load()
	if c.Backend != "sqlite" || c.SQLitePath != "/tmp/x.db" {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.DataDir != "/override" {
		t.Errorf("DataDir = %v, want env to win over file", c.DataDir)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

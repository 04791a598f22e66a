package sqlite

import (
	"path/filepath"
	"testing"
)

// setupTestStore creates an initialized store in a temp directory.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	cleanup := func() {
		store.Close()
	}

	return store, cleanup
}

func TestInit(t *testing.T) {
	t.Run("creates all tables", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		for _, table := range RequiredTables {
			exists, err := store.tableExists(table)
			if err != nil {
				t.Errorf("tableExists(%s) returned unexpected error: %v", table, err)
			}
			if !exists {
				t.Errorf("tableExists(%s) = false, want true after Init", table)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddFood("Apple", 95, "2024-01-15"); err != nil {
			t.Fatalf("failed to add food: %v", err)
		}

		// A second Init must not clobber existing data
		if err := store.Init(); err != nil {
			t.Fatalf("second Init() returned error: %v", err)
		}

		entries, err := store.GetFoodEntries("2024-01-15")
		if err != nil {
			t.Fatalf("failed to get food entries: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("got %d entries after re-init, want 1", len(entries))
		}
	})

	t.Run("stamps schema version", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		var version int
		if err := store.db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
			t.Fatalf("failed to read schema version: %v", err)
		}
		if version != SchemaVersion {
			t.Errorf("schema version = %d, want %d", version, SchemaVersion)
		}
	})

	t.Run("writes default settings", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if !settings.NotificationsEnabled {
			t.Error("default NotificationsEnabled = false, want true")
		}
		if settings.FoodAIEnabled {
			t.Error("default FoodAIEnabled = true, want false")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("fails on missing file", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
		if err := store.Load(); err == nil {
			t.Error("Load() = nil, want error for missing database")
		}
	})

	t.Run("accepts an initialized database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		first := NewStore(dbPath)
		if err := first.Init(); err != nil {
			t.Fatalf("failed to init: %v", err)
		}
		first.Close()

		second := NewStore(dbPath)
		if err := second.Load(); err != nil {
			t.Errorf("Load() returned unexpected error: %v", err)
		}
		second.Close()
	})

	t.Run("rejects a database missing tables", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "partial.db")
		store := NewStore(dbPath)
		if err := store.Init(); err != nil {
			t.Fatalf("failed to init: %v", err)
		}
		if _, err := store.db.Exec("DROP TABLE foods"); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}
		store.Close()

		fresh := NewStore(dbPath)
		if err := fresh.Load(); err == nil {
			t.Error("Load() = nil, want error for database missing a table")
		}
	})

	t.Run("rejects a schema version mismatch", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "versioned.db")
		store := NewStore(dbPath)
		if err := store.Init(); err != nil {
			t.Fatalf("failed to init: %v", err)
		}
		if _, err := store.db.Exec("UPDATE schema_version SET version = 999"); err != nil {
			t.Fatalf("failed to bump version: %v", err)
		}
		store.Close()

		fresh := NewStore(dbPath)
		if err := fresh.Load(); err == nil {
			t.Error("Load() = nil, want error for schema version mismatch")
		}
	})
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	want, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	want.FoodAIEnabled = true
	want.SilentNotifications = true

	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got != want {
		t.Errorf("settings round trip = %+v, want %+v", got, want)
	}
}

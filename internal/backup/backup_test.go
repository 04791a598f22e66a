package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mindfulmauschen/healthtrack/internal/storage/sqlite"
)

// setupTestDB initializes a real database and a manager pointed at it.
func setupTestDB(t *testing.T) (*Manager, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "healthtrack.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	if _, err := store.AddFood("Apple", 95, "2024-01-15"); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}

	return NewManager(dbPath), dbPath
}

func TestCreateBackup(t *testing.T) {
	t.Run("creates a backup file", func(t *testing.T) {
		m, _ := setupTestDB(t)

		path, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("backup file not found: %v", err)
		}
		if info.Size() == 0 {
			t.Error("backup file is empty")
		}
		if !strings.HasPrefix(filepath.Base(path), "healthtrack-") {
			t.Errorf("backup name %q missing prefix", filepath.Base(path))
		}
	})

	t.Run("fails when database is missing", func(t *testing.T) {
		m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
		if _, err := m.CreateBackup(); err == nil {
			t.Error("CreateBackup() = nil, want error for missing database")
		}
	})

	t.Run("backup is a loadable database", func(t *testing.T) {
		m, _ := setupTestDB(t)

		path, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}

		restored := sqlite.NewStore(path)
		if err := restored.Load(); err != nil {
			t.Fatalf("backup failed to load: %v", err)
		}
		defer restored.Close()

		entries, err := restored.GetFoodEntries("2024-01-15")
		if err != nil {
			t.Fatalf("failed to read backup contents: %v", err)
		}
		if len(entries) != 1 || entries[0].Name != "Apple" {
			t.Errorf("backup contents = %+v, want the seeded Apple entry", entries)
		}
	})
}

func TestListBackups(t *testing.T) {
	t.Run("empty when no backups exist", func(t *testing.T) {
		m, _ := setupTestDB(t)

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned unexpected error: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("got %d backups, want 0", len(backups))
		}
	})

	t.Run("lists created backups", func(t *testing.T) {
		m, _ := setupTestDB(t)

		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned unexpected error: %v", err)
		}
		if len(backups) != 1 {
			t.Errorf("got %d backups, want 1", len(backups))
		}
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		m, _ := setupTestDB(t)

		if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
			t.Fatalf("failed to create backup dir: %v", err)
		}
		junk := filepath.Join(m.GetBackupDir(), "notes.txt")
		if err := os.WriteFile(junk, []byte("hi"), 0600); err != nil {
			t.Fatalf("failed to write junk file: %v", err)
		}

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned unexpected error: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("got %d backups, want 0 (junk file should be skipped)", len(backups))
		}
	})
}

func TestImport(t *testing.T) {
	t.Run("round trip via export", func(t *testing.T) {
		m, dbPath := setupTestDB(t)

		exportPath := filepath.Join(t.TempDir(), "export.db")
		if err := m.Export(exportPath); err != nil {
			t.Fatalf("Export() returned unexpected error: %v", err)
		}

		// Change the live database, then import the export back
		store := sqlite.NewStore(dbPath)
		if err := store.Load(); err != nil {
			t.Fatalf("failed to load store: %v", err)
		}
		if _, err := store.AddFood("Banana", 105, "2024-01-16"); err != nil {
			t.Fatalf("failed to add food: %v", err)
		}
		store.Close()

		if err := m.Import(exportPath); err != nil {
			t.Fatalf("Import() returned unexpected error: %v", err)
		}

		restored := sqlite.NewStore(dbPath)
		if err := restored.Load(); err != nil {
			t.Fatalf("failed to load restored store: %v", err)
		}
		defer restored.Close()

		entries, err := restored.GetFoodEntries("2024-01-16")
		if err != nil {
			t.Fatalf("failed to read restored store: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("restored store has %d entries from after the export, want 0", len(entries))
		}
	})

	t.Run("rejects a non-database file and leaves the store untouched", func(t *testing.T) {
		m, dbPath := setupTestDB(t)

		junk := filepath.Join(t.TempDir(), "junk.db")
		if err := os.WriteFile(junk, []byte("not a database"), 0600); err != nil {
			t.Fatalf("failed to write junk file: %v", err)
		}

		if err := m.Import(junk); err == nil {
			t.Error("Import(junk) = nil, want error")
		}

		store := sqlite.NewStore(dbPath)
		if err := store.Load(); err != nil {
			t.Fatalf("store failed to load after rejected import: %v", err)
		}
		defer store.Close()

		entries, err := store.GetFoodEntries("2024-01-15")
		if err != nil {
			t.Fatalf("failed to read store: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("store has %d entries after rejected import, want 1", len(entries))
		}
	})

	t.Run("rejects a database missing required tables", func(t *testing.T) {
		m, _ := setupTestDB(t)

		// A valid SQLite file that lacks the expected schema
		otherPath := filepath.Join(t.TempDir(), "other.db")
		other := sqlite.NewStore(otherPath)
		if err := other.Init(); err != nil {
			t.Fatalf("failed to init other database: %v", err)
		}
		if _, err := other.GetDB().Exec("DROP TABLE weights"); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}
		other.Close()

		err := m.Import(otherPath)
		if err == nil {
			t.Fatal("Import(missing table) = nil, want error")
		}
		if !strings.Contains(err.Error(), "missing table") {
			t.Errorf("Import(missing table) error = %v, want a missing-table message", err)
		}
	})

	t.Run("rejects a schema version mismatch", func(t *testing.T) {
		m, _ := setupTestDB(t)

		otherPath := filepath.Join(t.TempDir(), "other.db")
		other := sqlite.NewStore(otherPath)
		if err := other.Init(); err != nil {
			t.Fatalf("failed to init other database: %v", err)
		}
		if _, err := other.GetDB().Exec("UPDATE schema_version SET version = 999"); err != nil {
			t.Fatalf("failed to bump version: %v", err)
		}
		other.Close()

		err := m.Import(otherPath)
		if err == nil {
			t.Fatal("Import(version mismatch) = nil, want error")
		}
		if !strings.Contains(err.Error(), "schema version") {
			t.Errorf("Import(version mismatch) error = %v, want a schema-version message", err)
		}
	})

	t.Run("missing import file fails", func(t *testing.T) {
		m, _ := setupTestDB(t)
		if err := m.Import(filepath.Join(t.TempDir(), "nope.db")); err == nil {
			t.Error("Import(missing file) = nil, want error")
		}
	})
}

package sqlite

import (
	"errors"
	"testing"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func TestPantry(t *testing.T) {
	t.Run("add and list", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddPantryItem("Rice", 1000); err != nil {
			t.Fatalf("AddPantryItem() returned unexpected error: %v", err)
		}
		if _, err := store.AddPantryItem("Lentils", 500); err != nil {
			t.Fatalf("AddPantryItem() returned unexpected error: %v", err)
		}

		items, err := store.GetPantryItems()
		if err != nil {
			t.Fatalf("GetPantryItems() returned unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("got %d pantry items, want 2", len(items))
		}
		if items[0].Item != "Rice" || items[0].Weight != 1000 {
			t.Errorf("got %+v, want Rice/1000", items[0])
		}
	})

	t.Run("rejects blank item and negative weight", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddPantryItem("", 100); !errors.Is(err, models.ErrInvalid) {
			t.Errorf("AddPantryItem(blank) error = %v, want ErrInvalid", err)
		}
		if _, err := store.AddPantryItem("Rice", -1); !errors.Is(err, models.ErrInvalid) {
			t.Errorf("AddPantryItem(negative weight) error = %v, want ErrInvalid", err)
		}
	})

	t.Run("batch delete is all or nothing", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		id1, err := store.AddPantryItem("Rice", 1000)
		if err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		id2, err := store.AddPantryItem("Lentils", 500)
		if err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		// One bad id rolls back the whole batch
		err = store.DeletePantryItems([]int64{id1, 9999})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeletePantryItems(with bad id) error = %v, want ErrNotFound", err)
		}
		items, err := store.GetPantryItems()
		if err != nil {
			t.Fatalf("GetPantryItems() returned unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("got %d items after failed batch delete, want 2", len(items))
		}

		if err := store.DeletePantryItems([]int64{id1, id2}); err != nil {
			t.Fatalf("DeletePantryItems() returned unexpected error: %v", err)
		}
		items, err = store.GetPantryItems()
		if err != nil {
			t.Fatalf("GetPantryItems() returned unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("got %d items after batch delete, want 0", len(items))
		}
	})

	t.Run("clear empties the pantry", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddPantryItem("Rice", 1000); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if err := store.ClearPantry(); err != nil {
			t.Fatalf("ClearPantry() returned unexpected error: %v", err)
		}
		items, err := store.GetPantryItems()
		if err != nil {
			t.Fatalf("GetPantryItems() returned unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("got %d items after clear, want 0", len(items))
		}
	})
}

func TestShoppingList(t *testing.T) {
	t.Run("add and list", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddShoppingItem("Milk"); err != nil {
			t.Fatalf("AddShoppingItem() returned unexpected error: %v", err)
		}

		items, err := store.GetShoppingItems()
		if err != nil {
			t.Fatalf("GetShoppingItems() returned unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Item != "Milk" {
			t.Errorf("got %+v, want one Milk item", items)
		}
	})

	t.Run("batch add skips blank lines", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if err := store.AddShoppingItems([]string{"Milk", "  ", "Eggs", ""}); err != nil {
			t.Fatalf("AddShoppingItems() returned unexpected error: %v", err)
		}

		items, err := store.GetShoppingItems()
		if err != nil {
			t.Fatalf("GetShoppingItems() returned unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("got %d items, want 2", len(items))
		}
	})

	t.Run("clear empties the list", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if err := store.AddShoppingItems([]string{"Milk", "Eggs"}); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if err := store.ClearShoppingList(); err != nil {
			t.Fatalf("ClearShoppingList() returned unexpected error: %v", err)
		}
		items, err := store.GetShoppingItems()
		if err != nil {
			t.Fatalf("GetShoppingItems() returned unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("got %d items after clear, want 0", len(items))
		}
	})
}

package sqlite

import (
	"fmt"
	"strings"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func (s *Store) AddPantryItem(item string, weight int) (int64, error) {
	p := models.PantryItem{Item: item, Weight: weight}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec("INSERT INTO pantry (item, weight) VALUES (?, ?)", item, weight)
	if err != nil {
		return 0, fmt.Errorf("failed to add pantry item: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetPantryItems() ([]models.PantryItem, error) {
	rows, err := s.db.Query("SELECT id, item, weight FROM pantry ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry: %w", err)
	}
	defer rows.Close()

	var items []models.PantryItem
	for rows.Next() {
		var p models.PantryItem
		if err := rows.Scan(&p.ID, &p.Item, &p.Weight); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// DeletePantryItems removes the rows with the given ids in one transaction.
// Every id must exist or nothing is deleted.
func (s *Store) DeletePantryItems(ids []int64) error {
	return s.deleteByIDs("pantry", ids)
}

func (s *Store) ClearPantry() error {
	if _, err := s.db.Exec("DELETE FROM pantry"); err != nil {
		return fmt.Errorf("failed to clear pantry: %w", err)
	}
	return nil
}

func (s *Store) AddShoppingItem(item string) (int64, error) {
	i := models.ShoppingItem{Item: item}
	if err := i.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec("INSERT INTO shopping_list (item) VALUES (?)", item)
	if err != nil {
		return 0, fmt.Errorf("failed to add shopping item: %w", err)
	}
	return res.LastInsertId()
}

// AddShoppingItems inserts a batch of items in one transaction, skipping
// blank lines. Used when adopting an AI-generated list.
func (s *Store) AddShoppingItems(items []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO shopping_list (item) VALUES (?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, err := stmt.Exec(item); err != nil {
			return fmt.Errorf("failed to add shopping item %q: %w", item, err)
		}
	}
	return tx.Commit()
}

func (s *Store) GetShoppingItems() ([]models.ShoppingItem, error) {
	rows, err := s.db.Query("SELECT id, item FROM shopping_list ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping list: %w", err)
	}
	defer rows.Close()

	var items []models.ShoppingItem
	for rows.Next() {
		var i models.ShoppingItem
		if err := rows.Scan(&i.ID, &i.Item); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (s *Store) DeleteShoppingItems(ids []int64) error {
	return s.deleteByIDs("shopping_list", ids)
}

func (s *Store) ClearShoppingList() error {
	if _, err := s.db.Exec("DELETE FROM shopping_list"); err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}
	return nil
}

func (s *Store) deleteByIDs(table string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range ids {
		res, err := stmt.Exec(id)
		if err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s item %d", storage.ErrNotFound, table, id)
		}
	}
	return tx.Commit()
}

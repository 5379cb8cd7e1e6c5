package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inventorypro/internal/model"
)

// CreateItem creates a new item referencing already-uploaded image URLs.
// The additional image URLs keep their given order.
func CreateItem(ctx context.Context, db *sql.DB, userID, name, category, description, coverImage string, additionalImages []string) (*model.Item, error) {
	if additionalImages == nil {
		additionalImages = []string{}
	}
	extra, err := json.Marshal(additionalImages)
	if err != nil {
		return nil, fmt.Errorf("encoding additional images: %w", err)
	}

	// CURRENT_TIMESTAMP only has second precision, which breaks newest-first
	// ordering for items created in the same second.
	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO items (id, user_id, name, category, description, cover_image, additional_images, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, name, category, description, coverImage, string(extra), time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item := &model.Item{}
	var extra string
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, name, category, description, cover_image, additional_images, created_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.UserID, &item.Name, &item.Category, &item.Description,
		&item.CoverImage, &extra, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	if err := json.Unmarshal([]byte(extra), &item.AdditionalImages); err != nil {
		return nil, fmt.Errorf("decoding additional images: %w", err)
	}
	return item, nil
}

// ListItems returns all items owned by a user, newest first.
func ListItems(ctx context.Context, db *sql.DB, userID string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, name, category, description, cover_image, additional_images, created_at
		 FROM items WHERE user_id = ? ORDER BY created_at DESC, id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var extra string
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Category, &item.Description,
			&item.CoverImage, &extra, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if err := json.Unmarshal([]byte(extra), &item.AdditionalImages); err != nil {
			return nil, fmt.Errorf("decoding additional images: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

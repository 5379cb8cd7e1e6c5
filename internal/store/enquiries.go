package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inventorypro/internal/model"
)

// CreateEnquiry records an anonymous enquiry about an item. ownerID is the
// item owner's id, denormalized so the inbox query never needs the caller's
// identity resolved through the items table.
func CreateEnquiry(ctx context.Context, db *sql.DB, ownerID, itemID, enquirerEmail, message string) (*model.Enquiry, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO enquiries (id, user_id, item_id, enquirer_email, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, ownerID, itemID, enquirerEmail, message, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enquiry: %w", err)
	}

	return GetEnquiry(ctx, db, id)
}

// GetEnquiry returns an enquiry by ID.
func GetEnquiry(ctx context.Context, db *sql.DB, id string) (*model.Enquiry, error) {
	e := &model.Enquiry{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, item_id, enquirer_email, message, created_at
		 FROM enquiries WHERE id = ?`, id,
	).Scan(&e.ID, &e.UserID, &e.ItemID, &e.EnquirerEmail, &e.Message, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting enquiry: %w", err)
	}
	return e, nil
}

// ListEnquiries returns all enquiries addressed to a user's items, joined
// with each target item's summary, newest first.
func ListEnquiries(ctx context.Context, db *sql.DB, ownerID string) ([]model.Enquiry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT e.id, e.user_id, e.item_id, e.enquirer_email, e.message, e.created_at,
		        i.name AS item_name, i.category AS item_category, i.cover_image AS item_cover
		 FROM enquiries e
		 JOIN items i ON i.id = e.item_id
		 WHERE e.user_id = ?
		 ORDER BY e.created_at DESC, e.id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []model.Enquiry
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.EnquirerEmail, &e.Message, &e.CreatedAt,
			&e.ItemName, &e.ItemCategory, &e.ItemCover); err != nil {
			return nil, fmt.Errorf("scanning enquiry: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

package model

import (
	"fmt"
	"time"
)

// Enquiry represents a message from an anonymous visitor about one item.
// UserID is the item owner's id, denormalized so the inbox can be scoped
// without touching the items table.
type Enquiry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ItemID        string    `json:"item_id"`
	EnquirerEmail string    `json:"enquirer_email"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`

	// Joined item summary (not always populated).
	ItemName     string `json:"item_name,omitempty"`
	ItemCategory string `json:"item_category,omitempty"`
	ItemCover    string `json:"item_cover,omitempty"`
}

// DefaultEnquiryMessage is the message persisted when the enquirer leaves it empty.
func DefaultEnquiryMessage(itemName string) string {
	return fmt.Sprintf("I'm interested in your %s. Please contact me for more details.", itemName)
}

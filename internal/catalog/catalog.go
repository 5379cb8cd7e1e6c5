// Package catalog implements the in-memory search and filter logic the item
// and enquiry listings apply on top of an owner's full record set.
package catalog

import (
	"slices"
	"strings"

	"inventorypro/internal/model"
)

// FilterItems returns the items matching both predicates: search (empty, or a
// case-insensitive substring of name or description) and category (empty, or
// an exact match). The result is always a subset of items, in the same order.
func FilterItems(items []model.Item, search, category string) []model.Item {
	filtered := make([]model.Item, 0, len(items))
	for _, item := range items {
		if !matches(search, item.Name, item.Description) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// FilterEnquiries returns the enquiries whose enquirer email, item name, or
// message contains the search term case-insensitively.
func FilterEnquiries(enquiries []model.Enquiry, search string) []model.Enquiry {
	filtered := make([]model.Enquiry, 0, len(enquiries))
	for _, e := range enquiries {
		if matches(search, e.EnquirerEmail, e.ItemName, e.Message) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ItemCategories returns the distinct categories present in items, sorted
// alphabetically. This drives the filter control, so only categories the
// owner actually uses appear.
func ItemCategories(items []model.Item) []string {
	var categories []string
	for _, item := range items {
		if !slices.Contains(categories, item.Category) {
			categories = append(categories, item.Category)
		}
	}
	slices.Sort(categories)
	return categories
}

// matches reports whether search is empty or a case-insensitive substring of
// any of the fields.
func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

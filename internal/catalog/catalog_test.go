package catalog

import (
	"slices"
	"strings"
	"testing"

	"inventorypro/internal/model"
)

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "Red Bike", Category: "Sports Gear", Description: "A fast red bike"},
		{ID: "2", Name: "Blue Shirt", Category: "Shirt", Description: "Cotton, size M"},
		{ID: "3", Name: "Running Shoes", Category: "Shoes", Description: "Barely worn"},
		{ID: "4", Name: "Old Bike", Category: "Sports Gear", Description: "Needs new brakes"},
	}
}

func TestFilterItemsBySearch(t *testing.T) {
	items := sampleItems()

	got := FilterItems(items, "bike", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 items matching 'bike', got %d", len(got))
	}
	for _, item := range got {
		name := strings.ToLower(item.Name)
		desc := strings.ToLower(item.Description)
		if !strings.Contains(name, "bike") && !strings.Contains(desc, "bike") {
			t.Errorf("item %q retained without matching field", item.Name)
		}
	}
}

func TestFilterItemsSearchIsCaseInsensitive(t *testing.T) {
	items := sampleItems()

	upper := FilterItems(items, "BIKE", "")
	lower := FilterItems(items, "bike", "")
	if len(upper) != len(lower) {
		t.Errorf("case changed result count: %d vs %d", len(upper), len(lower))
	}
}

func TestFilterItemsSearchesDescription(t *testing.T) {
	got := FilterItems(sampleItems(), "cotton", "")
	if len(got) != 1 || got[0].Name != "Blue Shirt" {
		t.Errorf("expected description match for 'cotton', got %v", got)
	}
}

func TestFilterItemsResultIsSubset(t *testing.T) {
	items := sampleItems()

	for _, search := range []string{"", "bike", "shirt", "zzz", "e"} {
		got := FilterItems(items, search, "")
		if len(got) > len(items) {
			t.Fatalf("filtered set larger than input for %q", search)
		}
		for _, item := range got {
			if !slices.ContainsFunc(items, func(i model.Item) bool { return i.ID == item.ID }) {
				t.Errorf("filtered item %q not in input set", item.ID)
			}
		}
	}
}

func TestFilterItemsCombinesSearchAndCategory(t *testing.T) {
	items := sampleItems()

	// Conjunction: both predicates must hold.
	got := FilterItems(items, "bike", "Sports Gear")
	if len(got) != 2 {
		t.Errorf("expected 2 sports-gear bikes, got %d", len(got))
	}

	got = FilterItems(items, "bike", "Shoes")
	if len(got) != 0 {
		t.Errorf("expected no shoe bikes, got %d", len(got))
	}

	got = FilterItems(items, "", "Shoes")
	if len(got) != 1 {
		t.Errorf("expected 1 shoes item, got %d", len(got))
	}
}

func TestFilterItemsEmptyFilters(t *testing.T) {
	items := sampleItems()
	got := FilterItems(items, "", "")
	if len(got) != len(items) {
		t.Errorf("expected all %d items with empty filters, got %d", len(items), len(got))
	}
}

func TestItemCategoriesDistinctAndSorted(t *testing.T) {
	got := ItemCategories(sampleItems())
	want := []string{"Shirt", "Shoes", "Sports Gear"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestItemCategoriesEmpty(t *testing.T) {
	if got := ItemCategories(nil); len(got) != 0 {
		t.Errorf("expected no categories for no items, got %v", got)
	}
}

func TestFilterEnquiries(t *testing.T) {
	enquiries := []model.Enquiry{
		{ID: "1", EnquirerEmail: "buyer@example.com", ItemName: "Red Bike", Message: "Still available?"},
		{ID: "2", EnquirerEmail: "other@example.com", ItemName: "Blue Shirt", Message: "What size is it?"},
	}

	if got := FilterEnquiries(enquiries, "buyer"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected email match, got %v", got)
	}
	if got := FilterEnquiries(enquiries, "shirt"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected item name match, got %v", got)
	}
	if got := FilterEnquiries(enquiries, "AVAILABLE"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected case-insensitive message match, got %v", got)
	}
	if got := FilterEnquiries(enquiries, ""); len(got) != 2 {
		t.Errorf("expected all enquiries for empty search, got %d", len(got))
	}
	if got := FilterEnquiries(enquiries, "nothing-matches"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

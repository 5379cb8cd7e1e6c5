package model

import "testing"

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}

	for _, c := range []string{"", "bike", "sports gear", "SHIRT"} {
		if ValidCategory(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestDefaultEnquiryMessage(t *testing.T) {
	got := DefaultEnquiryMessage("Red Bike")
	want := "I'm interested in your Red Bike. Please contact me for more details."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

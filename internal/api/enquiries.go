package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"inventorypro/internal/catalog"
	"inventorypro/internal/model"
	"inventorypro/internal/store"
)

// EnquiriesHandler handles enquiry submission and the owner's inbox.
type EnquiriesHandler struct {
	DB *sql.DB
}

type createEnquiryRequest struct {
	EnquirerEmail string `json:"enquirer_email"`
	Message       string `json:"message"`
}

// Create handles POST /api/items/{id}/enquiries. Unauthenticated: enquiries
// come from anonymous visitors. An empty message is replaced by a templated
// sentence referencing the item's name.
func (h *EnquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEnquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.EnquirerEmail == "" {
		jsonError(w, http.StatusBadRequest, "enquirer email required")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	message := req.Message
	if message == "" {
		message = model.DefaultEnquiryMessage(item.Name)
	}

	enquiry, err := store.CreateEnquiry(r.Context(), h.DB, item.UserID, item.ID, req.EnquirerEmail, message)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to send enquiry")
		return
	}

	slog.Info("enquiry received", "item", item.ID, "from", req.EnquirerEmail)
	jsonResponse(w, http.StatusCreated, enquiry)
}

// List handles GET /api/enquiries: the caller's inbox, joined with each
// target item's summary, newest first, with optional text search.
func (h *EnquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	enquiries, err := store.ListEnquiries(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list enquiries")
		return
	}

	enquiries = catalog.FilterEnquiries(enquiries, r.URL.Query().Get("search"))
	jsonResponse(w, http.StatusOK, enquiries)
}

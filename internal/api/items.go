package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"inventorypro/internal/blob"
	"inventorypro/internal/catalog"
	"inventorypro/internal/model"
	"inventorypro/internal/store"
)

// maxUploadBytes limits a creation request: one cover plus up to five
// additional images at ~10 MB each.
const maxUploadBytes = 64 << 20

// ItemsHandler handles item catalog endpoints.
type ItemsHandler struct {
	DB    *sql.DB
	Blobs blob.Store
}

// List handles GET /api/items. The owner's full item set is fetched newest
// first, then the search and category filters are applied in memory.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	items = catalog.FilterItems(items, r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	jsonResponse(w, http.StatusOK, items)
}

// Categories handles GET /api/categories: the distinct, sorted categories
// present in the owner's items, for the filter control.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	categories := catalog.ItemCategories(items)
	if categories == nil {
		categories = []string{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Get handles GET /api/items/{id}. Items are only visible to their owner.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil || item.UserID != claims.UserID {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items (multipart form). The cover image uploads
// first, then each additional image in the order submitted, then the item row
// is inserted referencing the uploaded URLs. The first failure aborts the
// request; blobs already uploaded at that point are left behind and logged.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "request too large or invalid multipart form")
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")
	description := r.FormValue("description")

	// Validation happens before any storage call.
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if description == "" {
		jsonError(w, http.StatusBadRequest, "description required")
		return
	}
	if !model.ValidCategory(category) {
		jsonError(w, http.StatusBadRequest, "invalid category")
		return
	}

	cover, coverHeader, err := r.FormFile("cover")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "cover image is required")
		return
	}
	defer cover.Close()

	additional := r.MultipartForm.File["additional"]
	if len(additional) > model.MaxAdditionalImages {
		additional = additional[:model.MaxAdditionalImages]
	}

	// All keys for one item share a timestamp so they group in the bucket.
	ts := time.Now().UnixMilli()

	coverKey := fmt.Sprintf("%s/%d-cover-%s", claims.UserID, ts, filepath.Base(coverHeader.Filename))
	if err := h.Blobs.Put(r.Context(), coverKey, coverHeader.Header.Get("Content-Type"), cover); err != nil {
		jsonError(w, http.StatusBadGateway, "uploading cover image: "+err.Error())
		return
	}
	coverURL := h.Blobs.PublicURL(coverKey)

	// Sequential uploads, URLs collected in submission order.
	additionalURLs := make([]string, 0, len(additional))
	uploadedKeys := []string{coverKey}
	for i, header := range additional {
		f, err := header.Open()
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid additional image")
			return
		}

		key := fmt.Sprintf("%s/%d-additional-%d-%s", claims.UserID, ts, i, filepath.Base(header.Filename))
		err = h.Blobs.Put(r.Context(), key, header.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			// No cleanup: already-uploaded assets stay behind.
			slog.Warn("additional image upload failed, earlier uploads orphaned",
				"user", claims.UserID, "orphaned", uploadedKeys, "error", err)
			jsonError(w, http.StatusBadGateway, "uploading additional image: "+err.Error())
			return
		}
		uploadedKeys = append(uploadedKeys, key)
		additionalURLs = append(additionalURLs, h.Blobs.PublicURL(key))
	}

	item, err := store.CreateItem(r.Context(), h.DB, claims.UserID, name, category, description, coverURL, additionalURLs)
	if err != nil {
		slog.Error("item insert failed, uploaded images orphaned",
			"user", claims.UserID, "orphaned", uploadedKeys, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	slog.Info("item created", "user", claims.UserID, "item", item.ID, "images", 1+len(additionalURLs))
	jsonResponse(w, http.StatusCreated, item)
}

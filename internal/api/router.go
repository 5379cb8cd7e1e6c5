package api

import (
	"database/sql"
	"net/http"

	"inventorypro/internal/blob"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, blobs blob.Store) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db, Blobs: blobs}
	enquiriesHandler := &EnquiriesHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation, sign-in, and anonymous enquiries.
	mux.HandleFunc("POST /api/auth/signup", authHandler.SignUp)
	mux.HandleFunc("POST /api/auth/signin", authHandler.SignIn)
	mux.HandleFunc("POST /api/items/{id}/enquiries", enquiriesHandler.Create)

	// Session.
	mux.Handle("POST /api/auth/signout", authMW(http.HandlerFunc(authHandler.SignOut)))
	mux.Handle("GET /api/auth/session", authMW(http.HandlerFunc(authHandler.Session)))

	// Item catalog (owner-scoped).
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("GET /api/categories", authMW(http.HandlerFunc(itemsHandler.Categories)))

	// Enquiry inbox.
	mux.Handle("GET /api/enquiries", authMW(http.HandlerFunc(enquiriesHandler.List)))

	return mux
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"inventorypro/internal/api"
	"inventorypro/internal/blob"
	"inventorypro/internal/db"
	"inventorypro/internal/store"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// setupBlobStore picks the storage backend: an S3-compatible bucket when the
// storage environment variables are set, a local directory otherwise. The
// returned handler is non-nil only for local storage and serves /uploads/.
func setupBlobStore(ctx context.Context, dataDir string) (blob.Store, http.Handler, error) {
	bucket := os.Getenv("BUCKET_NAME")
	if bucket != "" {
		s3Store, err := blob.NewS3(ctx, blob.S3Config{
			AccountID:       os.Getenv("ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("ACCESS_KEY_SECRET"),
			Bucket:          bucket,
			PublicBaseURL:   os.Getenv("PUBLIC_URL"),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("setting up bucket storage: %w", err)
		}
		slog.Info("using bucket storage", "bucket", bucket)
		return s3Store, nil, nil
	}

	local, err := blob.NewLocal(dataDir, "/uploads")
	if err != nil {
		return nil, nil, fmt.Errorf("setting up local storage: %w", err)
	}
	slog.Info("using local storage", "dir", dataDir)
	return local, local.Handler(), nil
}

func main() {
	fs := flag.NewFlagSet("inventorypro", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", "inventorypro.sqlite3", "")
	fs.StringVar(&dbPath, "d", "inventorypro.sqlite3", "")

	var addr string
	fs.StringVar(&addr, "addr", ":8080", "")
	fs.StringVar(&addr, "a", ":8080", "")

	var dataDir string
	fs.StringVar(&dataDir, "data", "uploads", "")

	var logPath string
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: inventorypro [flags]

Flags:
  -d, -db <path>          SQLite database path (default: inventorypro.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -data <dir>             local image storage directory (default: uploads)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Bucket storage is used instead of the local directory when BUCKET_NAME,
ACCOUNT_ID, ACCESS_KEY_ID, ACCESS_KEY_SECRET, and PUBLIC_URL are set in the
environment or a .env file.
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	// Storage credentials may come from a .env file; missing file is fine.
	_ = godotenv.Load()

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Open database and ensure schema exists (idempotent).
	database, err := db.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	slog.Info("database ready", "path", dbPath)

	// Load JWT secret from database (auto-generated on first run).
	jwtSecret, err := store.GetJWTSecret(context.Background(), database)
	if err != nil {
		slog.Error("failed to get JWT secret", "error", err)
		os.Exit(1)
	}

	blobs, uploadsHandler, err := setupBlobStore(context.Background(), dataDir)
	if err != nil {
		slog.Error("failed to set up image storage", "error", err)
		os.Exit(1)
	}

	// Combine: API routes, plus locally stored images when no bucket is configured.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database, jwtSecret, blobs))
	if uploadsHandler != nil {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", uploadsHandler))
	}

	handler := api.LoggingMiddleware(mux)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}

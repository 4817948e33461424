package httpx

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gencertify/gencertify/internal/service"
)

// RouterServices holds the services and settings needed by the HTTP router.
type RouterServices struct {
	Evaluations   *service.EvaluationService
	Documents     *service.DocumentService
	Organizations *service.OrganizationService
	Chat          *service.ChatService

	// FilesDir, when set, serves stored document blobs under /files/. The
	// download endpoint redirects here.
	FilesDir string
	// CORSOrigin is the allowed cross-origin value; empty allows any.
	CORSOrigin string
	Logger     *slog.Logger
}

// NewRouter creates and configures the API router with logging, panic
// recovery, and CORS middleware.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	registerEvaluationRoutes(mux, &EvaluationHandlers{Svc: services.Evaluations})
	registerDocumentRoutes(mux, &DocumentHandlers{Svc: services.Documents})
	registerOrganizationRoutes(mux, &OrganizationHandlers{Svc: services.Organizations})
	registerChatRoutes(mux, &ChatHandlers{Svc: services.Chat})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.FilesDir != "" {
		mux.Handle("GET /files/", http.StripPrefix("/files/", http.FileServer(http.Dir(services.FilesDir))))
	}

	var handler http.Handler = mux
	handler = CORS(services.CORSOrigin)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

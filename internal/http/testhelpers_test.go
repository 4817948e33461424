package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gencertify/gencertify/internal/data"
	"github.com/gencertify/gencertify/internal/domain/job"
	"github.com/gencertify/gencertify/internal/mocks"
	"github.com/gencertify/gencertify/internal/service"
)

// routerMocks exposes the mocked ports behind a fully wired test router.
type routerMocks struct {
	evalRepo *mocks.MockEvaluationRepository
	docRepo  *mocks.MockDocumentRepository
	orgRepo  *mocks.MockOrganizationRepository
	sessions *mocks.MockChatSessionStore
	provider *mocks.MockModelProvider
	blobs    *mocks.MockBlobStore
	queue    *mocks.MockTaskQueue
	tracker  *job.Tracker
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := routerMocks{
		evalRepo: mocks.NewMockEvaluationRepository(ctrl),
		docRepo:  mocks.NewMockDocumentRepository(ctrl),
		orgRepo:  mocks.NewMockOrganizationRepository(ctrl),
		sessions: mocks.NewMockChatSessionStore(ctrl),
		provider: mocks.NewMockModelProvider(ctrl),
		blobs:    mocks.NewMockBlobStore(ctrl),
		queue:    mocks.NewMockTaskQueue(ctrl),
		tracker:  job.NewTracker(),
	}

	clock := data.NewFixedTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	router := NewRouter(RouterServices{
		Evaluations: service.MustNewEvaluationService(service.EvaluationServiceOptions{
			Repo:     deps.evalRepo,
			Orgs:     deps.orgRepo,
			Provider: deps.provider,
			Queue:    deps.queue,
			Tracker:  deps.tracker,
		}),
		Documents: service.MustNewDocumentService(service.DocumentServiceOptions{
			Repo:        deps.docRepo,
			Evaluations: deps.evalRepo,
			Orgs:        deps.orgRepo,
			Provider:    deps.provider,
			Blobs:       deps.blobs,
			Queue:       deps.queue,
			Tracker:     deps.tracker,
			Time:        clock,
		}),
		Organizations: service.MustNewOrganizationService(service.OrganizationServiceOptions{
			Repo: deps.orgRepo,
		}),
		Chat: service.MustNewChatService(service.ChatServiceOptions{
			Sessions: deps.sessions,
			Provider: deps.provider,
			Orgs:     deps.orgRepo,
			Time:     clock,
		}),
	})
	return router, deps
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireJSONBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

package httpx

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/gencertify/gencertify/internal/errors"

	"github.com/gencertify/gencertify/internal/domain/model"
)

const testDocID = "doc-1"

func TestDocumentGenerate(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.orgRepo.EXPECT().
		GetByID(gomock.Any(), testOrgID).
		Return(&model.Organization{ID: testOrgID, Name: "Acme"}, nil)
	deps.evalRepo.EXPECT().
		Get(gomock.Any(), testOrgID, testEvalID).
		Return(&model.Evaluation{
			ID:             testEvalID,
			OrganizationID: testOrgID,
			Status:         model.JobStatusCompleted,
		}, nil)
	deps.docRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gen *model.DocumentGeneration) (string, error) {
			assert.Equal(t, model.JobStatusPending, gen.Status)
			assert.Equal(t, testEvalID, gen.EvaluationID)
			return testDocID, nil
		})
	deps.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/documents/generate",
		`{"organization_id":"org-1","evaluation_id":"eval-1","document_types":["information_security_policy"]}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := requireJSONBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, testDocID, body["document_id"])
}

func TestDocumentGenerateUnknownEvaluation(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.orgRepo.EXPECT().
		GetByID(gomock.Any(), testOrgID).
		Return(&model.Organization{ID: testOrgID, Name: "Acme"}, nil)
	deps.evalRepo.EXPECT().
		Get(gomock.Any(), testOrgID, "missing").
		Return(nil, apperrors.NotFound("evaluation not found"))

	rec := doRequest(t, router, http.MethodPost, "/api/documents/generate",
		`{"organization_id":"org-1","evaluation_id":"missing","document_types":["risk_assessment"]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentGenerateValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing evaluation id", body: `{"organization_id":"org-1","document_types":["risk_assessment"]}`},
		{name: "empty document types", body: `{"organization_id":"org-1","evaluation_id":"eval-1","document_types":[]}`},
		{name: "unknown document type", body: `{"organization_id":"org-1","evaluation_id":"eval-1","document_types":["meeting_notes"]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/documents/generate", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDocumentStatusFromStore(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.docRepo.EXPECT().
		Get(gomock.Any(), testOrgID, testDocID).
		Return(&model.DocumentGeneration{
			ID:             testDocID,
			OrganizationID: testOrgID,
			Status:         model.JobStatusFailed,
			Progress:       50,
		}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/documents/status/org-1/doc-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := requireJSONBody(t, rec)
	assert.Equal(t, string(model.JobStatusFailed), body["status"])
	assert.InDelta(t, 50.0, body["progress"], 0.01)
}

func TestDocumentResultsNotCompleted(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.docRepo.EXPECT().
		Get(gomock.Any(), testOrgID, testDocID).
		Return(&model.DocumentGeneration{
			ID:             testDocID,
			OrganizationID: testOrgID,
			Status:         model.JobStatusPending,
			Progress:       0,
		}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/documents/results/org-1/doc-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := requireJSONBody(t, rec)
	assert.Equal(t, "document generation is not completed", body["message"])
}

func TestDocumentList(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.docRepo.EXPECT().
		ListByOrganization(gomock.Any(), testOrgID).
		Return([]*model.DocumentGeneration{
			{ID: "doc-2", OrganizationID: testOrgID, Status: model.JobStatusCompleted},
			{ID: testDocID, OrganizationID: testOrgID, Status: model.JobStatusFailed},
		}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/documents/list/org-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := requireJSONBody(t, rec)
	docs, ok := body["documents"].([]any)
	require.True(t, ok)
	assert.Len(t, docs, 2)
}

func TestDocumentDownloadRedirect(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.blobs.EXPECT().
		DownloadURL(gomock.Any(), testOrgID, "risk-assessment.txt").
		Return("/files/org-1/risk-assessment.txt", nil)

	rec := doRequest(t, router, http.MethodGet, "/api/documents/download/org-1/risk-assessment.txt", "")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/files/org-1/risk-assessment.txt", rec.Header().Get("Location"))
}

func TestDocumentDownloadMissingFile(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.blobs.EXPECT().
		DownloadURL(gomock.Any(), testOrgID, "ghost.txt").
		Return("", apperrors.NotFound("file not found"))

	rec := doRequest(t, router, http.MethodGet, "/api/documents/download/org-1/ghost.txt", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

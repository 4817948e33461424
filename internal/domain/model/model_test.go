package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusTransitions(t *testing.T) {
	tests := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobStatusPending, JobStatusInProgress, true},
		{JobStatusPending, JobStatusFailed, true},
		{JobStatusPending, JobStatusCompleted, false},
		{JobStatusInProgress, JobStatusCompleted, true},
		{JobStatusInProgress, JobStatusFailed, true},
		{JobStatusInProgress, JobStatusPending, false},
		{JobStatusCompleted, JobStatusFailed, false},
		{JobStatusFailed, JobStatusInProgress, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusInProgress.Terminal())
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusFailed.Terminal())
}

func TestCertificationTypeUnmarshalText(t *testing.T) {
	var ct CertificationType
	require.NoError(t, ct.UnmarshalText([]byte(" ISO_27001 ")))
	assert.Equal(t, CertificationISO27001, ct)

	require.Error(t, ct.UnmarshalText([]byte("iso-9000")))
}

func TestDocumentTypeFileName(t *testing.T) {
	assert.Equal(t, "information-security-policy.txt", DocumentInfoSecPolicy.FileName())
	assert.Equal(t, "risk-assessment.txt", DocumentRiskAssessment.FileName())
}

func TestStartEvaluationRequestValidate(t *testing.T) {
	valid := StartEvaluationRequest{
		OrganizationID:     "org-1",
		CertificationTypes: []CertificationType{CertificationGDPR},
	}
	require.NoError(t, valid.Validate())

	missing := StartEvaluationRequest{CertificationTypes: []CertificationType{CertificationGDPR}}
	require.Error(t, missing.Validate())

	empty := StartEvaluationRequest{OrganizationID: "org-1"}
	require.Error(t, empty.Validate())

	invalid := StartEvaluationRequest{
		OrganizationID:     "org-1",
		CertificationTypes: []CertificationType{"bogus"},
	}
	require.Error(t, invalid.Validate())
}

func TestGenerateDocumentsRequestValidate(t *testing.T) {
	valid := GenerateDocumentsRequest{
		OrganizationID: "org-1",
		EvaluationID:   "eval-1",
		DocumentTypes:  []DocumentType{DocumentInfoSecPolicy},
	}
	require.NoError(t, valid.Validate())

	require.Error(t, (&GenerateDocumentsRequest{
		EvaluationID:  "eval-1",
		DocumentTypes: []DocumentType{DocumentInfoSecPolicy},
	}).Validate())

	require.Error(t, (&GenerateDocumentsRequest{
		OrganizationID: "org-1",
		DocumentTypes:  []DocumentType{DocumentInfoSecPolicy},
	}).Validate())

	require.Error(t, (&GenerateDocumentsRequest{
		OrganizationID: "org-1",
		EvaluationID:   "eval-1",
	}).Validate())
}

func TestSendChatMessageRequestValidate(t *testing.T) {
	require.NoError(t, (&SendChatMessageRequest{
		OrganizationID: "org-1",
		Message:        "hi",
	}).Validate())

	require.Error(t, (&SendChatMessageRequest{Message: "hi"}).Validate())
	require.Error(t, (&SendChatMessageRequest{OrganizationID: "org-1"}).Validate())
}

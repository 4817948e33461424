package provider

import (
	"fmt"
	"strings"

	"github.com/gencertify/gencertify/internal/core"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

const chatSystemPrompt = "You are a certification readiness assistant. You help " +
	"organizations prepare for compliance certifications such as ISO 27001, SOC 2, " +
	"GDPR, HIPAA, and PCI-DSS. Answer questions about requirements, evidence, and " +
	"remediation concisely and accurately."

func evaluationPrompt(params core.EvaluateCertificationParams) (system, user string) {
	system = "You are a compliance auditor. Assess the organization's readiness for " +
		"the requested certification. Respond with a single JSON object containing " +
		"overall_score (0-100), requirement_evaluations (array of objects with " +
		"requirement_id, name, description, category, compliance_score, findings, " +
		"recommendations), summary, strengths, weaknesses, and recommendations. " +
		"Respond with JSON only, no prose."

	user = fmt.Sprintf(
		"Evaluate organization %s against the %s standard.",
		params.OrganizationID, certificationLabel(string(params.CertificationType)),
	)
	return system, user
}

func documentPrompt(params core.GenerateDocumentParams) (system, user string) {
	system = "You are a compliance documentation specialist. Produce the requested " +
		"compliance document as plain text, with clear section headings, tailored to " +
		"the organization's evaluation results."

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a %s document for organization %s.",
		certificationLabel(string(params.DocumentType)), params.OrganizationID)
	if params.Evaluation != nil {
		for _, certEval := range params.Evaluation.CertificationEvaluations {
			fmt.Fprintf(&sb, "\nEvaluation for %s: overall score %.1f. %s",
				certificationLabel(string(certEval.CertificationType)),
				certEval.OverallScore, certEval.Summary)
		}
	}
	return system, sb.String()
}

// certificationLabel renders a snake_case identifier as a human-readable
// label, e.g. "information_security_policy" -> "Information Security Policy".
func certificationLabel(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

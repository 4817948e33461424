package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/model"
)

// Canned is a model provider that returns deterministic fixture data. It
// backs local development and tests where no vendor API is reachable.
type Canned struct{}

// NewCanned constructs the fixture-backed provider.
func NewCanned() *Canned {
	return &Canned{}
}

// EvaluateCertification returns a fixed readiness assessment for the
// requested certification type.
func (c *Canned) EvaluateCertification(
	_ context.Context,
	params core.EvaluateCertificationParams,
) (*model.CertificationEvaluation, error) {
	return &model.CertificationEvaluation{
		CertificationType: params.CertificationType,
		OverallScore:      75.5,
		RequirementEvaluations: []model.RequirementEvaluation{
			{
				RequirementID:   "REQ-001",
				Name:            "Information Security Policy",
				Description:     "Organization must have a documented information security policy",
				Category:        "Policies",
				ComplianceScore: 80.0,
				Findings:        []string{"Policy exists but needs updating"},
				Recommendations: []string{"Update policy to include latest requirements"},
			},
		},
		Summary:         "Organization is generally well-prepared but has some gaps to address",
		Strengths:       []string{"Good documentation", "Strong access controls"},
		Weaknesses:      []string{"Outdated policies", "Incomplete risk assessment"},
		Recommendations: []string{"Update information security policy", "Complete risk assessment"},
	}, nil
}

// GenerateDocument returns a templated policy document for the requested
// document type.
func (c *Canned) GenerateDocument(_ context.Context, params core.GenerateDocumentParams) (string, error) {
	title := certificationLabel(string(params.DocumentType))
	topic := strings.ToLower(title)

	return fmt.Sprintf(`# %s

## Introduction

This document outlines the %s for [Organization Name].

## Purpose

The purpose of this document is to establish guidelines and procedures for %s.

## Scope

This policy applies to all employees, contractors, and third parties who have access to [Organization Name] systems and data.

## Policy

1. [Organization Name] shall implement and maintain appropriate %s controls.
2. All employees shall receive training on %s.
3. Regular audits shall be conducted to ensure compliance with this policy.

## Responsibilities

- Management: Ensure resources are available for implementation
- IT Department: Implement technical controls
- Employees: Comply with policy requirements

## References

- ISO 27001
- NIST Cybersecurity Framework
- GDPR

## Document Control

- Version: 1.0
- Approved by: [Approver Name]
`, title, topic, topic, topic, topic), nil
}

// GenerateChatResponse echoes a deterministic assistant reply.
func (c *Canned) GenerateChatResponse(_ context.Context, params core.ChatParams) (string, error) {
	return fmt.Sprintf(
		"Thanks for your question about %q. A certification readiness assessment "+
			"covers your policies, controls, and evidence against the standard's "+
			"requirements. Start an evaluation to get a detailed gap analysis.",
		params.Message,
	), nil
}

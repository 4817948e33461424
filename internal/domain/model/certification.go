package model

import (
	"fmt"
	"strings"
)

// CertificationType identifies a compliance standard an organization can be
// evaluated against.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type CertificationType string

const (
	// CertificationISO27001 is the ISO/IEC 27001 standard.
	CertificationISO27001 CertificationType = "iso_27001"
	// CertificationSOC2 is the SOC 2 standard.
	CertificationSOC2 CertificationType = "soc_2"
	// CertificationGDPR is the EU General Data Protection Regulation.
	CertificationGDPR CertificationType = "gdpr"
	// CertificationHIPAA is the US HIPAA regulation.
	CertificationHIPAA CertificationType = "hipaa"
	// CertificationPCIDSS is the PCI-DSS standard.
	CertificationPCIDSS CertificationType = "pci_dss"
)

// CertificationTypes returns all supported certification types.
func CertificationTypes() []CertificationType {
	return []CertificationType{
		CertificationISO27001,
		CertificationSOC2,
		CertificationGDPR,
		CertificationHIPAA,
		CertificationPCIDSS,
	}
}

// Valid returns true if the CertificationType is supported.
func (t CertificationType) Valid() bool {
	switch t {
	case CertificationISO27001, CertificationSOC2, CertificationGDPR,
		CertificationHIPAA, CertificationPCIDSS:
		return true
	default:
		return false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so certification types can
// be parsed from env and request payloads.
func (t *CertificationType) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	ct := CertificationType(v)
	if !ct.Valid() {
		return fmt.Errorf("invalid CertificationType: %q", v)
	}
	*t = ct
	return nil
}

// RequirementEvaluation is the assessment of one certification requirement.
type RequirementEvaluation struct {
	RequirementID   string   `json:"requirement_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	ComplianceScore float64  `json:"compliance_score"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// CertificationEvaluation is the model-generated assessment of one
// certification standard. One is appended to an evaluation's results per
// successfully evaluated certification type.
type CertificationEvaluation struct {
	CertificationType      CertificationType       `json:"certification_type"`
	OverallScore           float64                 `json:"overall_score"`
	RequirementEvaluations []RequirementEvaluation `json:"requirement_evaluations"`
	Summary                string                  `json:"summary"`
	Strengths              []string                `json:"strengths"`
	Weaknesses             []string                `json:"weaknesses"`
	Recommendations        []string                `json:"recommendations"`
}

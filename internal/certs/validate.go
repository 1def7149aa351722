package certs

import (
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// expirySoonWindow flags credentials expiring within this many days.
const expirySoonWindow = 90 * 24 * time.Hour

// Validate verifies a single certificate against the provider registry.
// An expired credential keeps half its trust score; a credential no
// registry entry matches gets the unverified baseline.
func Validate(cert types.Certificate, now time.Time) types.CertValidation {
	result := types.CertValidation{
		Warnings:        []string{},
		Recommendations: []string{},
	}

	name := strings.ToLower(cert.Name)
	issuer := strings.ToLower(cert.Issuer)

	for _, p := range providers {
		pn := strings.ToLower(p.name)
		if strings.Contains(issuer, pn) || strings.Contains(name, pn) {
			result.ProviderVerified = true
			result.TrustScore = p.trustScore
			result.VerifiedProvider = p.name
			break
		}
	}

	if cert.URL != "" {
		for _, p := range providers {
			if p.pattern.MatchString(cert.URL) {
				result.URLVerified = true
				if !result.ProviderVerified {
					result.ProviderVerified = true
					result.TrustScore = p.trustScore
					result.VerifiedProvider = p.name
				}
				break
			}
		}
	}

	if cert.ExpiryDate != nil {
		switch {
		case cert.ExpiryDate.Before(now):
			result.Warnings = append(result.Warnings, "Certificate has expired")
			result.TrustScore *= 0.5
		case cert.ExpiryDate.Sub(now) < expirySoonWindow:
			result.Warnings = append(result.Warnings, "Certificate expires soon")
		}
	}

	if result.ProviderVerified || result.URLVerified {
		result.Valid = true
	} else {
		result.Warnings = append(result.Warnings, "Provider not recognized - manual verification recommended")
		result.TrustScore = unverifiedTrustScore
	}

	if cert.URL == "" {
		result.Recommendations = append(result.Recommendations, "Add certificate URL for verification")
	}
	if cert.IssueDate == nil {
		result.Recommendations = append(result.Recommendations, "Add issue date for better tracking")
	}

	return result
}

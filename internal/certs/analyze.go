package certs

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Analyze validates and categorizes a certificate portfolio and computes
// its value score. Empty input yields a zero-valued report, not an error.
func Analyze(certificates []types.Certificate, now time.Time) types.CertificateReport {
	report := types.CertificateReport{
		TotalCertificates: len(certificates),
		Categories:        map[string][]string{},
		SkillsGained:      map[string]float64{},
		Providers:         map[string]int{},
		Timeline:          []types.CertTimelineEntry{},
		Warnings:          []string{},
		Details:           []types.CertificateDetail{},
	}
	if len(certificates) == 0 {
		report.Recommendations = []string{}
		return report
	}

	totalTrust := 0.0
	for _, cert := range certificates {
		validation := Validate(cert, now)
		if validation.Valid {
			report.VerifiedCount++
		}
		totalTrust += validation.TrustScore

		combined := strings.ToLower(cert.Name + " " + cert.Description)
		matched := []string{}
		for _, category := range certCategories {
			if containsAnyKeyword(combined, category.keywords) {
				report.Categories[category.name] = append(report.Categories[category.name], cert.Name)
				matched = append(matched, category.name)
				for _, skill := range category.skills {
					report.SkillsGained[skill] += category.weight
				}
			}
		}

		providerName := validation.VerifiedProvider
		if providerName == "" {
			providerName = cert.Issuer
		}
		if providerName == "" {
			providerName = "Other"
		}
		report.Providers[providerName]++

		if cert.IssueDate != nil {
			report.Timeline = append(report.Timeline, types.CertTimelineEntry{
				Date:     cert.IssueDate.Format("2006-01-02"),
				Name:     cert.Name,
				Provider: providerName,
			})
		}

		report.Warnings = append(report.Warnings, validation.Warnings...)
		report.Details = append(report.Details, types.CertificateDetail{
			Name:       cert.Name,
			Provider:   cert.Issuer,
			Categories: matched,
			Validation: validation,
		})
	}

	report.TrustScoreAvg = totalTrust / float64(len(certificates))

	sort.SliceStable(report.Timeline, func(i, j int) bool {
		return report.Timeline[i].Date > report.Timeline[j].Date
	})

	report.Recommendations = recommendations(&report)
	report.ValueScore = valueScore(&report)

	return report
}

// valueScore grades the whole portfolio 0-100: up to 30 for quantity, 40
// for average trust, 20 for category diversity, plus a 10-point recency base.
func valueScore(report *types.CertificateReport) float64 {
	quantity := capAt(float64(report.TotalCertificates)*5, 30)
	quality := report.TrustScoreAvg / 100 * 40
	diversity := capAt(float64(len(report.Categories))*5, 20)
	recency := 10.0

	return capAt(quantity+quality+diversity+recency, 100)
}

func recommendations(report *types.CertificateReport) []string {
	recs := []string{}

	switch {
	case report.TotalCertificates < 3:
		recs = append(recs, "Consider earning more certifications to strengthen your profile (aim for 5-10 relevant certificates)")
	case report.TotalCertificates > 20:
		recs = append(recs, "Focus on quality over quantity - highlight your most relevant and recent certifications")
	}

	verificationRate := float64(report.VerifiedCount) / float64(report.TotalCertificates) * 100
	if verificationRate < 70 {
		recs = append(recs, fmt.Sprintf("Add certificate URLs for better verification (currently %d%% verified)", int(verificationRate)))
	}

	if len(report.Categories) < 2 {
		recs = append(recs, "Diversify your certifications across multiple domains for a well-rounded profile")
	}

	hasCloud := false
	hasAI := false
	for category := range report.Categories {
		if strings.Contains(category, "Cloud") {
			hasCloud = true
		}
		if strings.Contains(category, "AI") || strings.Contains(category, "Data Science") {
			hasAI = true
		}
	}
	if !hasCloud {
		recs = append(recs, "Consider cloud certifications (AWS/Azure/GCP) - highly valued in the current market")
	}
	if !hasAI {
		recs = append(recs, "AI/ML certifications are in high demand - consider adding them to your portfolio")
	}

	for _, w := range report.Warnings {
		if strings.Contains(strings.ToLower(w), "expired") {
			recs = append(recs, "Renew expired certifications or replace them with current ones")
			break
		}
	}

	if len(report.Providers) < 2 {
		recs = append(recs, "Earn certifications from multiple providers for broader recognition")
	}

	return recs
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

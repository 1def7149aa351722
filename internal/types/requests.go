package types

import "github.com/go-playground/validator/v10"

// ScoreRequest asks for a holistic score over a profile.
type ScoreRequest struct {
	Profile Profile `json:"profile"`
}

// MatchRequest asks for ranked internship matches for a profile.
type MatchRequest struct {
	Profile Profile `json:"profile"`
	Limit   int     `json:"limit,omitempty" validate:"omitempty,min=1,max=12"`
}

// RoadmapRequest asks for a skill-gap report and roadmap toward one category.
type RoadmapRequest struct {
	Profile  Profile `json:"profile"`
	Category string  `json:"category" validate:"required"`
}

// CertificatesRequest asks for certificate validation and analysis.
type CertificatesRequest struct {
	Certificates []Certificate `json:"certificates" validate:"required,dive"`
}

// ActivitiesRequest asks for extracurricular analysis.
type ActivitiesRequest struct {
	Activities []Activity `json:"activities" validate:"required,dive"`
}

// PortfolioRequest asks for project portfolio analysis.
type PortfolioRequest struct {
	Projects []Project `json:"projects" validate:"required,dive"`
	Enhanced bool      `json:"enhanced,omitempty"`
}

// IntegrateRequest asks for a unified multi-source profile built from the
// base profile, its GitHub username, and an optional portfolio website.
type IntegrateRequest struct {
	Profile    Profile `json:"profile"`
	WebsiteURL string  `json:"website_url,omitempty" validate:"omitempty,url"`
}

// ATSRequest asks for a resume-vs-job-description skill match.
type ATSRequest struct {
	ResumeText         string `json:"resume_text" validate:"required"`
	JobDescriptionText string `json:"job_description_text" validate:"required"`
}

// SuggestRequest asks for LLM-backed guidance of one kind. The resume,
// projects, and cover_letter kinds work from resume and job-description
// text; careers works from the profile; courses works from skills_to_learn.
type SuggestRequest struct {
	Kind               string   `json:"kind" validate:"required,oneof=resume projects cover_letter careers courses"`
	Profile            Profile  `json:"profile"`
	ResumeText         string   `json:"resume_text,omitempty"`
	JobDescriptionText string   `json:"job_description_text,omitempty"`
	SkillsToLearn      []string `json:"skills_to_learn,omitempty"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CertificatesRequest using the validator.
func (r *CertificatesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ActivitiesRequest using the validator.
func (r *ActivitiesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PortfolioRequest using the validator.
func (r *PortfolioRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IntegrateRequest using the validator.
func (r *IntegrateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ATSRequest using the validator.
func (r *ATSRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SuggestRequest using the validator.
func (r *SuggestRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

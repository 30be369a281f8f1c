package types

import "github.com/go-playground/validator/v10"

// ComposeDocumentRequest represents the request to generate a new portfolio document.
type ComposeDocumentRequest struct {
	Title            string         `json:"title" validate:"required,min=1"`
	CareerFocus      string         `json:"careerFocus" validate:"required"`
	UsePersonalInfo  bool           `json:"usePersonalInfo"`
	ShortDescription string         `json:"shortDescription" validate:"required,min=1"`
	SelectedItems    []SelectedItem `json:"selectedItems"`
}

// LoginRequest represents the mock login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RenameDocumentRequest represents a document title rename. Rename is the only
// field-level update a document supports.
type RenameDocumentRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	LinkedinURL   string `json:"linkedinUrl"`
	GithubURL     string `json:"githubUrl"`
	DateOfBirth   string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// Validate validates the ComposeDocumentRequest using the validator.
func (r *ComposeDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RenameDocumentRequest using the validator.
func (r *RenameDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

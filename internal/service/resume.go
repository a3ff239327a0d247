package service

import (
	"context"
	"errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported resume format")
	ErrEmptyResume       = errors.New("resume contains no readable text")
)

// ResumeProfile is the structured result of parsing a resume. Every field is
// optional; extraction fills what it can and leaves the rest empty.
type ResumeProfile struct {
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	JobTitle    string   `json:"jobTitle"`
	Experience  string   `json:"experience"`
	Location    string   `json:"location"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
	WorkHistory string   `json:"workHistory"`
}

// ResumeStructurer turns the raw text of a resume into a profile.
type ResumeStructurer interface {
	Structure(ctx context.Context, text string) (*ResumeProfile, error)
}

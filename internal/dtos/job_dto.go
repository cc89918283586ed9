package dtos

import "github.com/justsurfingit/job-board/internal/models"

// SearchJobsResponse is the envelope the proxy endpoint always returns, on
// success and failure alike. Message is only set on failure and never carries
// upstream error detail.
type SearchJobsResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Jobs    []models.Job `json:"jobs"`
}

// JobCard is the display record for one listing on the page: same job, with
// the description stripped of markup.
type JobCard struct {
	JobID       int
	JobTitle    string
	CompanyName string
	Description string
	PostingDate string
	URL         string
}

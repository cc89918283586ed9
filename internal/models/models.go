package models

// Job is one externally sourced job-posting record. The upstream provider
// owns the shape; we keep its (slightly odd) field names as-is and never
// mutate a job after it is fetched.
type Job struct {
	JobID          int    `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	PostingDate    string `json:"postingDate"`
	OBJUrl         string `json:"OBJurl"`
}

// SearchRequest is the payload the upstream provider expects on its search
// endpoint.
type SearchRequest struct {
	CompanySkills          bool     `json:"companySkills"`
	DismissedListingHashes []string `json:"dismissedListingHashes"`
	FetchJobDesc           bool     `json:"fetchJobDesc"`
	JobTitle               string   `json:"jobTitle"`
	Locations              []string `json:"locations"`
	NumJobs                int      `json:"numJobs"`
	PreviousListingHashes  []string `json:"previousListingHashes"`
}

// DefaultSearchRequest is the fixed payload used for the page pre-fetch, and
// the per-field fallback for the proxy endpoint.
func DefaultSearchRequest() SearchRequest {
	return SearchRequest{
		CompanySkills:          true,
		DismissedListingHashes: []string{},
		FetchJobDesc:           true,
		JobTitle:               "Business Analyst",
		Locations:              []string{},
		NumJobs:                20,
		PreviousListingHashes:  []string{},
	}
}

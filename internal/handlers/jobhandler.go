package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
)

// JobHandler owns the proxy route.
// Dependency injection, same as the rest of the services.
type JobHandler struct {
	Upstream *services.UpstreamService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(upstream *services.UpstreamService) *JobHandler {
	return &JobHandler{Upstream: upstream}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchJobs is the POST /jobs/search proxy. Caller-supplied query params
// override the defaults — except that a falsy value (false, 0, empty) is
// treated exactly like an absent one and falls back to the default. That is
// the documented contract; do not "fix" it.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	req := models.SearchRequest{
		CompanySkills:          boolQuery(c, "companySkills", true),
		DismissedListingHashes: listQuery(c, "dismissedListingHashes"),
		FetchJobDesc:           boolQuery(c, "fetchJobDesc", true),
		JobTitle:               stringQuery(c, "jobTitle", "Business Analyst"),
		Locations:              listQuery(c, "locations"),
		NumJobs:                intQuery(c, "numJobs", 20),
		PreviousListingHashes:  listQuery(c, "previousListingHashes"),
	}

	jobs, err := h.Upstream.SearchJobs(c.Request.Context(), req)
	if err != nil {
		// Log the real cause; the caller only ever sees the generic message.
		log.Printf("upstream search failed: %v", err)
		c.JSON(http.StatusInternalServerError, dtos.SearchJobsResponse{
			Success: false,
			Message: "Internal Server Error",
			Jobs:    []models.Job{},
		})
		return
	}

	c.JSON(http.StatusOK, dtos.SearchJobsResponse{
		Success: true,
		Jobs:    jobs,
	})
}

// boolQuery: the default wins unless the caller sends a truthy value.
func boolQuery(c *gin.Context, key string, def bool) bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil || !v {
		return def
	}
	return v
}

// intQuery: zero counts as absent.
func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v == 0 {
		return def
	}
	return v
}

func stringQuery(c *gin.Context, key, def string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return def
}

// listQuery accepts repeated keys or a single comma-separated value. Empty
// means the default empty set.
func listQuery(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

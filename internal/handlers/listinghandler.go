package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
)

// ListingHandler serves the job-listing page and its three view actions.
type ListingHandler struct {
	Upstream *services.UpstreamService
	Listing  *services.ListingService
}

func NewListingHandler(upstream *services.UpstreamService, listing *services.ListingService) *ListingHandler {
	return &ListingHandler{Upstream: upstream, Listing: listing}
}

// ShowListings renders the listing page. The first render pre-fetches the
// job list with the fixed default payload; if that fails the page renders
// with zero jobs and the error stays in the logs.
func (h *ListingHandler) ShowListings(c *gin.Context) {
	h.Listing.EnsureLoaded(func() []models.Job {
		jobs, err := h.Upstream.SearchJobs(c.Request.Context(), models.DefaultSearchRequest())
		if err != nil {
			log.Printf("initial job fetch failed: %v", err)
			return []models.Job{}
		}
		return jobs
	})

	// The toggle's label reflects what pressing it will do next.
	sortLabel := "Sort by Company"
	if h.Listing.SortedByCompany() {
		sortLabel = "Sort by Posting Date"
	}

	c.HTML(http.StatusOK, "listings.html", gin.H{
		"Cards":     h.Listing.Cards(),
		"SortLabel": sortLabel,
	})
}

// ResetFilters shows the first 10 jobs again.
func (h *ListingHandler) ResetFilters(c *gin.Context) {
	h.Listing.Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

// FilterRecent narrows the page to jobs posted within the last week.
func (h *ListingHandler) FilterRecent(c *gin.Context) {
	h.Listing.FilterRecent()
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleSort flips between company order and posting order.
func (h *ListingHandler) ToggleSort(c *gin.Context) {
	h.Listing.ToggleSort()
	c.Redirect(http.StatusSeeOther, "/")
}

// OpenListing sends the browser to a job's external URL. No validation — a
// malformed URL is the data's problem, not ours.
func (h *ListingHandler) OpenListing(c *gin.Context) {
	c.Redirect(http.StatusFound, c.Query("url"))
}

package services

import (
	"math"
	"regexp"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

const (
	defaultDisplayCount = 10
	recentWindowDays    = 7
)

// tagPattern matches anything that looks like a markup tag. Non-greedy, so a
// lone "<" with no closing ">" (e.g. "a < b") never matches.
var tagPattern = regexp.MustCompile(`(?i)<.*?>`)

// postingDateLayouts: the provider sends RFC3339-ish timestamps, but we accept
// a couple of laxer shapes too. Anything unparseable simply never counts as
// recent.
var postingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ListingService owns the page's view state: the full fetched list plus the
// subset currently on display. allJobs is read-only after load; the three
// view actions re-derive displayedJobs from it and never feed the view back
// into itself.
//
// The mutex exists because gin serves requests concurrently; each action
// still runs to completion atomically, matching the page-lifetime model.
type ListingService struct {
	mu              sync.Mutex
	allJobs         []models.Job
	displayedJobs   []models.Job
	sortedByCompany bool
	loaded          bool

	collator *collate.Collator

	// now is swappable in tests.
	now func() time.Time
}

func NewListingService() *ListingService {
	return &ListingService{
		collator: collate.New(language.English),
		now:      time.Now,
	}
}

// Load installs a fetched list and shows the default view. Replaces whatever
// was loaded before.
func (s *ListingService) Load(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allJobs = jobs
	s.loaded = true
	s.resetLocked()
}

// EnsureLoaded runs fetch and installs its result the first time it is
// called; afterwards it is a no-op. The fetch happens under the lock, so
// concurrent first requests trigger exactly one upstream call.
func (s *ListingService) EnsureLoaded(fetch func() []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.allJobs = fetch()
	s.loaded = true
	s.resetLocked()
}

// Reset shows the first 10 jobs in upstream order.
func (s *ListingService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *ListingService) resetLocked() {
	n := len(s.allJobs)
	if n > defaultDisplayCount {
		n = defaultDisplayCount
	}
	s.displayedJobs = append([]models.Job(nil), s.allJobs[:n]...)
	s.sortedByCompany = false
}

// FilterRecent keeps the jobs posted within the last 7 days. It always reads
// the full list, so it undoes any previous truncation or sort. Jobs whose
// postingDate does not parse are excluded.
func (s *ListingService) FilterRecent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	recent := make([]models.Job, 0, len(s.allJobs))
	for _, job := range s.allJobs {
		days, ok := daysSince(now, job.PostingDate)
		if ok && days <= recentWindowDays {
			recent = append(recent, job)
		}
	}
	s.displayedJobs = recent
	s.sortedByCompany = false
}

// ToggleSort flips between company-name order and the original upstream
// order. Either direction shows the full list, discarding whatever filter or
// truncation was active.
func (s *ListingService) ToggleSort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	full := append([]models.Job(nil), s.allJobs...)
	if s.sortedByCompany {
		s.displayedJobs = full
		s.sortedByCompany = false
		return
	}
	// Stable: jobs from the same company keep their upstream relative order.
	sort.SliceStable(full, func(i, j int) bool {
		return s.collator.CompareString(full[i].CompanyName, full[j].CompanyName) < 0
	})
	s.displayedJobs = full
	s.sortedByCompany = true
}

// SortedByCompany reports whether the sorted phase of the toggle is active.
func (s *ListingService) SortedByCompany() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedByCompany
}

// DisplayedJobs returns a copy of the current view.
func (s *ListingService) DisplayedJobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Job(nil), s.displayedJobs...)
}

// Cards renders the current view for display, stripping markup from each
// description.
func (s *ListingService) Cards() []dtos.JobCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := make([]dtos.JobCard, 0, len(s.displayedJobs))
	for _, job := range s.displayedJobs {
		cards = append(cards, dtos.JobCard{
			JobID:       job.JobID,
			JobTitle:    job.JobTitle,
			CompanyName: job.CompanyName,
			Description: StripTags(job.JobDescription),
			PostingDate: job.PostingDate,
			URL:         job.OBJUrl,
		})
	}
	return cards
}

// StripTags deletes every <...> match outright. Tags are removed, not
// replaced with whitespace, so the text around them concatenates.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// daysSince is the whole number of days, rounded up, between now and the
// posting date. ok is false when the date does not parse.
func daysSince(now time.Time, postingDate string) (int, bool) {
	posted, err := parsePostingDate(postingDate)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(now.Sub(posted).Hours() / 24)), true
}

func parsePostingDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range postingDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

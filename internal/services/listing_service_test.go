package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-board/internal/models"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestListing(jobs []models.Job) *ListingService {
	s := NewListingService()
	s.now = func() time.Time { return testNow }
	s.Load(jobs)
	return s
}

func makeJobs(n int) []models.Job {
	jobs := make([]models.Job, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, models.Job{
			JobID:       i + 1,
			JobTitle:    fmt.Sprintf("Analyst %d", i+1),
			CompanyName: fmt.Sprintf("Company %02d", i+1),
			PostingDate: testNow.AddDate(0, 0, -i).Format(time.RFC3339),
			OBJUrl:      fmt.Sprintf("https://jobs.example.com/%d", i+1),
		})
	}
	return jobs
}

func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format(time.RFC3339)
}

func TestResetShowsFirstTen(t *testing.T) {
	s := newTestListing(makeJobs(25))

	got := s.DisplayedJobs()
	require.Len(t, got, 10)
	for i, job := range got {
		assert.Equal(t, i+1, job.JobID)
	}
	assert.False(t, s.SortedByCompany())
}

func TestResetWithShortList(t *testing.T) {
	s := newTestListing(makeJobs(3))
	assert.Len(t, s.DisplayedJobs(), 3)
}

func TestResetWithEmptyList(t *testing.T) {
	s := newTestListing(nil)
	assert.Empty(t, s.DisplayedJobs())
}

func TestFilterRecentKeepsSevenDayWindow(t *testing.T) {
	jobs := []models.Job{
		{JobID: 1, CompanyName: "Acme", PostingDate: testNow.Add(-2 * time.Hour).Format(time.RFC3339)},
		{JobID: 2, CompanyName: "Beta", PostingDate: daysAgo(3)},
		{JobID: 3, CompanyName: "Gamma", PostingDate: daysAgo(10)},
		{JobID: 4, CompanyName: "Delta", PostingDate: daysAgo(30)},
	}
	s := newTestListing(jobs)

	s.FilterRecent()

	got := s.DisplayedJobs()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].JobID)
	assert.Equal(t, 2, got[1].JobID)
	assert.False(t, s.SortedByCompany())
}

func TestFilterRecentReadsFullListNotCurrentView(t *testing.T) {
	// 15 jobs, all recent. Reset truncates the view to 10, but the filter
	// must re-derive from the full list.
	jobs := make([]models.Job, 0, 15)
	for i := 0; i < 15; i++ {
		jobs = append(jobs, models.Job{JobID: i + 1, PostingDate: daysAgo(1)})
	}
	s := newTestListing(jobs)
	require.Len(t, s.DisplayedJobs(), 10)

	s.FilterRecent()
	assert.Len(t, s.DisplayedJobs(), 15)
}

func TestFilterRecentExcludesUnparseableDates(t *testing.T) {
	jobs := []models.Job{
		{JobID: 1, PostingDate: daysAgo(1)},
		{JobID: 2, PostingDate: "not a date"},
		{JobID: 3, PostingDate: ""},
	}
	s := newTestListing(jobs)

	// All three are present in the default view...
	require.Len(t, s.DisplayedJobs(), 3)

	// ...but only the parseable recent one survives the filter.
	s.FilterRecent()
	got := s.DisplayedJobs()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].JobID)
}

func TestToggleSortOrdersByCompany(t *testing.T) {
	jobs := []models.Job{
		{JobID: 1, CompanyName: "Zeta"},
		{JobID: 2, CompanyName: "acme"},
		{JobID: 3, CompanyName: "Midway"},
		{JobID: 4, CompanyName: "Acme"},
	}
	s := newTestListing(jobs)

	s.ToggleSort()
	require.True(t, s.SortedByCompany())

	got := s.DisplayedJobs()
	require.Len(t, got, 4)
	for i := 0; i < len(got)-1; i++ {
		cmp := s.collator.CompareString(got[i].CompanyName, got[i+1].CompanyName)
		assert.LessOrEqual(t, cmp, 0, "companies out of order at %d: %q > %q",
			i, got[i].CompanyName, got[i+1].CompanyName)
	}
}

func TestToggleSortIsStableForEqualCompanies(t *testing.T) {
	jobs := []models.Job{
		{JobID: 1, CompanyName: "Beta"},
		{JobID: 2, CompanyName: "Acme"},
		{JobID: 3, CompanyName: "Acme"},
	}
	s := newTestListing(jobs)

	s.ToggleSort()

	got := s.DisplayedJobs()
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].JobID)
	assert.Equal(t, 3, got[1].JobID)
	assert.Equal(t, 1, got[2].JobID)
}

func TestToggleSortTwiceRestoresFullOriginalOrder(t *testing.T) {
	jobs := makeJobs(15)
	s := newTestListing(jobs)

	// Starting from the truncated default view: toggling twice lands on the
	// FULL list in original order, not back on the 10-item prefix.
	s.ToggleSort()
	s.ToggleSort()

	got := s.DisplayedJobs()
	require.Len(t, got, 15)
	for i, job := range got {
		assert.Equal(t, jobs[i].JobID, job.JobID)
	}
	assert.False(t, s.SortedByCompany())
}

func TestToggleSortDiscardsActiveFilter(t *testing.T) {
	jobs := []models.Job{
		{JobID: 1, CompanyName: "Beta", PostingDate: daysAgo(1)},
		{JobID: 2, CompanyName: "Acme", PostingDate: daysAgo(20)},
	}
	s := newTestListing(jobs)

	s.FilterRecent()
	require.Len(t, s.DisplayedJobs(), 1)

	s.ToggleSort()
	assert.Len(t, s.DisplayedJobs(), 2)
}

func TestStripTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<b>Senior</b> Engineer", "Senior Engineer"},
		{"plain text stays put", "plain text stays put"},
		{"a < b", "a < b"},
		{"<DIV>upper case</DIV> too", "upper case too"},
		{"<p>one</p><p>two</p>", "onetwo"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StripTags(tc.in), "input %q", tc.in)
	}
}

func TestCardsStripDescriptions(t *testing.T) {
	jobs := []models.Job{{
		JobID:          7,
		JobTitle:       "Business Analyst",
		CompanyName:    "Acme",
		JobDescription: "<p>Great <b>role</b></p>",
		PostingDate:    daysAgo(1),
		OBJUrl:         "https://jobs.example.com/7",
	}}
	s := newTestListing(jobs)

	cards := s.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Great role", cards[0].Description)
	assert.Equal(t, "https://jobs.example.com/7", cards[0].URL)
}

func TestDaysSince(t *testing.T) {
	days, ok := daysSince(testNow, daysAgo(3))
	require.True(t, ok)
	assert.Equal(t, 3, days)

	// A couple of hours ago still rounds up to one whole day.
	days, ok = daysSince(testNow, testNow.Add(-2*time.Hour).Format(time.RFC3339))
	require.True(t, ok)
	assert.Equal(t, 1, days)

	_, ok = daysSince(testNow, "garbage")
	assert.False(t, ok)
}

func TestEnsureLoadedFetchesOnce(t *testing.T) {
	s := NewListingService()
	s.now = func() time.Time { return testNow }

	calls := 0
	fetch := func() []models.Job {
		calls++
		return makeJobs(2)
	}
	s.EnsureLoaded(fetch)
	s.EnsureLoaded(fetch)

	assert.Equal(t, 1, calls)
	assert.Len(t, s.DisplayedJobs(), 2)
}

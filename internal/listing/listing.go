// Package listing turns the raw thread rows of the landing page into the
// ordered, truncated and formatted summaries the index template renders.
package listing

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"threadboard/internal/models"
	"threadboard/internal/web/viewmodels"
)

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "..."

const (
	DefaultTitleChars   = 60
	DefaultContentChars = 700
	DefaultDateFormat   = "Jan 2, 2006 at 15:04"
)

// Limits are the truncation limits, counted in runes, and the time layout
// used for both thread timestamps.
type Limits struct {
	TitleChars   int
	ContentChars int
	DateFormat   string
}

// DefaultLimits returns the limits the forum ships with.
func DefaultLimits() Limits {
	return Limits{
		TitleChars:   DefaultTitleChars,
		ContentChars: DefaultContentChars,
		DateFormat:   DefaultDateFormat,
	}
}

// Preparer builds the index page model. It holds only immutable limits and
// is safe for concurrent use.
type Preparer struct {
	limits Limits
}

// NewPreparer creates a Preparer with the given limits.
func NewPreparer(limits Limits) *Preparer {
	return &Preparer{limits: limits}
}

// Limits returns the limits the preparer was built with.
func (p *Preparer) Limits() Limits {
	return p.limits
}

// Prepare orders rows by last update, newest first, and maps each one to a
// summary. Threads updated at the same instant are ordered by ID. The rows
// slice itself is left untouched.
func (p *Preparer) Prepare(rows []models.Thread, userID string) viewmodels.IndexPage {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.Thread) int {
		if c := b.LastUpdated.Compare(a.LastUpdated); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	threads := make([]viewmodels.ThreadSummary, 0, len(sorted))
	for _, row := range sorted {
		threads = append(threads, p.summarize(row))
	}

	return viewmodels.IndexPage{
		NumThreads: len(threads),
		Threads:    threads,
		UserID:     userID,
	}
}

func (p *Preparer) summarize(row models.Thread) viewmodels.ThreadSummary {
	title, _ := Truncate(row.Title, p.limits.TitleChars)
	content, overflow := Truncate(row.Content, p.limits.ContentChars)

	return viewmodels.ThreadSummary{
		ThreadID:         row.ID,
		UserID:           row.UserID,
		Created:          row.Created.Format(p.limits.DateFormat),
		LastUpdated:      row.LastUpdated.Format(p.limits.DateFormat),
		Title:            title,
		Content:          content,
		Overflow:         overflow,
		NumComments:      row.NumComments,
		MultipleComments: row.NumComments > 1,
	}
}

// Truncate keeps the first max runes of s and appends Ellipsis when s is
// longer than max runes. It reports whether s was cut.
func Truncate(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) <= max {
		return s, false
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i] + Ellipsis, true
		}
		n++
	}
	return s, false
}

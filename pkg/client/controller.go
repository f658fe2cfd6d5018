package client

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// search term is committed.
const DefaultDebounce = 600 * time.Millisecond

// FetchFunc loads one page of results for the committed search term.
type FetchFunc func(page int, search string)

// QueryController bridges user input to the listing API without flooding it
// with requests. It keeps the raw search term, the committed (debounced)
// term and the current page, and invokes the fetch callback exactly once
// per committed change.
type QueryController struct {
	mu              sync.Mutex
	searchTerm      string
	debouncedSearch string
	currentPage     int
	debounce        time.Duration
	timer           *time.Timer
	closed          bool
	fetch           FetchFunc
}

// NewQueryController creates a controller starting on page 1 with an empty
// search. A non-positive debounce falls back to DefaultDebounce.
func NewQueryController(fetch FetchFunc, debounce time.Duration) *QueryController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &QueryController{
		currentPage: 1,
		debounce:    debounce,
		fetch:       fetch,
	}
}

// SetSearchTerm records a keystroke. The pending commit, if any, is
// cancelled and rescheduled, so only the last term of a burst is committed
// once the quiet period elapses.
func (c *QueryController) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.searchTerm = term
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.commitSearch(term)
	})
}

// commitSearch moves a settled search term into the debounced value. A new
// search always restarts at page 1. Nothing is fetched when neither the
// term nor the page actually changed.
func (c *QueryController) commitSearch(term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	changed := false
	if c.debouncedSearch != term {
		c.debouncedSearch = term
		changed = true
	}
	if c.currentPage != 1 {
		c.currentPage = 1
		changed = true
	}
	page, search := c.currentPage, c.debouncedSearch
	c.mu.Unlock()

	if changed {
		c.fetch(page, search)
	}
}

// SetPage moves to another page and fetches it. Setting the current page
// again is a no-op.
func (c *QueryController) SetPage(page int) {
	c.mu.Lock()
	if c.closed || page < 1 || page == c.currentPage {
		c.mu.Unlock()
		return
	}
	c.currentPage = page
	search := c.debouncedSearch
	c.mu.Unlock()

	c.fetch(page, search)
}

// Refresh re-fetches the current page with the committed search term, e.g.
// after a create or delete changed the underlying data.
func (c *QueryController) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	page, search := c.currentPage, c.debouncedSearch
	c.mu.Unlock()

	c.fetch(page, search)
}

// Close tears the controller down. A pending debounce timer is stopped and
// will never fire afterwards.
func (c *QueryController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// SearchTerm returns the raw, uncommitted search term.
func (c *QueryController) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

// DebouncedSearch returns the committed search term.
func (c *QueryController) DebouncedSearch() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debouncedSearch
}

// CurrentPage returns the page the controller is on.
func (c *QueryController) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

package gallery

import (
	"strconv"
	"sync/atomic"
)

// DefaultImageBaseURL is the placeholder image service used when none is configured.
const DefaultImageBaseURL = "https://picsum.photos/800/800"

// Counter hands out placeholder image URLs, each carrying a fresh sequence
// number so that successive images differ. It is safe for concurrent use.
type Counter struct {
	baseURL string
	n       atomic.Int64
}

// NewCounter creates a counter starting at zero. An empty baseURL selects
// DefaultImageBaseURL.
func NewCounter(baseURL string) *Counter {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return &Counter{baseURL: baseURL}
}

// NextImageURL increments the counter and returns "<base>?<n>" for the new value.
func (c *Counter) NextImageURL() string {
	return c.NextReference().String()
}

// NextReference increments the counter and returns the reference for the new value.
func (c *Counter) NextReference() Reference {
	n := c.n.Add(1)
	return Reference{Base: c.baseURL, ID: int(n)}
}

// Value returns the number of URLs handed out so far.
func (c *Counter) Value() int64 { return c.n.Load() }

// BaseURL returns the placeholder base the counter appends ids to.
func (c *Counter) BaseURL() string { return c.baseURL }

func (c *Counter) String() string {
	return "counter(" + strconv.FormatInt(c.Value(), 10) + ")"
}

package docgrab

import "context"

// Tab is a single browser page that is reused for every navigation in a run.
// Implementations may use browser automation; callers use it sequentially.
type Tab interface {
	// Navigate loads the URL and returns once the initial HTML document
	// has been parsed (DOMContentLoaded).
	// The context controls timeout and cancellation.
	Navigate(ctx context.Context, url string) error

	// HTML returns the serialized DOM of the current page.
	HTML(ctx context.Context) (string, error)

	// ObserveRequests calls observe with the URL of every outgoing network
	// request the page makes until release is called. observe may be called
	// from another goroutine. release blocks until no further calls to
	// observe can happen and must be called exactly once.
	ObserveRequests(ctx context.Context, observe func(url string)) (release func())

	// Close releases browser resources.
	// Must be called when the Tab is no longer needed.
	Close() error
}

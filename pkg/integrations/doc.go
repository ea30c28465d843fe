// Package integrations provides the HTTP plumbing for fetching Linguist
// data from GitHub.
//
// # Client Pattern
//
// Source-specific clients embed [Client], which supplies caching, retry
// and default headers:
//
//	client := linguist.NewClient(backend, 24*time.Hour, "")
//	idx, err := client.FetchIndex(ctx, false) // false = use cache
//
// [Client] handles:
//   - payload caching through any [cache.Cache] backend, under a per-client
//     key prefix
//   - retry with exponential backoff for network errors and 5xx responses
//   - status mapping: 404 is [ErrNotFound], 429 is a rate-limit error,
//     everything else non-2xx is [ErrNetwork]; a client timeout is
//     [ErrTimeout]. Each carries an error code for exit and HTTP statuses
//   - request, response and cache events via [observability] hooks
//
// Only successful fetches are cached; a fetch function may reject a payload
// (for example a document that does not parse) to keep it out of the cache.
//
// [cache.Cache]: github.com/matzehuels/linguist/pkg/cache.Cache
// [observability]: github.com/matzehuels/linguist/pkg/observability
package integrations

// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the application
// decides at startup where the events go. The defaults are no-ops, so a
// library user who registers nothing pays nothing.
//
// # Event Categories
//
//   - [DatasetHooks]: a languages.yml document was loaded and indexed
//   - [LookupHooks]: the HTTP API answered a lookup
//   - [CacheHooks]: dataset cache hits, misses and writes
//   - [HTTPHooks]: outgoing requests to the dataset host
//
// # Usage
//
// Register hooks once at startup:
//
//	hooks := observability.NewLogHooks(logger)
//	observability.SetCacheHooks(hooks)
//	observability.SetHTTPHooks(hooks)
//
// Libraries call the accessors to emit events:
//
//	observability.HTTP().OnRequest(ctx, "GET", host, path)
package observability

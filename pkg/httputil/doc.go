// Package httputil provides retry helpers for the dataset HTTP client.
//
// # Retry
//
// [Retry] and [Backoff.Do] re-run an operation after transient failures.
// Only errors marked with [Retryable] are retried: network errors and 5xx
// responses are retryable, a 404 is not.
//
//	err := httputil.DefaultBackoff.Do(ctx, func(attempt int) error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// The delay doubles after each failed attempt up to [Backoff.Max]. A
// cancelled context stops the loop and its error is returned.
package httputil

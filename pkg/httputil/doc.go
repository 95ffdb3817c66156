// Package httputil provides HTTP plumbing for the bridge client.
//
// # Retry
//
// [Retry] wraps calls to a remote CAD host with automatic retry for
// transient failures:
//
//   - Network errors (host unreachable, timeouts)
//   - 503 responses from a busy host
//
// Only errors wrapped in [RetryableError] are retried; everything else is
// returned to the caller immediately, so structured drafting errors (a
// locked layer, a missing block) never burn retry attempts. Backoff is
// exponential, doubling from the initial delay.
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return callHost()
//	})
package httputil

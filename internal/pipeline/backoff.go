package pipeline

import "time"

// maxBackoffShift caps the exponent so the delay cannot overflow.
const maxBackoffShift = 10

// backoff returns the delay before retry attempt n (1-based):
// base, 2*base, 4*base and so on.
func backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	shift := attempt - 1
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	return base << shift
}

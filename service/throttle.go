package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedEmails bounds the limiter map. A single-user device never gets
// near this; it only guards against a pathological host feeding unique
// emails forever.
const maxTrackedEmails = 4096

// SignInThrottle rate-limits sign-in attempts per email address. It is an
// opt-in hardening knob; the product historically allowed unlimited
// attempts, so hosts enable it explicitly via config.
type SignInThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewSignInThrottle allows `attempts` sign-in attempts per `window` for each
// email, with the full quota available as a burst.
func NewSignInThrottle(attempts int, window time.Duration) *SignInThrottle {
	if attempts < 1 {
		attempts = 1
	}
	return &SignInThrottle{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
	}
}

// Allow reports whether another attempt for this email may proceed now.
func (t *SignInThrottle) Allow(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	lim, ok := t.limiters[email]
	if !ok {
		if len(t.limiters) >= maxTrackedEmails {
			t.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(t.limit, t.burst)
		t.limiters[email] = lim
	}
	return lim.Allow()
}

package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/mrlokans/shelf/internal/config"
)

func newTestRateLimiter(t *testing.T, clock *time.Time) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     3,
		WindowDuration:  time.Minute,
		LockoutDuration: 5 * time.Minute,
		CleanupInterval: time.Hour,
	})
	rl.now = func() time.Time { return *clock }
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiter_LocksAfterMaxAttempts(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, &clock)

	for i := 0; i < 2; i++ {
		if locked, _ := rl.RecordFailure("10.0.0.1", "reader@example.com"); locked {
			t.Fatalf("locked after %d failures", i+1)
		}
	}
	if allowed, _ := rl.Allow("10.0.0.1", "reader@example.com"); !allowed {
		t.Fatal("Allow() = false before reaching the limit")
	}

	locked, retryAfter := rl.RecordFailure("10.0.0.1", "reader@example.com")
	if !locked || retryAfter != 5*time.Minute {
		t.Fatalf("RecordFailure() = (%v, %v), want (true, 5m)", locked, retryAfter)
	}

	allowed, retryAfter := rl.Allow("10.0.0.1", "Reader@Example.com")
	if allowed {
		t.Error("Allow() = true while locked out")
	}
	if retryAfter != 5*time.Minute {
		t.Errorf("retryAfter = %v, want 5m", retryAfter)
	}

	// Other emails from the same IP are unaffected.
	if allowed, _ := rl.Allow("10.0.0.1", "other@example.com"); !allowed {
		t.Error("Allow() = false for a different email")
	}
	if allowed, _ := rl.Allow("10.0.0.2", "reader@example.com"); !allowed {
		t.Error("Allow() = false for a different IP")
	}

	clock = clock.Add(6 * time.Minute)
	if allowed, _ := rl.Allow("10.0.0.1", "reader@example.com"); !allowed {
		t.Error("Allow() = false after lockout expired")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, &clock)

	rl.RecordFailure("10.0.0.1", "reader@example.com")
	rl.RecordFailure("10.0.0.1", "reader@example.com")

	clock = clock.Add(2 * time.Minute)

	if locked, _ := rl.RecordFailure("10.0.0.1", "reader@example.com"); locked {
		t.Error("failures from an expired window still counted")
	}
}

func TestRateLimiter_SuccessClearsRecord(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, &clock)

	rl.RecordFailure("10.0.0.1", "reader@example.com")
	rl.RecordFailure("10.0.0.1", "reader@example.com")
	rl.RecordSuccess("10.0.0.1", "reader@example.com")

	if locked, _ := rl.RecordFailure("10.0.0.1", "reader@example.com"); locked {
		t.Error("RecordSuccess() did not clear earlier failures")
	}
}

func TestRateLimiter_LockoutShorterThanWindow(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     2,
		WindowDuration:  10 * time.Minute,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Hour,
	})
	rl.now = func() time.Time { return clock }
	t.Cleanup(rl.Stop)

	rl.RecordFailure("10.0.0.1", "reader@example.com")
	rl.RecordFailure("10.0.0.1", "reader@example.com")

	clock = clock.Add(20 * time.Second)
	allowed, retryAfter := rl.Allow("10.0.0.1", "reader@example.com")
	if allowed {
		t.Fatal("Allow() = true while locked out")
	}
	if retryAfter != 40*time.Second {
		t.Errorf("retryAfter = %v, want 40s", retryAfter)
	}

	clock = clock.Add(time.Minute)
	if allowed, _ := rl.Allow("10.0.0.1", "reader@example.com"); !allowed {
		t.Fatal("Allow() = false after lockout expired inside the window")
	}

	// A served lockout starts a fresh count.
	if locked, _ := rl.RecordFailure("10.0.0.1", "reader@example.com"); locked {
		t.Error("first failure after lockout locked again")
	}
	if allowed, _ := rl.Allow("10.0.0.1", "reader@example.com"); !allowed {
		t.Error("Allow() = false after a single failure")
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     3,
		WindowDuration:  time.Minute,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(rl.Stop)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rl.Allow("1.2.3.4", "reader@example.com")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rl.RecordFailure("1.2.3.4", "reader@example.com")
			}
		}()
	}
	wg.Wait()

	if allowed, _ := rl.Allow("1.2.3.4", "reader@example.com"); allowed {
		t.Error("Allow() = true after 800 failures")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfigFrom(config.Auth{}))
	defer rl.Stop()

	if rl.maxAttempts != 5 {
		t.Errorf("maxAttempts = %d, want 5", rl.maxAttempts)
	}
	if rl.windowDuration != 15*time.Minute {
		t.Errorf("windowDuration = %v, want 15m", rl.windowDuration)
	}
	if rl.lockoutDuration != 30*time.Minute {
		t.Errorf("lockoutDuration = %v, want 30m", rl.lockoutDuration)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, &clock)

	rl.RecordFailure("10.0.0.1", "reader@example.com")
	clock = clock.Add(time.Hour)
	rl.cleanup()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if len(rl.attempts) != 0 {
		t.Errorf("attempts = %d, want 0 after cleanup", len(rl.attempts))
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "1"},
		{in: 1500 * time.Millisecond, want: "2"},
		{in: 30 * time.Minute, want: "1800"},
	}
	for _, tt := range tests {
		if got := retryAfterSeconds(tt.in); got != tt.want {
			t.Errorf("retryAfterSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

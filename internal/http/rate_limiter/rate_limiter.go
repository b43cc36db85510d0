package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*clientLimiter)
	mu      sync.Mutex
)

// GetLimiter returns the limiter for a key (an IP, or "phone:<number>" for
// OTP requests), creating it on first sight.
func GetLimiter(key string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	c, exists := clients[key]
	if !exists {
		limiter := rate.NewLimiter(1, 3) // 1 request/sec, burst of 3
		clients[key] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for key, c := range clients {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(clients, key)
			}
		}
		mu.Unlock()
	}
}

func CleanupAll() {
	mu.Lock()
	clients = make(map[string]*clientLimiter)
	mu.Unlock()
}

// Package pagecache holds fetched post pages for a short window so a burst
// of page renders does not hammer the content upstream. Entries are keyed by
// the deployment version: when a new build ships, the old entries are simply
// never hit again, which is the whole cache-busting contract.
package pagecache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"puntifurbi-backend/internal/domain/content"
)

// DefaultTTL mirrors the 60-second revalidation window the site has always
// used.
const DefaultTTL = 60 * time.Second

type entry struct {
	page      content.Page
	expiresAt time.Time
}

type Store struct {
	version string
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group

	now func() time.Time
}

func New(version string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		version: version,
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// GetPage returns the cached page for (first, after) or runs fetch to fill
// it. Concurrent callers asking for the same window share one in-flight
// fetch; errors are never cached.
func (s *Store) GetPage(first int, after string, fetch func() (content.Page, error)) (content.Page, error) {
	key := fmt.Sprintf("%s|%d|%s", s.version, first, after)

	s.mu.Lock()
	if e, ok := s.entries[key]; ok && s.now().Before(e.expiresAt) {
		s.mu.Unlock()
		return e.page, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		page, err := fetch()
		if err != nil {
			return content.Page{}, err
		}
		s.mu.Lock()
		s.entries[key] = entry{page: page, expiresAt: s.now().Add(s.ttl)}
		s.mu.Unlock()
		return page, nil
	})
	if err != nil {
		return content.Page{}, err
	}
	return v.(content.Page), nil
}

package pagecache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntifurbi-backend/internal/domain/content"
)

func fixedPage(cursor string) content.Page {
	return content.Page{Posts: []content.Post{{ID: "1", Slug: "a"}}, HasNextPage: true, EndCursor: cursor}
}

func TestGetPageCachesWithinTTL(t *testing.T) {
	s := New("v1", time.Minute)

	calls := 0
	fetch := func() (content.Page, error) {
		calls++
		return fixedPage("c1"), nil
	}

	p1, err := s.GetPage(12, "", fetch)
	require.NoError(t, err)
	p2, err := s.GetPage(12, "", fetch)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, calls)
}

func TestGetPageExpires(t *testing.T) {
	s := New("v1", time.Minute)
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }

	calls := 0
	fetch := func() (content.Page, error) {
		calls++
		return fixedPage("c1"), nil
	}

	_, err := s.GetPage(12, "", fetch)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = s.GetPage(12, "", fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestGetPageDistinctWindowsDistinctEntries(t *testing.T) {
	s := New("v1", time.Minute)

	calls := 0
	fetch := func() (content.Page, error) {
		calls++
		return fixedPage("c1"), nil
	}

	_, _ = s.GetPage(12, "", fetch)
	_, _ = s.GetPage(12, "c1", fetch)
	_, _ = s.GetPage(24, "", fetch)

	assert.Equal(t, 3, calls)
}

func TestGetPageDoesNotCacheErrors(t *testing.T) {
	s := New("v1", time.Minute)

	calls := 0
	fetch := func() (content.Page, error) {
		calls++
		if calls == 1 {
			return content.Page{}, errors.New("upstream down")
		}
		return fixedPage("c1"), nil
	}

	_, err := s.GetPage(12, "", fetch)
	require.Error(t, err)

	page, err := s.GetPage(12, "", fetch)
	require.NoError(t, err)
	assert.Equal(t, "c1", page.EndCursor)
	assert.Equal(t, 2, calls)
}

func TestNewVersionBypassesOldEntries(t *testing.T) {
	old := New("v1", time.Minute)

	calls := 0
	fetch := func() (content.Page, error) {
		calls++
		return fixedPage("c1"), nil
	}

	_, _ = old.GetPage(12, "", fetch)

	fresh := New("v2", time.Minute)
	_, _ = fresh.GetPage(12, "", fetch)

	assert.Equal(t, 2, calls)
}

package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	prev := ""
	for range 1000 {
		id := New()
		require.Len(t, id, 26)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		require.Greater(t, id, prev, "ids must be monotonically increasing")
		prev = id
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at, Time(id))
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := New()
	got, err := Parse("  " + id + " ")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)
}

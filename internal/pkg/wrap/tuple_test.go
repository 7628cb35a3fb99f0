package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntriesAreOrdered(t *testing.T) {
	m := map[string]int{"woods": 2, "bigmap": 1, "laboratory": 3}

	entries := Entries(m)
	assert.Equal(t, []Entry[string, int]{
		{Key: "bigmap", Val: 1},
		{Key: "laboratory", Val: 3},
		{Key: "woods", Val: 2},
	}, entries)
	assert.Equal(t, m, Collect(entries))
}

func TestCollectLastWins(t *testing.T) {
	got := Collect([]Entry[string, int]{{"a", 1}, {"a", 2}})
	assert.Equal(t, map[string]int{"a": 2}, got)
}

func TestEntriesEmpty(t *testing.T) {
	assert.Empty(t, Entries(map[string]int(nil)))
}

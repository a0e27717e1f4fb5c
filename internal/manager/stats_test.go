package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Stats_Empty(t *testing.T) {
	m := newTestManager(t)

	stats := m.Stats()
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.CompletionRate)
	assert.Empty(t, stats.Categories)
	assert.Equal(t, map[string]int{"low": 0, "medium": 0, "high": 0}, stats.Priorities)
}

func TestManager_Stats(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Add("A", AddParams{DueDate: "2026-06-14", Priority: "high", Category: "work"})
	require.NoError(t, err)
	b, err := m.Add("B", AddParams{DueDate: "2026-06-16", Priority: "low"})
	require.NoError(t, err)
	c, err := m.Add("C", AddParams{Category: "work"})
	require.NoError(t, err)
	m.MarkCompleted(b.ID())
	m.MarkCancelled(c.ID())

	stats := m.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 33.3, stats.CompletionRate)
	assert.Equal(t, map[string]int{"work": 2, "Uncategorized": 1}, stats.Categories)
	assert.Equal(t, map[string]int{"low": 1, "medium": 1, "high": 1}, stats.Priorities)
}

func TestManager_Stats_HalfComplete(t *testing.T) {
	m := newTestManager(t)
	a, err := m.Add("X", AddParams{DueDate: "2026-06-14", Priority: "high"})
	require.NoError(t, err)
	b, err := m.Add("Y", AddParams{DueDate: "2026-06-16", Priority: "low"})
	require.NoError(t, err)
	m.MarkCompleted(b.ID())

	overdue := m.Overdue()
	require.Len(t, overdue, 1)
	assert.Equal(t, a.ID(), overdue[0].ID())

	stats := m.Stats()
	assert.Equal(t, 50.0, stats.CompletionRate)
}

package manager

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	m := newTestManager(t)
	_, err := m.Add("First", AddParams{DueDate: "2026-07-01", Priority: "high", Category: "work", Description: "details"})
	require.NoError(t, err)
	b, err := m.Add("Second", AddParams{})
	require.NoError(t, err)
	m.MarkCompleted(b.ID())

	require.True(t, m.SaveFile(path))

	loaded := newTestManager(t)
	require.NoError(t, loaded.LoadFile(path))
	require.Equal(t, m.Len(), loaded.Len())
	assert.Equal(t, m.Records(), loaded.Records())
}

func TestManager_SaveFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "tasks.json")

	m := newTestManager(t)
	_, err := m.Add("Task", AddParams{})
	require.NoError(t, err)

	require.True(t, m.SaveFile(path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestManager_SaveFile_IOError(t *testing.T) {
	m := newTestManager(t)
	// Parent path is a file, so MkdirAll fails
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	assert.False(t, m.SaveFile(filepath.Join(blocker, "sub", "tasks.json")))
}

func TestManager_LoadFile_MissingFile(t *testing.T) {
	m := newTestManager(t)
	err := m.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestManager_LoadFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	m := newTestManager(t)
	_, err := m.Add("Existing", AddParams{})
	require.NoError(t, err)

	assert.ErrorIs(t, m.LoadFile(path), domain.ErrParse)
	// Collection untouched on failure
	assert.Equal(t, 1, m.Len())
}

func TestManager_LoadFile_MissingTasksKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": []}`), 0o600))

	m := newTestManager(t)
	assert.ErrorIs(t, m.LoadFile(path), domain.ErrSchema)
}

func TestOpen_Lenient(t *testing.T) {
	dir := t.TempDir()

	// Malformed content: logged, empty manager, no error
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("oops"), 0o600))
	m, err := Open(badPath)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	// Missing schema key: same treatment
	noKeyPath := filepath.Join(dir, "nokey.json")
	require.NoError(t, os.WriteFile(noKeyPath, []byte(`{}`), 0o600))
	m, err = Open(noKeyPath)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	// Missing file stays fatal
	_, err = Open(filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestManager_MergeFile(t *testing.T) {
	dir := t.TempDir()

	source := newTestManager(t)
	shared, err := source.Add("Shared", AddParams{})
	require.NoError(t, err)
	_, err = source.Add("Only in source", AddParams{Priority: "low"})
	require.NoError(t, err)
	sourcePath := filepath.Join(dir, "source.json")
	require.True(t, source.SaveFile(sourcePath))

	m := newTestManager(t)
	// Same id already present: merge must not duplicate it
	_, err = domainTaskInto(m, shared.Record())
	require.NoError(t, err)

	added, err := m.MergeFile(sourcePath)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, m.Len())

	// Merging again adds nothing
	added, err = m.MergeFile(sourcePath)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	// Missing file propagates
	_, err = m.MergeFile(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// domainTaskInto injects a task with a fixed record into a manager via
// the JSON path, preserving its id.
func domainTaskInto(m *Manager, r domain.Record) (*domain.Task, error) {
	task, err := domain.TaskFromRecord(r)
	if err != nil {
		return nil, err
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

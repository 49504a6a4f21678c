package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrints(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestStatusIdleByDefault(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "idle at 00:00:00")
}

func TestStartThenStatusShowsRunningAcrossInvocations(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "start", "writing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "timer running for \"writing\"")

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "running for \"writing\"")
}

func TestStartTwiceFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "start", "writing")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "start", "writing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestPauseWithoutRunningTimerFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "pause")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timer is not running")
}

func TestRecordWithNoElapsedTimeIsNoop(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "record")
	require.NoError(t, err)
	assert.Contains(t, stdout, "nothing to record")
}

func TestRecordPausedSession(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeTimerFixture(home, `{"running":false,"paused_elapsed_ms":90000,"task_name":"deep work"}`))

	stdout, _, err := executeCLI(t, home, "record")
	require.NoError(t, err)
	assert.Contains(t, stdout, "recorded 00:01:30 for \"deep work\"")

	// The commit resets the stopwatch and clears its persisted state.
	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "idle at 00:00:00")

	_, err = os.Stat(filepath.Join(dataDir(home), "timer.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	stdout, _, err = executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deep work")
	assert.Contains(t, stdout, "00:01:30")
}

func TestResetClearsPersistedTimerState(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeTimerFixture(home, `{"running":true,"anchor_ms":1,"task_name":"deep work"}`))

	stdout, _, err := executeCLI(t, home, "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "timer reset")

	_, err = os.Stat(filepath.Join(dataDir(home), "timer.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "idle at 00:00:00")
}

func TestHistoryListEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no sessions recorded")
}

func TestHistoryListShowsRecords(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deep work")
	assert.Contains(t, stdout, "email")
	assert.Contains(t, stdout, "2026-01-15")
}

func TestHistoryListJSON(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "history", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"task_name\": \"deep work\"")
}

func TestHistoryDeleteRemovesExactlyOneRecord(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	_, _, err := executeCLI(t, home, "history", "delete", "rec-1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "deep work")
	assert.Contains(t, stdout, "email")
}

func TestHistoryClearRequiresConfirmation(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	_, _, err := executeCLI(t, home, "history", "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	_, _, err = executeCLI(t, home, "history", "clear", "--yes")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no sessions recorded")
}

func TestRenameRewritesAllMatchingRecords(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "rename", "deep work", "focus")
	require.NoError(t, err)
	assert.Contains(t, stdout, "renamed 1 session(s)")

	stdout, _, err = executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "focus")
	assert.NotContains(t, stdout, "deep work")
}

func TestStatsJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "stats", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"top_tasks\"")
	assert.Contains(t, stdout, "deep work")
}

func TestStatsRendersDashboard(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Effort Dashboard")
	assert.Contains(t, stdout, "deep work")
}

func TestCorruptHistoryFailsOpen(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dataDir(home), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir(home), "history.json"), []byte("{corrupt"), 0o644))

	stdout, _, err := executeCLI(t, home, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no sessions recorded")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func dataDir(home string) string {
	return filepath.Join(home, ".local", "share", "tally")
}

func writeTimerFixture(home, payload string) error {
	if err := os.MkdirAll(dataDir(home), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir(home), "timer.json"), []byte(payload), 0o644)
}

func writeHistoryFixture(home string) error {
	if err := os.MkdirAll(dataDir(home), 0o755); err != nil {
		return err
	}

	history := `{
  "version": 1,
  "records": [
    {"id": "rec-1", "date": "2026-01-15", "start_time": "09:00", "task_name": "deep work", "duration_ms": 1500000},
    {"id": "rec-2", "date": "2026-01-14", "start_time": "16:30", "task_name": "email", "duration_ms": 600000}
  ]
}`

	return os.WriteFile(filepath.Join(dataDir(home), "history.json"), []byte(history), 0o644)
}

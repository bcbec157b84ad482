package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wannabe/internal/store"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestContentValidateBuiltIn(t *testing.T) {
	out := execute(t, "content", "validate")
	assert.Contains(t, out, "built-in catalog: ok")
}

func TestContentValidateRejectsBadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v9.0.0\n"), 0o644))

	rootCmd.SetArgs([]string{"content", "validate", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestContentShow(t *testing.T) {
	out := execute(t, "content", "show", "--content", "")
	assert.Contains(t, out, "E101")
	assert.Contains(t, out, "3 lessons")
}

func TestHistoryListsJournal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.EventRepo().AppendTransition(context.Background(), store.TransitionEvent{
		SessionID: "0123456789abcdef",
		Timestamp: time.Now(),
		Intent:    "navigate",
		From:      "dashboard",
		To:        "learning-hub",
		Role:      "kid",
	}))
	require.NoError(t, st.Close())

	out := execute(t, "history", "--db", dbPath, "--limit", "5")
	assert.Contains(t, out, "learning-hub")
	assert.Contains(t, out, "01234567")
	assert.Contains(t, out, "1 events")
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "wannabe (devel)")
}

func TestExecuteContextReachesCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Earlier runs leave their context on the subcommand; clear it so the
	// root's context is inherited again.
	historyCmd.SetContext(nil)
	rootCmd.SetArgs([]string{"history", "--db", dbPath})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetContext(context.Background())
		historyCmd.SetContext(context.Background())
	})

	err := ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/jobmart/internal/reconcile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAdminTokenHash(t *testing.T) {
	out, err := run(t, "admin-token", "hash", "operator")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("operator")))
}

func TestReconcileListAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	journal, err := reconcile.Open(path)
	require.NoError(t, err)
	entry, err := journal.Record(reconcile.Entry{
		Kind:    reconcile.KindCommitUnknown,
		Command: "pay_access_fee",
		Subject: "interest-1",
		Error:   "commit outcome unknown",
	})
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	out, err := run(t, "reconcile", "list", "--journal", path)
	require.NoError(t, err)
	assert.Contains(t, out, entry.ID)
	assert.Contains(t, out, "pay_access_fee")

	out, err = run(t, "reconcile", "resolve", entry.ID, "--journal", path)
	require.NoError(t, err)
	assert.Contains(t, out, "resolved "+entry.ID)

	out, err = run(t, "reconcile", "list", "--journal", path)
	require.NoError(t, err)
	assert.NotContains(t, out, entry.ID)

	out, err = run(t, "reconcile", "list", "--all", "--journal", path)
	require.NoError(t, err)
	assert.Contains(t, out, entry.ID)
}

func TestReconcileResolveUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	_, err := run(t, "reconcile", "resolve", "missing", "--journal", path)
	assert.True(t, errors.Is(err, reconcile.ErrNotFound))
}

func TestFundingRejectsInvalidID(t *testing.T) {
	_, err := run(t, "funding", "approve", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transaction id")
}

func TestBalanceRejectsInvalidID(t *testing.T) {
	_, err := run(t, "balance", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid account id")
}

func TestLogJournal(t *testing.T) {
	entry, err := logJournal{}.Record(reconcile.Entry{Kind: reconcile.KindSideEffect, Command: "approve_funding:notify"})
	require.NoError(t, err)
	assert.Equal(t, "approve_funding:notify", entry.Command)
}

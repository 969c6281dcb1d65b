package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"autoscan/feature/endpoints"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStoreEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", filepath.Join(t.TempDir(), "inventory.db"))
	t.Setenv("DATABASE_AUTO_MIGRATE", "true")
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		args = []string{}
	}
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func exitCodeOf(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	if err != nil {
		return endpoints.ExitConnection
	}
	return endpoints.ExitOK
}

func TestProcessor(t *testing.T) {
	setupStoreEnv(t)

	out, err := run(t, "T10123456789", "PN12340V5")
	require.NoError(t, err)
	assert.Contains(t, out, "0123456789 added to inventory")

	out, err = run(t, "T10123456789")
	require.NoError(t, err)
	assert.Contains(t, out, "removed from location")

	_, err = run(t, "0999999999")
	assert.Equal(t, endpoints.ExitNotFound, exitCodeOf(err))

	_, err = run(t, "T10123456789", "NOT-A-LOCATION")
	assert.Equal(t, endpoints.ExitUnrecognized, exitCodeOf(err))
}

func TestProcessor_Args(t *testing.T) {
	setupStoreEnv(t)

	_, err := run(t)
	assert.Error(t, err)

	_, err = run(t, "a", "b", "c")
	assert.Error(t, err)
}

func TestProcessor_EmptyLocationArgument(t *testing.T) {
	setupStoreEnv(t)

	_, err := run(t, "T10123456789", "PN12340V5")
	require.NoError(t, err)

	for _, location := range []string{"", "   "} {
		out, err := run(t, "T10123456789", location)
		assert.Equal(t, endpoints.ExitUnrecognized, exitCodeOf(err), "%q", location)
		assert.NotContains(t, out, "removed from location")
	}

	out, err := run(t, "show", "T10123456789")
	require.NoError(t, err)
	assert.Contains(t, out, `"location": "12N34"`)
}

func TestProcessor_StoreUnavailable(t *testing.T) {
	setupStoreEnv(t)
	t.Setenv("DATABASE_NAME", filepath.Join(t.TempDir(), "missing", "inventory.db"))
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")

	_, err := run(t, "T10123456789", "S42")
	assert.Equal(t, endpoints.ExitConnection, exitCodeOf(err))
}

func TestDecodeCommand(t *testing.T) {
	setupStoreEnv(t)

	out, err := run(t, "decode", "T20123456789", "PE56782S240")
	require.NoError(t, err)
	assert.Contains(t, out, `"network_id": "0123456789"`)
	assert.Contains(t, out, `"location": "56E78"`)

	_, err = run(t, "decode", "T20123456789", "Q1")
	assert.Equal(t, endpoints.ExitUnrecognized, exitCodeOf(err))
}

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := &exitError{code: endpoints.ExitCommit, err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "exit status 10", (&exitError{code: endpoints.ExitNotFound}).Error())
}

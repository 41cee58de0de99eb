// Package testutil provides shared test helpers for the error catalogue
// module.
//
// Helpers accept [testing.TB]. Functions named Require* halt the test on
// failure ([require]); functions named Assert* record the failure and
// continue ([assert]). Every helper calls t.Helper().
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
)

// RequireErrorCode halts the test if err is nil, carries no catalogue
// error, or carries a code other than code.
//
// Example:
//
//	err := loader.Load(nil)
//	testutil.RequireErrorCode(t, err, caterr.CodeIllegalParameter)
func RequireErrorCode(t testing.TB, err error, code caterr.Code, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	e, ok := caterr.AsError(err)
	require.True(t, ok, "expected catalogue error, got %T: %v", err, err)
	require.Equal(t, code, e.Code,
		"error code mismatch: got %d (%s), want %d (%s): %v",
		int(e.Code), e.Code, int(code), code, err)
}

// AssertErrorCode is the non-halting form of [RequireErrorCode], for
// table-driven tests that should check every row.
func AssertErrorCode(t testing.TB, err error, code caterr.Code, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	e, ok := caterr.AsError(err)
	if !assert.True(t, ok, "expected catalogue error, got %T: %v", err, err) {
		return false
	}
	return assert.Equal(t, code, e.Code,
		"error code mismatch: got %d (%s), want %d (%s): %v",
		int(e.Code), e.Code, int(code), code, err)
}

// TempFile writes content to a file called name inside t.TempDir() and
// returns its path. The file has mode 0600.
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp file %s", path)
	return path
}

// SetEnv sets an environment variable for the duration of the test and
// restores the previous value afterwards. Tests using it must not call
// t.Parallel() unless the variable is unique to the test.
func SetEnv(t testing.TB, key, value string) {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value), "failed to set env var %s", key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// AssertJSONContains marshals v and asserts the JSON contains expected.
func AssertJSONContains(t testing.TB, v any, expected string) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "json.Marshal failed")
	assert.Contains(t, string(data), expected,
		"expected JSON to contain %q, got: %s", expected, string(data))
}

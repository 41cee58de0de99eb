package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/StricklySoft/errcatalog/internal/testutil"
	"github.com/StricklySoft/errcatalog/internal/testutil/fixtures"
	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
	"github.com/StricklySoft/errcatalog/pkg/registry"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(registry.Default(), "test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestList_JSON(t *testing.T) {
	out, _, err := run(t, "list", "-o", "json")
	require.NoError(t, err)

	var entries []entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, registry.Default().Len())
	assert.Equal(t, "VOC_ERROR_ILLEGAL_STATE", entries[0].Identifier)
	assert.Equal(t, registry.BandStorage, entries[0].Band)
}

func TestList_BandFilterYAML(t *testing.T) {
	out, _, err := run(t, "list", "--band", "cursor", "-o", "yaml")
	require.NoError(t, err)

	var entries []entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, entry{
		Identifier: "ERROR_CURSOR_NOT_FOUND",
		Code:       1600,
		Template:   "cursor not found",
		Band:       registry.BandCursor,
	}, entries[0])
}

func TestList_UnknownBand(t *testing.T) {
	_, _, err := run(t, "list", "--band", "cluster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown band "cluster"`)
}

func TestList_Table(t *testing.T) {
	out, _, err := run(t, "list", "--band", "query")
	require.NoError(t, err)
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "ERROR_QUERY_PARSE")
	assert.Contains(t, out, "parse error: %s")
	assert.NotContains(t, out, "VOC_ERROR_ILLEGAL_STATE")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"by identifier", "ERROR_QUERY_PARSE"},
		{"by code", "1510"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "lookup", tt.arg, "-o", "json")
			require.NoError(t, err)

			var e entry
			require.NoError(t, json.Unmarshal([]byte(out), &e))
			assert.Equal(t, entry{
				Identifier:   "ERROR_QUERY_PARSE",
				Code:         1510,
				Template:     "parse error: %s",
				Band:         registry.BandQuery,
				Placeholders: 1,
			}, e)
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	_, _, err := run(t, "lookup", "DOES_NOT_EXIST")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"DOES_NOT_EXIST"`)

	_, _, err = run(t, "lookup", "--", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code -1")
}

func TestFormat(t *testing.T) {
	out, _, err := run(t, "format", "ERROR_QUERY_COLLECTION_NAME_INVALID", "foo")
	require.NoError(t, err)
	assert.Equal(t, "collection name 'foo' is invalid\n", out)
}

func TestFormat_ArgumentMismatchWarns(t *testing.T) {
	out, stderr, err := run(t, "format", "1510")
	require.NoError(t, err)
	assert.Equal(t, "parse error: %s\n", out)
	assert.Contains(t, stderr, "argument count does not match placeholders")
}

func TestBands(t *testing.T) {
	out, _, err := run(t, "bands", "-o", "json")
	require.NoError(t, err)

	var got []bandSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(registry.DefaultBands))
	assert.Equal(t, bandSummary{Name: registry.BandQuery, Low: 1500, High: 1599, Count: 20}, got[3])
}

func TestValidate_Builtin(t *testing.T) {
	out, _, err := run(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok: 43 definitions in builtin\n", out)
}

func TestValidate_ValidFile(t *testing.T) {
	for name, content := range map[string]string{
		"table.yaml": fixtures.ValidTableYAML,
		"table.json": fixtures.ValidTableJSON,
	} {
		path := testutil.TempFile(t, name, content)
		out, _, err := run(t, "validate", "--file", path)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(out, "ok: 3 definitions"), out)
	}
}

func TestValidate_InvalidFile(t *testing.T) {
	path := testutil.TempFile(t, "table.yaml", fixtures.InvalidTableYAML)
	out, stderr, err := run(t, "validate", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 violations")
	assert.Contains(t, out, "code already used by ERROR_QUERY_PARSE")
	assert.Contains(t, out, `identifier "error_lower"`)
	assert.Contains(t, out, "code 1300 is outside every band")
	assert.Contains(t, stderr, "validation failed")
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := run(t, "validate", "--file", t.TempDir()+"/missing.yaml")
	testutil.RequireErrorCode(t, err, caterr.CodeFileNotFound)
}

func TestConfig_EnvAndFlags(t *testing.T) {
	testutil.SetEnv(t, EnvPrefix+"_OUTPUT", "json")

	out, _, err := run(t, "lookup", "1600")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	out, _, err = run(t, "lookup", "1600", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "identifier: ERROR_CURSOR_NOT_FOUND")
}

func TestConfig_FlagOverridesInvalidEnv(t *testing.T) {
	testutil.SetEnv(t, EnvPrefix+"_OUTPUT", "csv")
	testutil.SetEnv(t, EnvPrefix+"_LOG_LEVEL", "loud")

	out, _, err := run(t, "lookup", "1600", "-o", "json", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	_, _, err = run(t, "lookup", "1600", "--log-level", "error")
	testutil.RequireErrorCode(t, err, caterr.CodeIllegalParameter)
}

func TestConfig_File(t *testing.T) {
	path := testutil.TempFile(t, "errcat.yaml", fixtures.ConfigYAML)
	out, stderr, err := run(t, "--config", path, "lookup", "1200")
	require.NoError(t, err)
	assert.Contains(t, out, "identifier: VOC_ERROR_DOCUMENT_NOT_FOUND")
	assert.Contains(t, stderr, `"msg":"configuration resolved"`)
}

func TestConfig_Invalid(t *testing.T) {
	_, _, err := run(t, "list", "-o", "csv")
	testutil.RequireErrorCode(t, err, caterr.CodeIllegalParameter)

	_, _, err = run(t, "list", "--log-level", "loud")
	testutil.RequireErrorCode(t, err, caterr.CodeIllegalParameter)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "code", 1510)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"code":1510`)

	_, err = NewLogger(LogConfig{Level: "verbose"}, &buf)
	testutil.RequireErrorCode(t, err, caterr.CodeIllegalParameter)
}

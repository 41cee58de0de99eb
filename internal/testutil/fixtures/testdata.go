// Package fixtures provides shared test data for the error catalogue
// test suites.
package fixtures

// Candidate table files used by config and CLI tests.
const (
	// ValidTableYAML is a small, consistent catalogue in the file format
	// accepted by `errcat validate --file`.
	ValidTableYAML = `- identifier: VOC_ERROR_ILLEGAL_STATE
  code: 1000
  template: illegal state
- identifier: ERROR_QUERY_PARSE
  code: 1510
  template: "parse error: %s"
- identifier: ERROR_CURSOR_NOT_FOUND
  code: 1600
  template: cursor not found
`

	// ValidTableJSON is ValidTableYAML in JSON form.
	ValidTableJSON = `[
  {"identifier": "VOC_ERROR_ILLEGAL_STATE", "code": 1000, "template": "illegal state"},
  {"identifier": "ERROR_QUERY_PARSE", "code": 1510, "template": "parse error: %s"},
  {"identifier": "ERROR_CURSOR_NOT_FOUND", "code": 1600, "template": "cursor not found"}
]`

	// InvalidTableYAML reuses code 1510, uses a lowercase identifier, and
	// places a code in the reserved 1300 range.
	InvalidTableYAML = `- identifier: ERROR_QUERY_PARSE
  code: 1510
  template: "parse error: %s"
- identifier: ERROR_QUERY_REPARSE
  code: 1510
  template: reparse
- identifier: error_lower
  code: 1001
  template: lower
- identifier: ERROR_CLUSTER_DOWN
  code: 1300
  template: cluster down
`
)

// Values used by config loader tests.
const (
	// EnvPrefix is the environment variable prefix for config tests.
	EnvPrefix = "ERRCATTEST"

	// ConfigYAML is a CLI configuration file.
	ConfigYAML = `output: yaml
log:
  level: debug
  format: json
`

	// ConfigJSON is ConfigYAML in JSON form.
	ConfigJSON = `{"output": "json", "log": {"level": "warn", "format": "text"}}`
)

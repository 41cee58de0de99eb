package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type panickyStringer struct{}

func (panickyStringer) String() string { panic("boom") }

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			name:     "single placeholder",
			template: "collection name '%s' is invalid",
			args:     []any{"foo"},
			want:     "collection name 'foo' is invalid",
		},
		{
			name:     "no placeholders ignores args",
			template: "cursor not found",
			args:     []any{"extra", 42},
			want:     "cursor not found",
		},
		{
			name:     "missing argument keeps marker",
			template: "parse error: %s",
			want:     "parse error: %s",
		},
		{
			name:     "partial substitution",
			template: "%s and %s and %s",
			args:     []any{"a", "b"},
			want:     "a and b and %s",
		},
		{
			name:     "surplus arguments ignored",
			template: "number '%s' is out of range",
			args:     []any{7, 8, 9},
			want:     "number '7' is out of range",
		},
		{
			name:     "empty template",
			template: "",
			args:     []any{"x"},
			want:     "",
		},
		{
			name:     "placeholder at both ends",
			template: "%s-%s",
			args:     []any{"x", "y"},
			want:     "x-y",
		},
		{
			name:     "other verbs are literal",
			template: "100%% of %d and %s",
			args:     []any{"z"},
			want:     "100%% of %d and z",
		},
		{
			name:     "argument containing marker is not reparsed",
			template: "%s then %s",
			args:     []any{"%s", "b"},
			want:     "%s then b",
		},
		{
			name:     "non-string arguments use textual form",
			template: "%s %s %s %s",
			args:     []any{nil, 3.5, true, errors.New("cause")},
			want:     "<nil> 3.5 true cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			def := Definition{Identifier: "TEST", Code: 1, Template: tt.template}
			assert.Equal(t, tt.want, Format(def, tt.args...))
			assert.Equal(t, tt.want, def.Format(tt.args...))
		})
	}
}

func TestFormat_PanickingStringerDoesNotPanic(t *testing.T) {
	t.Parallel()
	def := Definition{Identifier: "TEST", Code: 1, Template: "value %s"}

	assert.NotPanics(t, func() {
		got := def.Format(panickyStringer{})
		assert.Contains(t, got, "PANIC")
	})
}

func TestDefinition_Placeholders(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Definition{Template: ""}.Placeholders())
	assert.Equal(t, 0, Definition{Template: "illegal state"}.Placeholders())
	assert.Equal(t, 1, Definition{Template: "parse error: %s"}.Placeholders())
	assert.Equal(t, 2, Definition{Template: "%s/%s"}.Placeholders())
}

func TestDefinition_String(t *testing.T) {
	t.Parallel()
	def := Definition{Identifier: "ERROR_CURSOR_NOT_FOUND", Code: 1600, Template: "cursor not found"}
	assert.Equal(t, "ERROR_CURSOR_NOT_FOUND (1600)", def.String())
}

package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDefinitions() []Definition {
	return []Definition{
		{Identifier: "VOC_ERROR_ILLEGAL_STATE", Code: 1000, Template: "illegal state"},
		{Identifier: "ERROR_QUERY_PARSE", Code: 1510, Template: "parse error: %s"},
		{Identifier: "ERROR_CURSOR_NOT_FOUND", Code: 1600, Template: "cursor not found"},
		{Identifier: "EMPTY_TEMPLATE", Code: 1601, Template: ""},
	}
}

func TestNew_IndexesBothKeys(t *testing.T) {
	t.Parallel()
	r, err := New(sampleDefinitions())
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())

	for _, d := range sampleDefinitions() {
		byID, ok := r.LookupByIdentifier(d.Identifier)
		require.True(t, ok, "identifier %s", d.Identifier)
		assert.Equal(t, d, byID)

		byCode, ok := r.LookupByCode(d.Code)
		require.True(t, ok, "code %d", d.Code)
		assert.Equal(t, d, byCode)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()
	defs := sampleDefinitions()
	r, err := New(defs)
	require.NoError(t, err)

	defs[0].Template = "mutated"
	defs[0].Code = 9999

	got, ok := r.LookupByIdentifier("VOC_ERROR_ILLEGAL_STATE")
	require.True(t, ok)
	assert.Equal(t, "illegal state", got.Template)
	_, ok = r.LookupByCode(9999)
	assert.False(t, ok)
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()
	r, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())

	n := 0
	for range r.All() {
		n++
	}
	assert.Zero(t, n)
}

func TestNew_DuplicateCode(t *testing.T) {
	t.Parallel()
	defs := []Definition{
		{Identifier: "FIRST", Code: 1500, Template: "first"},
		{Identifier: "SECOND", Code: 1500, Template: "second"},
	}

	r, err := New(defs)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.NotErrorIs(t, err, ErrDuplicateIdentifier)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "code", dup.Key)
	assert.Equal(t, defs[0], dup.First)
	assert.Equal(t, defs[1], dup.Second)
	assert.Equal(t, "registry: duplicate code 1500: FIRST and SECOND", err.Error())
}

func TestNew_DuplicateIdentifier(t *testing.T) {
	t.Parallel()
	defs := []Definition{
		{Identifier: "SAME", Code: 1000, Template: "a"},
		{Identifier: "SAME", Code: 1001, Template: "b"},
	}

	_, err := New(defs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.NotErrorIs(t, err, ErrDuplicateCode)
	assert.Equal(t, `registry: duplicate identifier "SAME": codes 1000 and 1001`, err.Error())
}

func TestMustNew_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()
	defs := []Definition{
		{Identifier: "A", Code: 1, Template: ""},
		{Identifier: "B", Code: 1, Template: ""},
	}
	assert.Panics(t, func() { MustNew(defs) })
	assert.NotPanics(t, func() { MustNew(sampleDefinitions()) })
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()
	r := MustNew(sampleDefinitions())

	tests := []struct {
		name   string
		lookup func() (Definition, bool)
	}{
		{"unknown identifier", func() (Definition, bool) { return r.LookupByIdentifier("DOES_NOT_EXIST") }},
		{"identifier is case sensitive", func() (Definition, bool) { return r.LookupByIdentifier("error_query_parse") }},
		{"empty identifier", func() (Definition, bool) { return r.LookupByIdentifier("") }},
		{"negative code", func() (Definition, bool) { return r.LookupByCode(-1) }},
		{"zero code", func() (Definition, bool) { return r.LookupByCode(0) }},
		{"code in gap", func() (Definition, bool) { return r.LookupByCode(1300) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var (
				def Definition
				ok  bool
			)
			assert.NotPanics(t, func() { def, ok = tt.lookup() })
			assert.False(t, ok)
			assert.Equal(t, Definition{}, def)
		})
	}
}

func TestNilRegistry(t *testing.T) {
	t.Parallel()
	var r *Registry

	_, ok := r.LookupByIdentifier("ERROR_QUERY_PARSE")
	assert.False(t, ok)
	_, ok = r.LookupByCode(1510)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
	assert.Nil(t, r.Definitions())
	for range r.All() {
		t.Fatal("nil registry yielded a definition")
	}
}

func TestAll_ExhaustiveAndRestartable(t *testing.T) {
	t.Parallel()
	defs := sampleDefinitions()
	r := MustNew(defs)

	collect := func() []Definition {
		var out []Definition
		for d := range r.All() {
			out = append(out, d)
		}
		return out
	}

	first := collect()
	second := collect()
	if diff := cmp.Diff(defs, first); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	t.Parallel()
	r := MustNew(sampleDefinitions())

	n := 0
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	t.Parallel()
	r := MustNew(sampleDefinitions())

	defs := r.Definitions()
	defs[0].Template = "mutated"

	got, ok := r.LookupByCode(1000)
	require.True(t, ok)
	assert.Equal(t, "illegal state", got.Template)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	t.Parallel()
	r := MustNew(sampleDefinitions())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				d, ok := r.LookupByCode(1510)
				if !ok || d.Identifier != "ERROR_QUERY_PARSE" {
					t.Errorf("goroutine %d: LookupByCode(1510) = %v, %v", i, d, ok)
					return
				}
				if got := d.Format(fmt.Sprint(i)); got != "parse error: "+fmt.Sprint(i) {
					t.Errorf("goroutine %d: Format = %q", i, got)
					return
				}
				n := 0
				for range r.All() {
					n++
				}
				if n != r.Len() {
					t.Errorf("goroutine %d: All() yielded %d, want %d", i, n, r.Len())
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestDuplicateError_IsUnrelated(t *testing.T) {
	t.Parallel()
	err := &DuplicateError{Key: "code"}
	assert.False(t, errors.Is(err, errors.New("registry: duplicate code")))
}

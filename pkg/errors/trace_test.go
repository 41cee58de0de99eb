package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return recorder, tp
}

func TestRecordSpan_CatalogueError(t *testing.T) {
	t.Parallel()
	recorder, tp := newRecorder(t)

	_, span := tp.Tracer("test").Start(context.Background(), "query.Execute")
	RecordSpan(span, QueryParse("unexpected token"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "1510: parse error: unexpected token", s.Status().Description)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, int64(1510), attrs[AttrCode].AsInt64())
	assert.Equal(t, "ERROR_QUERY_PARSE", attrs[AttrIdentifier].AsString())
	assert.Equal(t, "query", attrs[AttrBand].AsString())

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "exception", s.Events()[0].Name)
}

func TestRecordSpan_StandardError(t *testing.T) {
	t.Parallel()
	recorder, tp := newRecorder(t)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	RecordSpan(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Empty(t, spans[0].Attributes())
}

func TestRecordSpan_NoOp(t *testing.T) {
	t.Parallel()
	recorder, tp := newRecorder(t)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	RecordSpan(span, nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.NotPanics(t, func() {
		_, nonRecording := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "op")
		RecordSpan(nonRecording, New(CodeConflict))
		RecordSpan(nil, New(CodeConflict))
	})
}

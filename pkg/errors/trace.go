package errors

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys set by [RecordSpan].
const (
	AttrCode       = attribute.Key("error.code")
	AttrIdentifier = attribute.Key("error.identifier")
	AttrBand       = attribute.Key("error.band")
)

// RecordSpan records err on span and marks the span as failed. When err
// carries a catalogue *Error, its code, identifier, and band are added as
// span attributes. A nil err or a non-recording span is a no-op.
//
// Example:
//
//	ctx, span := tracer.Start(ctx, "query.Execute")
//	defer span.End()
//	if err := run(ctx); err != nil {
//	    errors.RecordSpan(span, err)
//	    return err
//	}
func RecordSpan(span trace.Span, err error) {
	if err == nil || span == nil || !span.IsRecording() {
		return
	}
	if e, ok := AsError(err); ok {
		span.SetAttributes(
			AttrCode.Int(int(e.Code)),
			AttrIdentifier.String(e.Identifier),
			AttrBand.String(e.Code.Band()),
		)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

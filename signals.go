package shear

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for purge and serialization events.
var (
	SignalPurgerCreated       = capitan.NewSignal("shear.purger.created", "Purger instantiated")
	SignalPurgeStart          = capitan.NewSignal("shear.purge.start", "Purge operation beginning")
	SignalPurgeComplete       = capitan.NewSignal("shear.purge.complete", "Purge operation finished")
	SignalFieldPurged         = capitan.NewSignal("shear.field.purged", "Field fragment removed from document")
	SignalSerializeComplete   = capitan.NewSignal("shear.serialize.complete", "Serialize operation finished")
	SignalDeserializeComplete = capitan.NewSignal("shear.deserialize.complete", "Deserialize operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyField       = capitan.NewStringKey("field")
	KeySyntax      = capitan.NewStringKey("syntax")
	KeySize        = capitan.NewIntKey("size")
	KeyResultSize  = capitan.NewIntKey("result_size")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyRemoved     = capitan.NewIntKey("removed")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitPurgerCreated emits an event when a purger is created.
func emitPurgerCreated(ctx context.Context, typeName string, fields int) {
	capitan.Emit(ctx, SignalPurgerCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitPurgeStart emits an event when purge begins.
func emitPurgeStart(ctx context.Context, typeName string, size int) {
	capitan.Emit(ctx, SignalPurgeStart,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitPurgeComplete emits an event when purge finishes.
func emitPurgeComplete(ctx context.Context, typeName string, size, resultSize, removed int, duration time.Duration) {
	capitan.Emit(ctx, SignalPurgeComplete,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyResultSize.Field(resultSize),
		KeyRemoved.Field(removed),
		KeyDuration.Field(duration),
	)
}

// emitFieldPurged emits an event for each fragment removed.
func emitFieldPurged(ctx context.Context, typeName, field string, syntax Syntax, size int) {
	capitan.Emit(ctx, SignalFieldPurged,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeySyntax.Field(string(syntax)),
		KeySize.Field(size),
	)
}

// emitSerializeComplete emits an event when serialize finishes.
func emitSerializeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}

// emitDeserializeComplete emits an event when deserialize finishes.
func emitDeserializeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeserializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeserializeComplete, fields...)
	}
}

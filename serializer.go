package shear

import (
	"context"
	"reflect"
	"time"
)

// Serializer pairs a Codec with a Purger for T.
//
// Serialize and Deserialize pass straight through to the codec. SerializePurged
// additionally strips T's own marked fields from the encoded text, leaving
// only what T inherits from the types it embeds.
type Serializer[T any] struct {
	codec  Codec
	purger *Purger[T]
}

// NewSerializer returns a Serializer for T using codec.
// Options configure the underlying Purger.
func NewSerializer[T any](codec Codec, opts ...PurgerOption) (*Serializer[T], error) {
	p, err := NewPurger[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Serializer[T]{codec: codec, purger: p}, nil
}

// Purger returns the purger used by SerializePurged.
func (s *Serializer[T]) Purger() *Purger[T] {
	return s.purger
}

// Serialize encodes obj as a string.
func (s *Serializer[T]) Serialize(ctx context.Context, obj *T) (string, error) {
	start := time.Now()

	data, err := s.codec.Marshal(obj)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
	}

	emitSerializeComplete(ctx, s.codec.ContentType(), s.purger.typeName, len(data), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize decodes doc into a new T.
func (s *Serializer[T]) Deserialize(ctx context.Context, doc string) (*T, error) {
	start := time.Now()

	var obj T
	err := s.codec.Unmarshal([]byte(doc), &obj)
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
	}

	emitDeserializeComplete(ctx, s.codec.ContentType(), s.purger.typeName, len(doc), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// SerializePurged encodes obj and removes the fragments of T's marked fields.
func (s *Serializer[T]) SerializePurged(ctx context.Context, obj *T) (string, error) {
	doc, err := s.Serialize(ctx, obj)
	if err != nil {
		return "", err
	}
	return s.purger.Purge(ctx, doc), nil
}

// Convert re-reads a derived value as one of the types it builds on.
//
// obj is encoded with codec, From's own marked fields are purged from the
// text, and the remainder is decoded into a To. Options configure the purger
// for From.
func Convert[From, To any](ctx context.Context, codec Codec, obj *From, opts ...PurgerOption) (*To, error) {
	from, err := NewSerializer[From](codec, opts...)
	if err != nil {
		return nil, err
	}

	doc, err := from.SerializePurged(ctx, obj)
	if err != nil {
		return nil, err
	}

	to := &Serializer[To]{codec: codec, purger: &Purger[To]{typeName: typeName(reflect.TypeFor[To]())}}
	return to.Deserialize(ctx, doc)
}

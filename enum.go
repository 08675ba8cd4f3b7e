package vault

import (
	"fmt"

	oaerrors "github.com/go-openapi/errors"
)

// EnumTag pairs one enum variant with its wire tag.
type EnumTag[T comparable] struct {
	Value T
	Tag   string
}

// Enum maps a closed set of variants to their string tags and back.
//
// One Enum is built per enum type, at package initialization, and shared
// by every field of that type:
//
//	var colors = vault.NewEnum("color",
//	    vault.EnumTag[Color]{Red, "red"},
//	    vault.EnumTag[Color]{Blue, "blue"},
//	)
//
// An Enum is immutable and safe for concurrent use.
type Enum[T comparable] struct {
	name string
	tags []EnumTag[T]
}

// NewEnum builds the codec for the enum called name. Each variant and each
// tag must appear once; NewEnum panics otherwise.
func NewEnum[T comparable](name string, tags ...EnumTag[T]) *Enum[T] {
	seenValues := make(map[T]struct{}, len(tags))
	seenTags := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seenValues[t.Value]; dup {
			panic(fmt.Sprintf("vault: enum %s: variant %s declared twice", name, rawValue(t.Value)))
		}
		if _, dup := seenTags[t.Tag]; dup {
			panic(fmt.Sprintf("vault: enum %s: tag %q declared twice", name, t.Tag))
		}
		seenValues[t.Value] = struct{}{}
		seenTags[t.Tag] = struct{}{}
	}
	return &Enum[T]{name: name, tags: append([]EnumTag[T](nil), tags...)}
}

// Name returns the enum name used in error messages.
func (e *Enum[T]) Name() string {
	return e.name
}

// Encode returns the tag of v.
func (e *Enum[T]) Encode(v T) (string, error) {
	for _, t := range e.tags {
		if t.Value == v {
			return t.Tag, nil
		}
	}
	return "", e.unknown(rawValue(v))
}

// Decode returns the variant whose tag is exactly tag.
func (e *Enum[T]) Decode(tag string) (T, error) {
	for _, t := range e.tags {
		if t.Tag == tag {
			return t.Value, nil
		}
	}
	var zero T
	return zero, e.unknown(tag)
}

// Tags lists every valid tag in declaration order.
func (e *Enum[T]) Tags() []string {
	tags := make([]string, len(e.tags))
	for i, t := range e.tags {
		tags[i] = t.Tag
	}
	return tags
}

// Values lists every variant in declaration order.
func (e *Enum[T]) Values() []T {
	values := make([]T, len(e.tags))
	for i, t := range e.tags {
		values[i] = t.Value
	}
	return values
}

// String returns the tag of v, or a placeholder for values outside the set.
func (e *Enum[T]) String(v T) string {
	tag, err := e.Encode(v)
	if err != nil {
		return e.name + "(" + rawValue(v) + ")"
	}
	return tag
}

func (e *Enum[T]) unknown(value string) *Error {
	valid := e.Tags()
	allowed := make([]interface{}, len(valid))
	for i, tag := range valid {
		allowed[i] = tag
	}

	err := newError(
		CodeUnknownEnumValue,
		fmt.Sprintf("%q is not a valid %s, expected one of %q", value, e.name, valid),
		0,
		oaerrors.EnumFail(e.name, "body", value, allowed),
	)
	err.Value = value
	err.Valid = valid
	return err
}

// rawValue formats v without going through a String method, which for enum
// types calls back into the codec.
func rawValue(v interface{}) string {
	return fmt.Sprintf("%#v", v)
}

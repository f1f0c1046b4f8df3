package parseopts

import (
	"github.com/agilira/go-errors"

	"github.com/rawbytedev/parseopts/internal/wire"
)

// Encoder produces the buffer layout Decode consumes. The returned slice
// is reused by the next Encode call.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Reset drops the previous output but keeps its capacity.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

func (e *Encoder) Encode(o *Options) ([]byte, error) {
	e.Reset()
	out, err := AppendOptions(e.buf, o)
	if err != nil {
		return nil, err
	}
	e.buf = out
	return e.buf, nil
}

// AppendOptions appends the encoding of o to dst.
func AppendOptions(dst []byte, o *Options) ([]byte, error) {
	if o == nil {
		return dst, ErrNilOptions
	}
	if !o.version.Valid() {
		return dst, errors.New(ErrCodeInvalidVersion, "unknown version ordinal").
			WithContext("version", uint8(o.version))
	}

	var ok bool
	if dst, ok = wire.AppendBytes(dst, o.filepath.data); !ok {
		return dst, errTooLarge("filepath", o.filepath.Len())
	}
	dst = wire.AppendS32(dst, o.line)
	if dst, ok = wire.AppendBytes(dst, o.encoding.data); !ok {
		return dst, errTooLarge("encoding", o.encoding.Len())
	}
	if o.frozenStringLiteral {
		dst = append(dst, 1)
	} else {
		dst = append(dst, 0)
	}
	dst = append(dst, byte(o.version))

	if !wire.FitsU32(len(o.scopes)) {
		return dst, errTooLarge("scopes", len(o.scopes))
	}
	dst = wire.AppendU32(dst, uint32(len(o.scopes)))
	for i := range o.scopes {
		locals := o.scopes[i].locals
		if !wire.FitsU32(len(locals)) {
			return dst, errTooLarge("locals", len(locals))
		}
		dst = wire.AppendU32(dst, uint32(len(locals)))
		for j := range locals {
			if dst, ok = wire.AppendBytes(dst, locals[j].data); !ok {
				return dst, errTooLarge("local", locals[j].Len())
			}
		}
	}
	return dst, nil
}

func errTooLarge(field string, n int) error {
	return errors.New(ErrCodeTooLarge, field+" does not fit a u32 length").
		WithContext("field", field).
		WithContext("length", n)
}

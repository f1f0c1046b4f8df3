package parseopts

import (
	"github.com/agilira/go-errors"

	"github.com/rawbytedev/parseopts/internal/wire"
)

// Layout (all integers in host byte order):
//
//	u32 filepath_length, u8[filepath_length]
//	s32 line
//	u32 encoding_length, u8[encoding_length]
//	u8  frozen_string_literal
//	u8  version
//	u32 scopes_count
//	  u32 locals_count
//	    u32 local_length, u8[local_length]
//
// There is no header, checksum or terminator. Bytes after the last local
// are ignored.

type DecodeOptions struct {
	// CopyStrings makes every decoded string an owned copy, so the record
	// no longer depends on the input buffer.
	CopyStrings bool
}

// Decoder reads option buffers. A Decoder may be reused but not shared
// between goroutines.
type Decoder struct {
	Opts DecodeOptions
	cur  wire.Cursor
}

func NewDecoder(opts DecodeOptions) *Decoder {
	return &Decoder{Opts: opts}
}

// Decode reads data into a new record.
func Decode(data []byte) (*Options, error) {
	o := New()
	if err := o.Read(data); err != nil {
		return nil, err
	}
	return o, nil
}

// Read decodes data into o with constant string views.
func (o *Options) Read(data []byte) error {
	var d Decoder
	return d.Decode(data, o)
}

// Decode fills out from data in a single forward pass. out should hold
// the defaults; line is reset to 1 before anything is read. An empty
// buffer means no options were supplied and is not an error. On error out
// is released back to its defaults.
func (d *Decoder) Decode(data []byte, out *Options) error {
	if out == nil {
		return ErrNilOptions
	}
	out.line = 1
	if len(data) == 0 {
		return nil
	}
	d.cur.Reset(data)
	if err := d.decode(out); err != nil {
		out.reset()
		return err
	}
	return nil
}

func (d *Decoder) decode(o *Options) error {
	var err error
	if o.filepath, err = d.string("filepath"); err != nil {
		return err
	}
	if o.line, err = d.s32("line"); err != nil {
		return err
	}
	if o.encoding, err = d.string("encoding"); err != nil {
		return err
	}

	frozen, err := d.u8("frozen_string_literal")
	if err != nil {
		return err
	}
	o.frozenStringLiteral = frozen != 0

	version, err := d.u8("version")
	if err != nil {
		return err
	}
	if !Version(version).Valid() {
		return errors.New(ErrCodeInvalidVersion, "unknown version ordinal").
			WithContext("version", version).
			WithContext("offset", d.cur.Offset()-1)
	}
	o.version = Version(version)

	scopesCount, err := d.count("scopes_count")
	if err != nil {
		return err
	}
	if scopesCount == 0 {
		return nil
	}
	if err := o.InitScopes(scopesCount); err != nil {
		return err
	}

	for i := range o.scopes {
		scope := &o.scopes[i]
		localsCount, err := d.count("locals_count")
		if err != nil {
			return err
		}
		if localsCount == 0 {
			continue
		}
		if err := scope.InitLocals(localsCount); err != nil {
			return err
		}
		for j := range scope.locals {
			if scope.locals[j], err = d.string("local"); err != nil {
				return err
			}
		}
	}
	return nil
}

// string reads a length-prefixed byte string. A zero length yields the
// empty view.
func (d *Decoder) string(field string) (String, error) {
	n, err := d.u32(field + "_length")
	if err != nil {
		return String{}, err
	}
	if n == 0 {
		return String{}, nil
	}
	start := d.cur.Offset()
	b, ok := d.cur.Bytes(n)
	if !ok {
		return String{}, errUnexpectedEOF(field, start, int(n), d.cur.Remaining())
	}
	if d.Opts.CopyStrings {
		return OwnedString(b), nil
	}
	return ConstantString(b), nil
}

// count reads a u32 element count and rejects values the remaining input
// cannot possibly hold, since every scope and every local starts with a
// 4-byte field. This keeps a corrupt count from driving a huge allocation.
func (d *Decoder) count(field string) (int, error) {
	n, err := d.u32(field)
	if err != nil {
		return 0, err
	}
	need := uint64(n) * wire.SizeU32
	if need > uint64(d.cur.Remaining()) {
		return 0, errUnexpectedEOF(field, d.cur.Offset(), int(need), d.cur.Remaining())
	}
	return int(n), nil
}

func (d *Decoder) u32(field string) (uint32, error) {
	v, ok := d.cur.U32()
	if !ok {
		return 0, errUnexpectedEOF(field, d.cur.Offset(), wire.SizeU32, d.cur.Remaining())
	}
	return v, nil
}

func (d *Decoder) s32(field string) (int32, error) {
	v, ok := d.cur.S32()
	if !ok {
		return 0, errUnexpectedEOF(field, d.cur.Offset(), wire.SizeS32, d.cur.Remaining())
	}
	return v, nil
}

func (d *Decoder) u8(field string) (byte, error) {
	v, ok := d.cur.U8()
	if !ok {
		return 0, errUnexpectedEOF(field, d.cur.Offset(), wire.SizeU8, d.cur.Remaining())
	}
	return v, nil
}

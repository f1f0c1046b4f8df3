package parseopts

import (
	"bytes"
	"unsafe"
)

// StringKind tells who owns the bytes behind a String.
type StringKind uint8

const (
	// StringConstant views memory owned by someone else. It is never
	// released and must not outlive that memory.
	StringConstant StringKind = iota
	// StringOwned holds a private copy that Release drops.
	StringOwned
)

func (k StringKind) String() string {
	switch k {
	case StringConstant:
		return "constant"
	case StringOwned:
		return "owned"
	default:
		return "unknown"
	}
}

// String is a byte sequence that is either a view into a caller's buffer
// or an owned copy. The zero value is an empty constant view.
type String struct {
	data []byte
	kind StringKind
}

// ConstantString views b without copying.
func ConstantString(b []byte) String {
	return String{data: b, kind: StringConstant}
}

// OwnedString copies b.
func OwnedString(b []byte) String {
	if len(b) == 0 {
		return String{kind: StringOwned}
	}
	return String{data: bytes.Clone(b), kind: StringOwned}
}

// constantFromString views the bytes of s; the string's backing array is
// immutable, so the view stays valid for as long as s is reachable.
func constantFromString(s string) String {
	if s == "" {
		return String{}
	}
	return ConstantString(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Release drops an owned copy. Constant views are left alone, and
// releasing twice is a no-op.
func (s *String) Release() {
	if s.kind == StringOwned {
		s.data = nil
	}
}

func (s String) Kind() StringKind { return s.kind }
func (s String) Len() int         { return len(s.data) }
func (s String) IsEmpty() bool    { return len(s.data) == 0 }

// Bytes returns the underlying bytes. For constant views they alias the
// source buffer and must not be modified.
func (s String) Bytes() []byte { return s.data }

// String copies the bytes into a Go string.
func (s String) String() string { return string(s.data) }

// Equal compares content only; ownership is ignored.
func (s String) Equal(o String) bool { return bytes.Equal(s.data, o.data) }

// Package bufferfile stores encoded option buffers on disk, either raw or
// as a single zstd frame.
package bufferfile

import (
	"bytes"
	"os"

	"github.com/agilira/go-errors"
	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/parseopts"
)

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type Compression uint8

const (
	CompRaw Compression = iota
	CompZstd
)

// IsCompressed reports whether data starts with a zstd frame.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Pack returns data ready to be written with the given compression.
func Pack(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompRaw:
		return data, nil
	case CompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, errors.Wrap(err, parseopts.ErrCodeIO, "cannot create zstd encoder")
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, errors.New(parseopts.ErrCodeIO, "unknown compression").
			WithContext("compression", uint8(comp))
	}
}

// Unpack undoes Pack, detecting compression from the frame magic.
// Raw buffers are returned as is.
func Unpack(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, parseopts.ErrCodeIO, "cannot create zstd decoder")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, parseopts.ErrCodeIO, "cannot decompress buffer")
	}
	return out, nil
}

func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, parseopts.ErrCodeIO, "cannot read buffer file").
			WithContext("path", path)
	}
	return Unpack(data)
}

func Write(path string, data []byte, comp Compression) error {
	packed, err := Pack(data, comp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, packed, 0o644); err != nil {
		return errors.Wrap(err, parseopts.ErrCodeIO, "cannot write buffer file").
			WithContext("path", path)
	}
	return nil
}

package main

import (
	"io"

	"github.com/rawbytedev/parseopts"
	"github.com/rawbytedev/parseopts/pkg/manifest"
)

// decodeBuffer prints data as a manifest. The record only lives for the
// duration of the call, so its views can alias data.
func decodeBuffer(data []byte, w io.Writer) error {
	o := parseopts.New()
	if err := o.Read(data); err != nil {
		return err
	}
	defer o.Release()
	return manifest.FromOptions(o).Write(w)
}

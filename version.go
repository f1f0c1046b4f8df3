package parseopts

import (
	"bytes"
	"strconv"
)

// Version selects which released parser behavior to emulate.
// The zero value is VersionLatest.
type Version uint8

const (
	VersionLatest     Version = iota // latest
	VersionCRuby3_3_0                // 3.3.0
)

var (
	versionLatest     = []byte("latest")
	versionCRuby3_3_0 = []byte("3.3.0")
)

func (v Version) String() string {
	switch v {
	case VersionLatest:
		return string(versionLatest)
	case VersionCRuby3_3_0:
		return string(versionCRuby3_3_0)
	default:
		return "Version(" + strconv.Itoa(int(v)) + ")"
	}
}

// Valid reports whether v is a known ordinal.
func (v Version) Valid() bool {
	return v <= VersionCRuby3_3_0
}

// ParseVersion maps the textual selector onto a Version. A nil slice
// selects VersionLatest; a non-nil empty slice is not a selector.
func ParseVersion(text []byte) (Version, bool) {
	switch {
	case text == nil:
		return VersionLatest, true
	case bytes.Equal(text, versionCRuby3_3_0):
		return VersionCRuby3_3_0, true
	case bytes.Equal(text, versionLatest):
		return VersionLatest, true
	default:
		return 0, false
	}
}

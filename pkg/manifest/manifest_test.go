package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/parseopts"
)

const sample = `filepath: app/models/user.rb
encoding: UTF-8
line: 42
frozen_string_literal: true
version: "3.3.0"
scopes:
  - [foo, bar]
  - []
`

func TestLoadOptions(t *testing.T) {
	m, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	o, err := m.Options()
	require.NoError(t, err)

	assert.Equal(t, "app/models/user.rb", o.Filepath().String())
	assert.Equal(t, "UTF-8", o.Encoding().String())
	assert.Equal(t, int32(42), o.Line())
	assert.True(t, o.FrozenStringLiteral())
	assert.Equal(t, parseopts.VersionCRuby3_3_0, o.Version())
	require.Equal(t, 2, o.ScopesCount())
	require.Equal(t, 2, o.Scope(0).LocalsCount())
	assert.Equal(t, "bar", o.Scope(0).Local(1).String())
	assert.Equal(t, 0, o.Scope(1).LocalsCount())
}

func TestLoadDefaults(t *testing.T) {
	m, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	o, err := m.Options()
	require.NoError(t, err)
	assert.Equal(t, int32(1), o.Line())
	assert.Equal(t, parseopts.VersionLatest, o.Version())
	assert.Equal(t, 0, o.ScopesCount())
}

func TestLoadRejects(t *testing.T) {
	_, err := Load(strings.NewReader("unknown_key: 1\n"))
	require.Error(t, err)
	assert.Equal(t, parseopts.ErrCodeInvalidManifest, parseopts.ErrorCode(err))

	m, err := Load(strings.NewReader("version: \"2.7\"\n"))
	require.NoError(t, err)
	_, err = m.Options()
	assert.Equal(t, parseopts.ErrCodeInvalidVersion, parseopts.ErrorCode(err))
}

func TestManifestBufferRoundTrip(t *testing.T) {
	m, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	o, err := m.Options()
	require.NoError(t, err)

	data, err := parseopts.NewEncoder().Encode(o)
	require.NoError(t, err)
	decoded, err := parseopts.Decode(data)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, FromOptions(decoded).Write(&out))
	again, err := Load(&out)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

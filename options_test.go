package parseopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	o := New()
	assert.True(t, o.Filepath().IsEmpty())
	assert.True(t, o.Encoding().IsEmpty())
	assert.Equal(t, int32(1), o.Line())
	assert.False(t, o.FrozenStringLiteral())
	assert.Equal(t, VersionLatest, o.Version())
	assert.Equal(t, 0, o.ScopesCount())
}

func TestSetVersion(t *testing.T) {
	o := New()
	require.True(t, o.SetVersion(nil))
	require.Equal(t, VersionLatest, o.Version())

	require.True(t, o.SetVersion([]byte("3.3.0")))
	require.Equal(t, VersionCRuby3_3_0, o.Version())

	require.True(t, o.SetVersion([]byte("latest")))
	require.Equal(t, VersionLatest, o.Version())

	o.SetVersion([]byte("3.3.0"))
	for _, bad := range [][]byte{[]byte("bogus"), []byte("3.3.1"), []byte("3.3.0 "), []byte("Latest"), {}} {
		require.False(t, o.SetVersion(bad), "%q", bad)
		require.Equal(t, VersionCRuby3_3_0, o.Version())
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "latest", VersionLatest.String())
	assert.Equal(t, "3.3.0", VersionCRuby3_3_0.String())
	assert.Equal(t, "Version(7)", Version(7).String())
	assert.False(t, Version(2).Valid())
}

func TestSetters(t *testing.T) {
	o := New()
	path := "lib/foo.rb"
	o.SetFilepath(path)
	o.SetEncoding("UTF-8")
	o.SetLine(-12)
	o.SetFrozenStringLiteral(true)

	assert.Equal(t, path, o.Filepath().String())
	assert.Equal(t, StringConstant, o.Filepath().Kind())
	assert.Equal(t, "UTF-8", o.Encoding().String())
	assert.Equal(t, int32(-12), o.Line())
	assert.True(t, o.FrozenStringLiteral())

	o.SetFilepath("")
	assert.True(t, o.Filepath().IsEmpty())
}

func TestInitScopes(t *testing.T) {
	o := New()
	require.NoError(t, o.InitScopes(0))
	require.Equal(t, 0, o.ScopesCount())
	require.Panics(t, func() { o.Scope(0) })

	require.NoError(t, o.InitScopes(3))
	require.Equal(t, 3, o.ScopesCount())
	for i := 0; i < 3; i++ {
		require.Equal(t, 0, o.Scope(i).LocalsCount())
	}

	err := o.InitScopes(-1)
	require.Error(t, err)
	require.Equal(t, ErrCodeAllocation, ErrorCode(err))
	require.Equal(t, 3, o.ScopesCount())
}

func TestInitLocals(t *testing.T) {
	o := New()
	require.NoError(t, o.InitScopes(1))
	scope := o.Scope(0)
	require.NoError(t, scope.InitLocals(2))
	require.Equal(t, 2, scope.LocalsCount())
	*scope.Local(0) = OwnedString([]byte("a"))
	*scope.Local(1) = ConstantString([]byte("b"))
	require.Equal(t, "a", o.Scope(0).Local(0).String())
	require.Equal(t, "b", o.Scope(0).Local(1).String())
	require.Panics(t, func() { scope.Local(2) })

	err := scope.InitLocals(-5)
	require.Equal(t, ErrCodeAllocation, ErrorCode(err))
}

func TestRelease(t *testing.T) {
	o := New()
	o.Release()
	o.Release()
	require.Equal(t, 0, o.ScopesCount())

	o.SetFilepath("x.rb")
	require.NoError(t, o.InitScopes(2))
	require.NoError(t, o.Scope(0).InitLocals(1))
	*o.Scope(0).Local(0) = OwnedString([]byte("foo"))
	local := o.Scope(0).Local(0)

	o.Release()
	require.Equal(t, 0, o.ScopesCount())
	require.True(t, local.IsEmpty())
	// constant views survive release untouched
	require.Equal(t, "x.rb", o.Filepath().String())
	require.NotPanics(t, o.Release)
}

func TestStringOwnership(t *testing.T) {
	src := []byte("hello")
	c := ConstantString(src)
	w := OwnedString(src)
	src[0] = 'j'
	require.Equal(t, "jello", c.String())
	require.Equal(t, "hello", w.String())
	require.False(t, c.Equal(w))

	c.Release()
	require.Equal(t, "jello", c.String())
	w.Release()
	w.Release()
	require.True(t, w.IsEmpty())
	require.Equal(t, StringOwned, w.Kind())
	require.Equal(t, "owned", w.Kind().String())

	require.True(t, OwnedString(nil).IsEmpty())
	require.True(t, String{}.Equal(ConstantString(nil)))
}

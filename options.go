// Package parseopts decodes the options a host hands to the parser
// across a foreign-call boundary: filepath, encoding, starting line,
// frozen-string-literal flag, version selector and the locals of every
// enclosing scope.
//
// Strings decoded from a buffer are views into it by default, so the
// buffer must stay alive and unmodified until the record is released.
// Set DecodeOptions.CopyStrings to detach the record from the buffer.
package parseopts

// Options is one parse invocation's configuration. Use New, or call Read
// on a zero value, so that line starts at 1.
type Options struct {
	filepath            String
	encoding            String
	line                int32
	frozenStringLiteral bool
	version             Version
	scopes              []Scope
}

// New returns a record holding the defaults.
func New() *Options {
	return &Options{line: 1}
}

// SetFilepath stores path as a constant view; no copy is made.
func (o *Options) SetFilepath(path string) {
	o.filepath = constantFromString(path)
}

// SetEncoding stores name as a constant view; no copy is made.
func (o *Options) SetEncoding(name string) {
	o.encoding = constantFromString(name)
}

func (o *Options) SetLine(line int32) {
	o.line = line
}

func (o *Options) SetFrozenStringLiteral(frozen bool) {
	o.frozenStringLiteral = frozen
}

// SetVersion parses text with ParseVersion. On failure the record is left
// unchanged and false is returned.
func (o *Options) SetVersion(text []byte) bool {
	v, ok := ParseVersion(text)
	if !ok {
		return false
	}
	o.version = v
	return true
}

// InitScopes replaces the scopes with count empty ones. Existing scopes
// are dropped without being released.
func (o *Options) InitScopes(count int) error {
	scopes, err := allocScopes(count)
	if err != nil {
		return err
	}
	o.scopes = scopes
	return nil
}

// Scope returns the scope at index. Out of range indexes panic.
func (o *Options) Scope(index int) *Scope {
	return &o.scopes[index]
}

func (o *Options) Filepath() String          { return o.filepath }
func (o *Options) Encoding() String          { return o.encoding }
func (o *Options) Line() int32               { return o.line }
func (o *Options) FrozenStringLiteral() bool { return o.frozenStringLiteral }
func (o *Options) Version() Version          { return o.version }
func (o *Options) ScopesCount() int          { return len(o.scopes) }

// Release drops everything the record owns: the filepath and encoding
// views, every local of every scope, each scope's locals and the scopes
// themselves. The record can be released again or reused afterwards.
func (o *Options) Release() {
	o.filepath.Release()
	o.encoding.Release()
	for i := range o.scopes {
		o.scopes[i].Release()
	}
	o.scopes = nil
}

// reset releases the record and restores the defaults.
func (o *Options) reset() {
	o.Release()
	*o = Options{line: 1}
}

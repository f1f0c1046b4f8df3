package parseopts

// Scope lists the locals already bound in one enclosing lexical scope,
// in declaration order.
type Scope struct {
	locals []String
}

// InitLocals replaces the scope's locals with count empty entries.
func (s *Scope) InitLocals(count int) error {
	locals, err := allocStrings(count)
	if err != nil {
		return err
	}
	s.locals = locals
	return nil
}

// Local returns the local at index. Out of range indexes panic.
func (s *Scope) Local(index int) *String {
	return &s.locals[index]
}

func (s *Scope) LocalsCount() int { return len(s.locals) }

// Release releases every local and drops the sequence.
func (s *Scope) Release() {
	for i := range s.locals {
		s.locals[i].Release()
	}
	s.locals = nil
}

// allocStrings and allocScopes report allocation failure as an error
// rather than letting make panic the process.
func allocStrings(count int) (out []String, err error) {
	if count < 0 {
		return nil, errCount("locals", count)
	}
	if count == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errCount("locals", count)
		}
	}()
	return make([]String, count), nil
}

func allocScopes(count int) (out []Scope, err error) {
	if count < 0 {
		return nil, errCount("scopes", count)
	}
	if count == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errCount("scopes", count)
		}
	}()
	return make([]Scope, count), nil
}

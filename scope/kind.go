package scope

// Kind selects the assignment policy of a binding.
type Kind int

const (
	// Mutable bindings behave like let.
	Mutable Kind = iota
	// Frozen bindings behave like const.
	Frozen
)

func (k Kind) String() string {
	if k == Frozen {
		return "const"
	}
	return "let"
}

// RequiresInitializer reports whether a declaration of this kind must carry a value.
func (k Kind) RequiresInitializer() bool {
	return k == Frozen
}

// Reassignable reports whether an initialized binding of this kind accepts writes.
func (k Kind) Reassignable() bool {
	return k == Mutable
}

// Const declares a frozen binding. Leaving out the value is an error.
func (s *S) Const(name string, init ...interface{}) error {
	return s.Declare(name, Frozen, init...)
}

// Let declares a mutable binding, initialized to nil when no value is given.
func (s *S) Let(name string, init ...interface{}) error {
	return s.Declare(name, Mutable, init...)
}

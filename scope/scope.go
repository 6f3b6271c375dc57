package scope

// State tracks whether a binding has left the temporal dead zone.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	if s == Initialized {
		return "initialized"
	}
	return "uninitialized"
}

// Binding is the record a scope keeps for each declared identifier.
type Binding struct {
	Identifier string
	Kind       Kind
	State      State
	Item       interface{}
}

// S is one lexical block. Parent is only ever read after New.
type S struct {
	Parent *S

	bindings map[string]*Binding
	order    []string
}

func New(parent *S) *S {
	return &S{
		Parent:   parent,
		bindings: map[string]*Binding{},
	}
}

// Child returns a new scope nested inside s.
func (s *S) Child() *S {
	return New(s)
}

// ResolveLocal only consults the bindings declared directly in s.
func (s *S) ResolveLocal(name string) (*Binding, bool) {
	binding, found := s.bindings[name]
	return binding, found
}

// Resolve walks the parent chain and returns the first binding for name
// together with the scope that owns it.
func (s *S) Resolve(name string) (*Binding, *S, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if binding, found := scope.bindings[name]; found {
			return binding, scope, true
		}
	}
	return nil, nil, false
}

// Names returns the identifiers declared in s, in declaration order.
func (s *S) Names() []string {
	res := make([]string, len(s.order))
	copy(res, s.order)
	return res
}

func (s *S) add(binding *Binding) {
	s.bindings[binding.Identifier] = binding
	s.order = append(s.order, binding.Identifier)
}

package scope

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
)

// Predeclare puts name into the dead zone of s. Any read or write of it
// fails until Initialize is called.
func (s *S) Predeclare(name string, kind Kind) error {
	if _, found := s.bindings[name]; found {
		return duplicateDeclaration(name)
	}
	s.add(&Binding{
		Identifier: name,
		Kind:       kind,
		State:      Uninitialized,
	})
	glog.V(2).Infof("predeclared %v %q", kind, name)
	return nil
}

// Declare registers and initializes name in one step. Nothing is registered
// when it fails.
func (s *S) Declare(name string, kind Kind, init ...interface{}) error {
	value, err := initializer(name, kind, init)
	if err != nil {
		return err
	}
	if _, found := s.bindings[name]; found {
		return duplicateDeclaration(name)
	}
	s.add(&Binding{
		Identifier: name,
		Kind:       kind,
		State:      Initialized,
		Item:       value,
	})
	glog.V(2).Infof("declared %v %q = %#v", kind, name, value)
	return nil
}

// Initialize moves a predeclared binding out of the dead zone.
func (s *S) Initialize(name string, init ...interface{}) error {
	binding, found := s.bindings[name]
	if !found {
		return unknownIdentifier(name)
	}
	if binding.State != Uninitialized {
		return AlreadyInitializedError{
			Message:    fmt.Sprintf("%q is already initialized", name),
			Identifier: name,
		}
	}
	value, err := initializer(name, binding.Kind, init)
	if err != nil {
		return err
	}
	binding.Item = value
	binding.State = Initialized
	glog.V(2).Infof("initialized %v %q = %#v", binding.Kind, name, value)
	return nil
}

// Read returns the value of the nearest binding for name.
func (s *S) Read(name string) (interface{}, error) {
	binding, _, found := s.Resolve(name)
	if !found {
		return nil, unknownIdentifier(name)
	}
	if binding.State == Uninitialized {
		return nil, uninitializedAccess(name)
	}
	return binding.Item, nil
}

// Write assigns value to the nearest binding for name.
func (s *S) Write(name string, value interface{}) error {
	binding, _, found := s.Resolve(name)
	if !found {
		return unknownIdentifier(name)
	}
	if binding.State == Uninitialized {
		return uninitializedAccess(name)
	}
	if !binding.Kind.Reassignable() {
		return ImmutableAssignmentError{
			Message:    fmt.Sprintf("Assignment to constant variable %q", name),
			Identifier: name,
			Item:       binding.Item,
		}
	}
	binding.Item = value
	return nil
}

func initializer(name string, kind Kind, init []interface{}) (interface{}, error) {
	switch len(init) {
	case 0:
		if kind.RequiresInitializer() {
			return nil, MissingInitializerError{
				Message:    fmt.Sprintf("Missing initializer in %v declaration %q", kind, name),
				Identifier: name,
			}
		}
		return nil, nil
	case 1:
		return init[0], nil
	}
	return nil, TooManyInitializersError{
		Message:    fmt.Sprintf("%v declaration %q takes one initializer, got %v", kind, name, len(init)),
		Identifier: name,
		Got:        len(init),
	}
}

// Commit moves every binding of staged into s. When any of them is already
// declared in s nothing is moved and every clash is reported.
func (s *S) Commit(staged *S) error {
	var result *multierror.Error
	for _, name := range staged.order {
		if _, found := s.bindings[name]; found {
			result = multierror.Append(result, duplicateDeclaration(name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	for _, name := range staged.order {
		s.add(staged.bindings[name])
	}
	return nil
}

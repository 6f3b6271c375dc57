package scope

import "fmt"

type DuplicateDeclarationError struct {
	Message    string
	Identifier string
}

func (d DuplicateDeclarationError) Error() string {
	return d.Message
}

type UninitializedAccessError struct {
	Message    string
	Identifier string
}

func (u UninitializedAccessError) Error() string {
	return u.Message
}

type MissingInitializerError struct {
	Message    string
	Identifier string
}

func (m MissingInitializerError) Error() string {
	return m.Message
}

type TooManyInitializersError struct {
	Message    string
	Identifier string
	Got        int
}

func (t TooManyInitializersError) Error() string {
	return t.Message
}

type ImmutableAssignmentError struct {
	Message    string
	Identifier string
	Item       interface{}
}

func (i ImmutableAssignmentError) Error() string {
	return i.Message
}

type UnknownIdentifierError struct {
	Message    string
	Identifier string
}

func (u UnknownIdentifierError) Error() string {
	return u.Message
}

type AlreadyInitializedError struct {
	Message    string
	Identifier string
}

func (a AlreadyInitializedError) Error() string {
	return a.Message
}

func duplicateDeclaration(name string) error {
	return DuplicateDeclarationError{
		Message:    fmt.Sprintf("Identifier %q has already been declared", name),
		Identifier: name,
	}
}

func uninitializedAccess(name string) error {
	return UninitializedAccessError{
		Message:    fmt.Sprintf("Cannot access %q before initialization", name),
		Identifier: name,
	}
}

func unknownIdentifier(name string) error {
	return UnknownIdentifierError{
		Message:    fmt.Sprintf("%q is not defined", name),
		Identifier: name,
	}
}

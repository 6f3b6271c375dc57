package machine

import (
	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/js"
	"github.com/zond/blockbind/scope"
)

// M holds what all its runtimes share: host functions and a root scope.
type M struct {
	Runtimes []*Runtime
	Globals  map[string]interface{}
	Scope    *scope.S
	Debug    bool
}

func New() *M {
	return &M{
		Runtimes: nil,
		Globals:  map[string]interface{}{},
		Scope:    scope.New(nil),
	}
}

type Runtime struct {
	M       *M
	Globals map[string]interface{}
	Scope   *scope.S
	Debug   bool
}

func (m *M) NewRuntime() *Runtime {
	r := &Runtime{
		M:       m,
		Globals: map[string]interface{}{},
		Scope:   scope.New(m.Scope),
	}
	m.Runtimes = append(m.Runtimes, r)
	return r
}

// Lookup reads name through the scope chain. Host globals are only
// consulted when no scope declares name.
func (r *Runtime) Lookup(name string) (interface{}, error) {
	item, err := r.Scope.Read(name)
	if err == nil {
		return item, nil
	}
	if _, unknown := err.(scope.UnknownIdentifierError); !unknown {
		return nil, err
	}
	if item, found := r.Globals[name]; found {
		return item, nil
	}
	if item, found := r.M.Globals[name]; found {
		return item, nil
	}
	return nil, err
}

// Assign writes value to the nearest binding of name.
func (r *Runtime) Assign(name string, value interface{}) error {
	return r.Scope.Write(name, value)
}

func (r *Runtime) Run(ast *js.AST) error {
	evaluator := &Evaluator{Runtime: r}
	if _, err := evaluator.ExecBlock(&ast.BlockStmt); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

func (r *Runtime) Call(funcName string, args ...interface{}) (interface{}, error) {
	f, err := r.Lookup(funcName)
	if err != nil {
		return nil, err
	}
	return Call(f, args)
}

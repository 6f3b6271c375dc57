package machine

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/js"
	"github.com/zond/blockbind/scope"
)

func declKind(varDecl *js.VarDecl) (scope.Kind, error) {
	switch varDecl.TokenType {
	case js.ConstToken:
		return scope.Frozen, nil
	case js.VarToken:
		return 0, NotImplementedError{
			Message: fmt.Sprintf("function scoped declaration %#v not implemented", varDecl),
			Node:    varDecl,
		}
	}
	return scope.Mutable, nil
}

func bindingName(el js.BindingElement) (string, error) {
	if bind, ok := el.Binding.(*js.Var); ok {
		return string(bind.Data), nil
	}
	return "", notImplemented("binding", el.Binding)
}

// Hoist predeclares every let and const directly inside block in the
// current scope. The parser already rejects duplicates within a block, so
// a failure here means a declaration the registrar can't model.
func (e *Evaluator) Hoist(block *js.BlockStmt) error {
	for _, stmt := range block.List {
		varDecl, ok := stmt.(*js.VarDecl)
		if !ok {
			continue
		}
		kind, err := declKind(varDecl)
		if err != nil {
			return err
		}
		for _, el := range varDecl.List {
			name, err := bindingName(el)
			if err != nil {
				return err
			}
			if err := e.Runtime.Scope.Predeclare(name, kind); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExecVarDecl initializes the bindings Hoist put in the dead zone.
func (e *Evaluator) ExecVarDecl(varDecl *js.VarDecl) error {
	kind, err := declKind(varDecl)
	if err != nil {
		return err
	}
	for _, el := range varDecl.List {
		if err := e.bind(el, nil, kind, true); err != nil {
			return errors.Wrapf(err, "%v declaration", kind)
		}
	}
	return nil
}

// bind gives el its value in the current scope. An empty or nil init falls
// back to the element's default expression when it has one. Predeclared
// bindings are initialized, the rest are declared.
func (e *Evaluator) bind(el js.BindingElement, init []interface{}, kind scope.Kind, predeclared bool) error {
	if (len(init) == 0 || init[0] == nil) && el.Default != nil {
		value, err := e.Eval(el.Default)
		if err != nil {
			return err
		}
		init = []interface{}{value}
	}
	name, err := bindingName(el)
	if err != nil {
		return err
	}
	if predeclared {
		return e.Runtime.Scope.Initialize(name, init...)
	}
	return e.Runtime.Scope.Declare(name, kind, init...)
}

package machine

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/tdewolff/parse/v2/js"
	"github.com/zond/blockbind/scope"
)

type Evaluator struct {
	Runtime *Runtime
}

// completion is what running a statement leaves behind. Once returning is
// set, enclosing blocks stop and the function call hands value back.
type completion struct {
	returning bool
	value     interface{}
}

func (e *Evaluator) trace(node interface{}) {
	if e.Runtime.Debug || e.Runtime.M.Debug {
		glog.Infof("Eval(%#v)", node)
	}
}

// Exec runs a statement in the current scope.
func (e *Evaluator) Exec(stmt interface{}) (completion, error) {
	e.trace(stmt)
	switch v := stmt.(type) {
	case nil:
		return completion{}, nil
	case *js.BlockStmt:
		return e.ExecBlock(v)
	case *js.ExprStmt:
		_, err := e.Eval(v.Value)
		return completion{}, err
	case *js.VarDecl:
		return completion{}, e.ExecVarDecl(v)
	case *js.FuncDecl:
		return completion{}, e.Runtime.Scope.Const(string(v.Name.Data), e.closure(v.Params, &v.Body))
	case *js.ReturnStmt:
		value, err := e.Eval(v.Value)
		return completion{returning: true, value: value}, err
	case *js.IfStmt:
		cond, err := e.Eval(v.Cond)
		if err != nil {
			return completion{}, err
		}
		if truthy(cond) {
			return e.Exec(v.Body)
		}
		return e.Exec(v.Else)
	case *js.ForInStmt:
		return e.ExecForIn(v)
	}
	return completion{}, notImplemented("statement", stmt)
}

// ExecBlock runs a block in a child scope, after putting every let and
// const it declares into the dead zone.
func (e *Evaluator) ExecBlock(block *js.BlockStmt) (completion, error) {
	outer := e.Runtime.Scope
	e.Runtime.Scope = outer.Child()
	defer func() {
		e.Runtime.Scope = outer
	}()
	if err := e.Hoist(block); err != nil {
		return completion{}, err
	}
	for _, stmt := range block.List {
		c, err := e.Exec(stmt)
		if err != nil || c.returning {
			return c, err
		}
	}
	return completion{}, nil
}

// ExecForIn binds a fresh loop variable, with the kind of its declaration,
// for every element of an array or every key of an object.
func (e *Evaluator) ExecForIn(stmt *js.ForInStmt) (completion, error) {
	decl, ok := stmt.Init.(*js.VarDecl)
	if !ok || len(decl.List) != 1 {
		return completion{}, notImplemented("for in initializer", stmt.Init)
	}
	kind, err := declKind(decl)
	if err != nil {
		return completion{}, err
	}
	over, err := e.Eval(stmt.Value)
	if err != nil {
		return completion{}, err
	}
	var items []interface{}
	switch v := over.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		for _, key := range sortedKeys(v) {
			items = append(items, key)
		}
	default:
		return completion{}, notImplemented("for in over", over)
	}
	outer := e.Runtime.Scope
	defer func() {
		e.Runtime.Scope = outer
	}()
	for _, item := range items {
		e.Runtime.Scope = outer.Child()
		if err := e.bind(decl.List[0], []interface{}{item}, kind, false); err != nil {
			return completion{}, err
		}
		c, err := e.Exec(stmt.Body)
		if err != nil || c.returning {
			return c, err
		}
	}
	return completion{}, nil
}

// Eval computes the value of an expression.
func (e *Evaluator) Eval(expr interface{}) (interface{}, error) {
	e.trace(expr)
	switch v := expr.(type) {
	case nil:
		return nil, nil
	case *js.LiteralExpr:
		return literal(v)
	case *js.Var:
		return e.Runtime.Lookup(string(v.Data))
	case *js.BinaryExpr:
		return e.binary(v)
	case *js.CallExpr:
		callee, err := e.Eval(v.X)
		if err != nil {
			return nil, err
		}
		args, err := e.evalEach(len(v.Args.List), func(idx int) interface{} { return v.Args.List[idx].Value })
		if err != nil {
			return nil, err
		}
		return Call(callee, args)
	case *js.ArrowFunc:
		return e.closure(v.Params, &v.Body), nil
	case *js.FuncDecl:
		return e.closure(v.Params, &v.Body), nil
	case *js.ArrayExpr:
		return e.evalEach(len(v.List), func(idx int) interface{} { return v.List[idx].Value })
	}
	return nil, notImplemented("expression", expr)
}

func (e *Evaluator) evalEach(n int, at func(idx int) interface{}) ([]interface{}, error) {
	res := make([]interface{}, n)
	for idx := range res {
		value, err := e.Eval(at(idx))
		if err != nil {
			return nil, err
		}
		res[idx] = value
	}
	return res, nil
}

var binaryOps = map[js.TokenType]func(x, y interface{}) (interface{}, error){
	js.AddToken: Add,
	js.SubToken: Sub,
}

// binary handles assignment, which writes through the registrar, and the
// arithmetic operators.
func (e *Evaluator) binary(expr *js.BinaryExpr) (interface{}, error) {
	if expr.Op == js.EqToken {
		target, ok := expr.X.(*js.Var)
		if !ok {
			return nil, notImplemented("assignment to", expr.X)
		}
		value, err := e.Eval(expr.Y)
		if err != nil {
			return nil, err
		}
		return value, e.Runtime.Assign(string(target.Data), value)
	}
	op, found := binaryOps[expr.Op]
	if !found {
		return nil, notImplemented("operator in", expr)
	}
	x, err := e.Eval(expr.X)
	if err != nil {
		return nil, err
	}
	y, err := e.Eval(expr.Y)
	if err != nil {
		return nil, err
	}
	return op(x, y)
}

func literal(expr *js.LiteralExpr) (interface{}, error) {
	text := string(expr.Data)
	switch expr.TokenType {
	case js.DecimalToken:
		if i, err := strconv.Atoi(text); err == nil {
			return i, nil
		}
		return strconv.ParseFloat(text, 64)
	case js.StringToken:
		return text[1 : len(text)-1], nil
	}
	return nil, notImplemented("literal", expr)
}

// closure captures the scope current at definition time. Each call declares
// its parameters as let bindings in a scope of their own.
func (e *Evaluator) closure(params js.Params, body *js.BlockStmt) interface{} {
	defined := e.Runtime.Scope
	return func(args ...interface{}) (interface{}, error) {
		if len(args) > len(params.List) {
			return nil, CallError{
				Message: fmt.Sprintf("function takes %v args, got %v", len(params.List), len(args)),
				Callee:  body,
			}
		}
		caller := e.Runtime.Scope
		e.Runtime.Scope = defined.Child()
		defer func() {
			e.Runtime.Scope = caller
		}()
		for idx, el := range params.List {
			var init []interface{}
			if idx < len(args) {
				init = args[idx : idx+1]
			}
			if err := e.bind(el, init, scope.Mutable, false); err != nil {
				return nil, err
			}
		}
		c, err := e.ExecBlock(body)
		return c.value, err
	}
}

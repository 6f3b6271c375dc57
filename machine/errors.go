package machine

import "fmt"

// NotImplementedError reports a JS construct outside what the evaluator runs.
type NotImplementedError struct {
	Message string
	Node    interface{}
}

func (n NotImplementedError) Error() string {
	return n.Message
}

// CallError reports a callee that can't be called with the arguments it got.
type CallError struct {
	Message string
	Callee  interface{}
}

func (c CallError) Error() string {
	return c.Message
}

// OperandError reports operands an operator has no meaning for.
type OperandError struct {
	Message string
	X       interface{}
	Y       interface{}
}

func (o OperandError) Error() string {
	return o.Message
}

func notImplemented(what string, node interface{}) error {
	return NotImplementedError{
		Message: fmt.Sprintf("%v %#v not implemented", what, node),
		Node:    node,
	}
}

package machine

import (
	"fmt"
	"reflect"
)

var (
	ifaceType = reflect.TypeOf((*interface{})(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Call invokes a Go function shaped func(...) (interface{}, error), which is
// also the shape of every function the evaluator creates.
func Call(callee interface{}, args []interface{}) (interface{}, error) {
	fun := reflect.ValueOf(callee)
	if problem := signatureProblem(fun, len(args)); problem != "" {
		return nil, CallError{
			Message: fmt.Sprintf("can't call %#v: %v", callee, problem),
			Callee:  callee,
		}
	}
	in := make([]reflect.Value, len(args))
	for idx, arg := range args {
		in[idx] = reflect.ValueOf(arg)
		if arg == nil {
			in[idx] = reflect.Zero(ifaceType)
		}
	}
	out := fun.Call(in)
	var err error
	if !out[1].IsNil() {
		err = out[1].Interface().(error)
	}
	if out[0].IsNil() {
		return nil, err
	}
	return out[0].Interface(), err
}

func signatureProblem(fun reflect.Value, numArgs int) string {
	if fun.Kind() != reflect.Func {
		return "not a function"
	}
	t := fun.Type()
	switch {
	case t.IsVariadic() && numArgs < t.NumIn()-1:
		return fmt.Sprintf("takes at least %v args, got %v", t.NumIn()-1, numArgs)
	case !t.IsVariadic() && numArgs != t.NumIn():
		return fmt.Sprintf("takes %v args, got %v", t.NumIn(), numArgs)
	case t.NumOut() != 2 || t.Out(0) != ifaceType || t.Out(1) != errorType:
		return "doesn't return (interface{}, error)"
	}
	return ""
}

package machine

import (
	"io"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/zond/blockbind/scope"
	"gopkg.in/yaml.v3"
)

// Bindings is the YAML shape of a set of initial declarations:
//
//	const:
//	  PI: 3.14
//	let:
//	  count: 0
type Bindings struct {
	Const map[string]interface{} `yaml:"const"`
	Let   map[string]interface{} `yaml:"let"`
}

// LoadGlobals declares the bindings of a YAML document in m.Scope, consts
// first, each group in name order. Either all of them are declared or none,
// and every clash is reported.
func (m *M) LoadGlobals(r io.Reader) error {
	var bindings Bindings
	if err := yaml.NewDecoder(r).Decode(&bindings); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding globals")
	}
	staged := scope.New(nil)
	var result *multierror.Error
	for _, name := range sortedKeys(bindings.Const) {
		result = multierror.Append(result, staged.Const(name, bindings.Const[name]))
	}
	for _, name := range sortedKeys(bindings.Let) {
		result = multierror.Append(result, staged.Let(name, bindings.Let[name]))
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(err, "declaring globals")
	}
	return errors.Wrap(m.Scope.Commit(staged), "declaring globals")
}

func sortedKeys(m map[string]interface{}) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

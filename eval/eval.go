package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
	"github.com/zond/blockbind/machine"
)

func newCommand() *cobra.Command {
	var input, file, globals string
	var debug bool
	cmd := &cobra.Command{
		Use:          "eval",
		Short:        "Run a JavaScript snippet with block scoped let and const bindings",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := input
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return errors.Wrapf(err, "reading %q", file)
				}
				src = string(b)
			}
			ast, err := js.Parse(parse.NewInputString(src))
			if err != nil {
				return errors.Wrap(err, "parsing")
			}
			m := machine.New()
			m.Debug = debug
			if globals != "" {
				f, err := os.Open(globals)
				if err != nil {
					return errors.Wrapf(err, "opening %q", globals)
				}
				defer f.Close()
				if err := m.LoadGlobals(f); err != nil {
					return err
				}
			}
			m.Globals["log"] = func(params ...interface{}) (interface{}, error) {
				fmt.Fprintln(cmd.OutOrStdout(), params...)
				return nil, nil
			}
			return m.NewRuntime().Run(ast)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "What to run")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to run, overrides --input")
	cmd.Flags().StringVarP(&globals, "globals", "g", "", "YAML file with const and let bindings to declare before running")
	cmd.Flags().BoolVar(&debug, "debug", false, "Whether to log all evaluations")
	return cmd
}

func main() {
	// glog registers its flags on the standard flag set, and complains unless it was parsed.
	cmd := newCommand()
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	flag.CommandLine.Parse(nil)
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

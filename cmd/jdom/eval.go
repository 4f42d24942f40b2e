package main

import (
	"fmt"

	"github.com/signadot/jsondom"
	"github.com/signadot/jsondom/eval"

	"github.com/scott-cotton/cli"
)

func evalDocs(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Funcs {
		for _, s := range eval.Symbols() {
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return forDocs(cfg.MainConfig, cc, args[1:], func(doc *jsondom.Value) (*jsondom.Value, error) {
		return doc.Query(src)
	})
}

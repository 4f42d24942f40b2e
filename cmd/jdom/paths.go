package main

import (
	"fmt"

	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	return forDocs(cfg.MainConfig, cc, args, func(doc *jsondom.Value) (*jsondom.Value, error) {
		for _, p := range doc.Node().Paths() {
			if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", p, doc.Lookup(p).Type()); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
}

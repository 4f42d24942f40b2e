package main

import (
	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forDocs(cfg.MainConfig, cc, args, func(doc *jsondom.Value) (*jsondom.Value, error) {
		return doc, nil
	})
}

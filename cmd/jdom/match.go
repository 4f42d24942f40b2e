package main

import (
	"fmt"

	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern file", cli.ErrUsage)
	}
	pat, err := readOne(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return forDocs(cfg.MainConfig, cc, args[1:], func(doc *jsondom.Value) (*jsondom.Value, error) {
		if !doc.Match(pat) {
			return nil, nil
		}
		if cfg.Trim {
			return doc.Trim(pat), nil
		}
		return doc, nil
	})
}

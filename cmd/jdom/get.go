package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

var errNotFound = errors.New("no value at path")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if cfg.Format != "" && (cfg.Format[0] != '%') {
		return fmt.Errorf("%w: format %q must start with %%", cli.ErrUsage, cfg.Format)
	}
	return forDocs(cfg.MainConfig, cc, args[1:], func(doc *jsondom.Value) (*jsondom.Value, error) {
		res := doc.Lookup(path)
		if res.IsEmpty() {
			return nil, fmt.Errorf("%w: %q", errNotFound, path)
		}
		if cfg.Format == "" {
			return res, nil
		}
		if _, err := io.WriteString(cc.Out, res.Sprintf(cfg.Format)+"\n"); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

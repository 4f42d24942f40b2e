package main

import (
	"fmt"
	"os"

	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	return forDocs(cfg.MainConfig, cc, args[1:], func(doc *jsondom.Value) (*jsondom.Value, error) {
		target := doc
		if cfg.At != "" {
			target = doc.Lookup(cfg.At)
			if target.IsEmpty() {
				return nil, fmt.Errorf("%w: %q", errNotFound, cfg.At)
			}
		}
		if cfg.Merge {
			err = target.MergePatch(p)
		} else {
			err = target.ApplyPatch(p)
		}
		if err != nil {
			return nil, err
		}
		return doc, nil
	})
}

package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondom"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readOne(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := readOne(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	differs, err := diffValues(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffValues(cfg *DiffConfig, w io.Writer, a, b *jsondom.Value) (bool, error) {
	if a.Equal(b) {
		return false, nil
	}
	switch {
	case cfg.Merge:
		p, err := jsondom.CreateMergePatch(a, b)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintf(w, "%s\n", p)
		return true, err
	case cfg.Changes:
		for _, c := range a.Changes(b) {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	_, err := io.WriteString(w, a.Diff(b))
	return true, err
}

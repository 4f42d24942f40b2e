package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/format"
	"github.com/signadot/jsondom/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	MaxDepth int `cli:"name=depth desc='maximum nesting of input documents'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format(override *format.Format) format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(cfg.format(cfg.InFormat)),
	}
	if cfg.MaxDepth != 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format(cfg.OutFormat)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Format string `cli:"name=f aliases=format desc='printf style format for a scalar result, e.g. %05d'"`
	Get    *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Paths *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Funcs bool `cli:"name=funcs desc='list the functions available to expressions'"`
	Eval  *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool   `cli:"name=merge desc='the patch is a merge patch'"`
	At    string `cli:"name=at desc='path of the value to patch'"`
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Changes bool `cli:"name=changes desc='list structural changes instead of a line diff'"`
	Merge   bool `cli:"name=merge desc='output a merge patch from a to b'"`
	Diff    *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Trim  bool `cli:"name=trim desc='trim matching documents to the pattern'"`
	Match *cli.Command
}

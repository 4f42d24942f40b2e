package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondom"
	"github.com/signadot/jsondom/parse"

	"github.com/scott-cotton/cli"
)

// docSep separates documents in a multi document stream.
const docSep = "\n---\n"

// readDocs parses every document of file, or of stdin when file is "-".
func readDocs(cc *cli.Context, file string, opts ...parse.ParseOption) ([]*jsondom.Value, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	var res []*jsondom.Value
	for i, d := range bytes.Split(in, []byte(docSep)) {
		if len(bytes.TrimSpace(d)) == 0 {
			continue
		}
		v, err := jsondom.Parse(d, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, file, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// readOne parses file, which must hold exactly one document.
func readOne(cc *cli.Context, file string, opts ...parse.ParseOption) (*jsondom.Value, error) {
	docs, err := readDocs(cc, file, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s: expected 1 document, got %d", file, len(docs))
	}
	return docs[0], nil
}

// forDocs calls f on each document of files, stdin when files is empty,
// and writes what f returns separated by docSep.
func forDocs(cfg *MainConfig, cc *cli.Context, files []string, f func(*jsondom.Value) (*jsondom.Value, error)) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	n := 0
	for _, file := range files {
		docs, err := readDocs(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			res, err := f(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if res == nil {
				continue
			}
			if n > 0 {
				if _, err := io.WriteString(cc.Out, docSep); err != nil {
					return err
				}
			}
			n++
			if err := writeValue(cfg, cc.Out, res); err != nil {
				return err
			}
		}
	}
	if n > 0 {
		_, err := io.WriteString(cc.Out, "\n")
		return err
	}
	return nil
}

func writeValue(cfg *MainConfig, w io.Writer, v *jsondom.Value) error {
	if err := v.Encode(w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile parses the file at path, or the command input for "-".  The
// format of a file follows its suffix unless given on the command line.
func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	if cfg.Verbose {
		theLog.Info("loading", "file", path)
	}
	if path != "-" {
		return parse.ParseFile(path, cfg.parseOpts()...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

// eachDoc calls f for each document named by files, or for the command
// input when files is empty.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(i int, file string, doc *ir.Document) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := getDocFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(i, file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// writeSep separates output document i from the one before it.  JSON
// documents are written one per line.
func writeSep(w io.Writer, i int, opts []encode.EncodeOption) error {
	if i == 0 {
		return nil
	}
	sep := "---\n"
	if encode.FormatFromOpts(opts...).IsJSON() {
		sep = "\n"
	}
	_, err := w.Write([]byte(sep))
	return err
}

func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Document, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}

	var argReader io.Reader
	if f {
		switch arg {
		case "-":
			argReader = cc.In
		default:
			f, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer f.Close()
			argReader = f
		}
	} else {
		argReader = strings.NewReader(arg)
	}
	d, err := io.ReadAll(argReader)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return res, nil
}

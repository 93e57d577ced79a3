package main

import (
	"fmt"
	"os"

	"github.com/signadot/kmkv-format/kmkv/parse"
	"github.com/signadot/kmkv-format/kmkv/token"

	"github.com/scott-cotton/cli"
)

// check parses each file and logs an error for each file which fails.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires files", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		if err := checkFile(cfg, cc, file); err != nil {
			failed++
			attrs := []any{"file", file, "error", err}
			if pos := parse.ErrPos(err); pos != nil {
				line, col := pos.LineCol()
				attrs = append(attrs, "line", line+1, "col", col+1)
			}
			theLog.Error("invalid document", attrs...)
			continue
		}
		if cfg.Verbose {
			theLog.Info("ok", "file", file)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) error {
	if !cfg.Tokens {
		_, err := parse.ParseFile(file, cfg.parseOpts()...)
		return err
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return err
	}
	token.PrintTokens(cc.Out, toks, file)
	_, err = parse.Parse(d, cfg.parseOpts()...)
	return err
}


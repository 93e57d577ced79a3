package main

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv"
	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available match tags:\n")
		for _, s := range mergeop.Symbols() {
			if !s.IsMatch() {
				continue
			}
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern document", cli.ErrUsage)
	}
	pattern, err := getish(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(_ int, file string, doc *ir.Document) error {
		ok, err := kmkv.Match(doc, pattern)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if !ok {
			return nil
		}
		if cfg.Trim {
			doc = kmkv.Trim(pattern, doc)
		}
		if err := writeSep(cc.Out, n, opts); err != nil {
			return err
		}
		n++
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

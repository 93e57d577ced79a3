package main

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv"
	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available patch tags:\n")
		for _, s := range mergeop.Symbols() {
			if !s.IsPatch() {
				continue
			}
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch document and optionally a file to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	doc, err := getDocFile(cfg.MainConfig, cc, target)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	res, err := kmkv.Patch(doc, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

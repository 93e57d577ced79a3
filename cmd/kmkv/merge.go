package main

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 files", cli.ErrUsage)
	}
	var res *ir.Document
	err = eachDoc(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Document) error {
		if i == 0 {
			res = doc
			return nil
		}
		return mergeop.Merge(res, doc)
	})
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

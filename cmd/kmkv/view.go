package main

import (
	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cfg.MainConfig, cc, args, func(i int, _ string, doc *ir.Document) error {
		if err := writeSep(cc.Out, i, opts); err != nil {
			return err
		}
		return encode.Encode(doc, cc.Out, opts...)
	})
}

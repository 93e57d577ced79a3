package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		if path[0] != '.' {
			path = "." + path
		}
		path = "$" + path
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ int, file string, doc *ir.Document) error {
		it, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		return writeItem(cfg.MainConfig, cc.Out, it)
	})
}

// writeItem writes documents in the output format, arrays one element per
// line and other strings as is.
func writeItem(cfg *MainConfig, w io.Writer, it *ir.Item) error {
	var s string
	switch it.Type {
	case ir.DocumentType:
		return encode.Encode(it.Doc, w, cfg.encOpts(w)...)
	case ir.StringType:
		if it.IsArray() {
			s = strings.Join(it.Array(), "\n")
		} else {
			s = it.String
		}
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Pretty  bool `cli:"name=pretty desc='indent json output'"`
	Indent  int  `cli:"name=indent desc='indentation of nested documents'"`
	Depth   int  `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	K bool `cli:"name=k aliases=kmkv desc='do i/o in kmkv'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

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

// inFormat returns the input format given on the command line, if any.
func (cfg *MainConfig) inFormat() *format.Format {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	var f format.Format
	switch {
	case cfg.K:
		f = format.KmkvFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if f := cfg.inFormat(); f != nil {
		res = append(res, parse.ParseFormat(*f))
	}
	if cfg.Depth != 0 {
		res = append(res, parse.ParseMaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	switch {
	case cfg.K:
		fmt = format.KmkvFormat
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored.  An explicit -color
// wins, otherwise terminals get color.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
	Tags   bool `cli:"name=tags desc='show available tags'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool   `cli:"name=r desc='reverse the diff'"`
	Loop      string `cli:"name=loop desc='command to produce documents to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	Tags   bool `cli:"name=tags desc='show available tags'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expr   string `cli:"name=x desc='print the value of an expression'"`
	Filter string `cli:"name=filter desc='keep top level entries for which an expression holds'"`
	Tags   bool   `cli:"name=tags desc='show available tags'"`

	Eval *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='print the tokens of each file'"`

	Check *cli.Command
}

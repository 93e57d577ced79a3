package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/eval"
	"github.com/signadot/kmkv-format/kmkv/ir"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func kmkvEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available eval tags:\n")
		syms := eval.Symbols()
		sort.Slice(syms, func(i, j int) bool { return syms[i].String() < syms[j].String() })
		for _, s := range syms {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if cfg.Expr != "" && cfg.Filter != "" {
		return fmt.Errorf("%w: only one of -x, -filter may be specified", cli.ErrUsage)
	}
	envEnv, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cfg.MainConfig, cc, args, func(i int, _ string, doc *ir.Document) error {
		if err := writeSep(cc.Out, i, opts); err != nil {
			return err
		}
		env := eval.DocEnv(doc)
		overlayEnv(env, envEnv)
		overlayEnv(env, cfg.Env)
		switch {
		case cfg.Expr != "":
			v, err := eval.EvalEnv(doc, env, cfg.Expr)
			if err != nil {
				return err
			}
			return writeValue(cc.Out, v)
		case cfg.Filter != "":
			res, err := eval.Filter(doc, cfg.Filter)
			if err != nil {
				return err
			}
			return encode.Encode(res, cc.Out, opts...)
		default:
			res, err := eval.Expand(doc, env)
			if err != nil {
				return err
			}
			return encode.Encode(res, cc.Out, opts...)
		}
	})
}

func writeValue(w io.Writer, v any) error {
	var d []byte
	switch x := v.(type) {
	case string:
		d = []byte(x)
	default:
		var err error
		d, err = json.Marshal(x)
		if err != nil {
			return err
		}
	}
	_, err := w.Write(append(d, '\n'))
	return err
}

// overlayEnv sets the entries of src in dst, descending into maps present
// on both sides.
func overlayEnv(dst, src map[string]any) {
	for k, v := range src {
		sm, ok := v.(map[string]any)
		if ok {
			if dm, ok := dst[k].(map[string]any); ok {
				overlayEnv(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}

// envFunc sets the value of a "path=val" argument in env.  The value is
// decoded as yaml and the path is a dotted sequence of keys.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}

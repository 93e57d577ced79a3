package mergeop

import (
	"fmt"
	"regexp"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var regexSym = &regexSymbol{matchName: regexName}

func Regex() Symbol {
	return regexSym
}

const (
	regexName matchName = "regex"
)

type regexSymbol struct {
	matchName
}

func (s regexSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	re, err := regexp.Compile(child.String)
	if err != nil {
		return nil, fmt.Errorf("%w: regex %q: %w", ErrOp, child.String, err)
	}
	return &regexOp{re: re, matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

type regexOp struct {
	matchOp
	re *regexp.Regexp
}

// Match reports whether the regular expression matches somewhere in a
// string item.  Anchor the expression to match whole values.
func (r regexOp) Match(it *ir.Item, _ MatchFunc) (bool, error) {
	if debug.Match() {
		debug.Logf("regex op %s\n", r.re)
	}
	if it == nil || it.Type != ir.StringType {
		return false, nil
	}
	return r.re.MatchString(it.String), nil
}

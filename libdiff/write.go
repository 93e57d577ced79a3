package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

// Write renders changes one per line.  Multi-line values are indented
// beneath their change.
func Write(w io.Writer, changes []Change, colored bool) error {
	add, del, mod := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if colored {
		add = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
		mod = color.New(color.FgYellow).Sprint
	}
	for i := range changes {
		c := &changes[i]
		var line string
		switch c.Op {
		case Added:
			line = add(c.Op.sign() + " " + c.Path.String() + " " + describe(c.To))
		case Removed:
			line = del(c.Op.sign() + " " + c.Path.String() + " " + describe(c.From))
		case Retagged:
			line = mod(fmt.Sprintf("%s %s {%s} -> {%s}", c.Op.sign(), c.Path, c.From.Tag, c.To.Tag))
		case Modified:
			line = mod(c.Op.sign()+" "+c.Path.String()) + " " + PrettyString(c.From.String, c.To.String, colored)
		default:
			line = mod(fmt.Sprintf("%s %s %s -> %s", c.Op.sign(), c.Path, describe(c.From), describe(c.To)))
		}
		if _, err := io.WriteString(w, indentLines(line)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func describe(it *ir.Item) string {
	switch it.Type {
	case ir.StringType:
		if it.Tag == "" {
			return fmt.Sprintf("%q", it.String)
		}
		return fmt.Sprintf("{%s} %q", it.Tag, it.String)
	case ir.DocumentType:
		return fmt.Sprintf("{%s} (%d keys)", ir.TagKmkv, it.Doc.Len())
	default:
		return it.Type.String()
	}
}

func indentLines(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}

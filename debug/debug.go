package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Convert  bool
	Patch    bool
	Match    bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("KMKV_DEBUG_TOKENIZE")
	d.Parse = boolEnv("KMKV_DEBUG_PARSE")
	d.Convert = boolEnv("KMKV_DEBUG_CONVERT")
	d.Patch = boolEnv("KMKV_DEBUG_PATCH")
	d.Match = boolEnv("KMKV_DEBUG_MATCH")
	d.Eval = boolEnv("KMKV_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// LogAny writes v to stderr as a line of JSON.
func LogAny(v any) {
	writeAny(os.Stderr, v)
}

func writeAny(w io.Writer, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%v\n", v)
		return
	}
	w.Write(append(d, '\n'))
}

package eval

import (
	"fmt"
	"os"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/parse"
)

const (
	EnvEnv = "KMKV_ENV"
)

// LoadEnv returns the environment given as a kmkv document in $KMKV_ENV,
// or nil if it is unset.
func LoadEnv() (Env, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	doc, err := parse.ParseString(envEnv)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	env := DocEnv(doc)
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %v\n", EnvEnv, map[string]any(env))
	}
	return env, nil
}

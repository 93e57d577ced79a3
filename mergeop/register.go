package mergeop

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

func Register(s Symbol) error {
	key := s.String()
	if key == "" || strings.ContainsAny(key, "{} \t\r\n") {
		return fmt.Errorf("symbol %q is not a valid tag", key)
	}
	mu.Lock()
	defer mu.Unlock()
	_, present := d[key]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[key] = s
	return nil
}

func init() {
	Register(Not())
	Register(Glob())
	Register(Regex())
	Register(Type())
	Register(Tag())
	Register(Absent())

	Register(Delete())
	Register(Append())
	Register(Retag())
	Register(JSONPatchOp())
	Register(MergePatchOp())
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Symbols returns the registered symbols sorted by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}

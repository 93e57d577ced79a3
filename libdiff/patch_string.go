package libdiff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// PatchString applies a patch produced by DiffString to s.
func PatchString(s, patch string) (string, error) {
	diffCfg := diffpatch.New()
	patches, err := diffCfg.PatchFromText(patch)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, oks := diffCfg.PatchApply(patches, s)
	for i, ok := range oks {
		if !ok {
			return "", fmt.Errorf("%w: hunk %d does not apply", ErrConflict, i)
		}
	}
	return res, nil
}

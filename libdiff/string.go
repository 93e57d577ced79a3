package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a patch, in the diff-match-patch text format, turning
// from into to.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	patches := diffCfg.PatchMake(from, diffs)
	return diffCfg.PatchToText(patches)
}

// PrettyString returns a human readable inline rendering of the changes
// between from and to.
func PrettyString(from, to string, color bool) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if color {
		return diffCfg.DiffPrettyText(diffs)
	}
	sb := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

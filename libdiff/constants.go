package libdiff

import "fmt"

// Op is the kind of a Change.
type Op int

const (
	Added Op = iota
	Removed
	Modified
	Retagged
	KindChanged
)

func (o Op) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	case Retagged:
		return "retagged"
	case KindChanged:
		return "kind-changed"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// sign is the marker Write prints before the path of a change.
func (o Op) sign() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Retagged:
		return "#"
	default:
		return "~"
	}
}

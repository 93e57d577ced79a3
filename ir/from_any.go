package ir

import (
	"fmt"
	"slices"
	"strconv"
)

// FromAny converts plain Go values, as produced by [Document.ToAny] or by
// decoding JSON into an any, to an item.  Map keys are added in sorted
// order.  Numbers and booleans become their decimal or "true"/"false"
// string forms.  Slices must hold only scalars.
func FromAny(v any) (*Item, error) {
	switch x := v.(type) {
	case nil:
		return &Item{}, nil
	case *Item:
		return x, nil
	case *Document:
		return FromDocument(x), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case int:
		return FromString(strconv.Itoa(x)), nil
	case int64:
		return FromString(strconv.FormatInt(x, 10)), nil
	case float64:
		return FromString(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case []string:
		return FromArray(x), nil
	case []any:
		elts := make([]string, len(x))
		for i, e := range x {
			it, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			if it.Type != StringType || it.IsArray() {
				return nil, fmt.Errorf("array element %d: cannot convert %T to string", i, e)
			}
			elts[i] = it.String
		}
		return FromArray(elts), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		d := NewDocument()
		for _, k := range keys {
			it, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			if err := d.Set(k, it); err != nil {
				return nil, err
			}
		}
		return FromDocument(d), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to an item", v)
	}
}

package valuepath

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// resolveDocument resolves one segment against a tree-shaped document node.
// The node is self-describing, so the object/array/scalar decision comes
// straight from the node itself.
func resolveDocument(r gjson.Result, segment, path string, caseInsensitive bool) (any, error) {
	switch {
	case r.IsObject():
		// Exact property match first; the case-insensitive fallback scans
		// all property names and the first match in document order wins.
		var folded gjson.Result
		var foundExact, foundFolded bool
		var exact gjson.Result
		r.ForEach(func(key, value gjson.Result) bool {
			if key.Str == segment {
				exact, foundExact = value, true
				return false
			}
			if caseInsensitive && !foundFolded && strings.EqualFold(key.Str, segment) {
				folded, foundFolded = value, true
			}
			return true
		})
		if foundExact {
			return exact, nil
		}
		if foundFolded {
			return folded, nil
		}
		return nil, newMemberNotFoundError(path, segment, r)
	case r.IsArray():
		items := r.Array()
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(items) {
			return nil, newIndexError(path, segment, len(items))
		}
		return items[idx], nil
	default:
		return nil, newScalarDescentError(path, segment, r.Value())
	}
}

// materializeScalar converts a scalar document leaf into a native value.
// Numbers get minimal-width typing: int32 when the value fits, int64 for
// larger integers, float64 for fractional values, and an arbitrary-precision
// decimal when the literal exceeds float64 entirely.
func materializeScalar(r gjson.Result) any {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	case gjson.Number:
		return materializeNumber(strings.TrimSpace(r.Raw))
	default:
		// Non-scalar nodes are not materialized.
		return r
	}
}

func materializeNumber(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if i >= -2147483648 && i <= 2147483647 {
			return int32(i)
		}
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		return d
	}
	return raw
}

// documentValue converts a document node into its native representation:
// scalars are materialized, objects and arrays unwrap to maps and slices.
// Used when a resolved document node flows into coercion.
func documentValue(r gjson.Result) any {
	if r.IsObject() || r.IsArray() {
		return r.Value()
	}
	return materializeScalar(r)
}

package valuepath

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// resolveSegments walks segments in order against root. Before each step an
// absent current value short-circuits the walk: the overall result is absent,
// not an error, no matter how many segments remain. An empty segment list
// returns root unchanged. Every returned error embeds the full original path.
func resolveSegments(root any, path string, segments []string, caseInsensitive bool) (any, error) {
	current := root
	for _, segment := range segments {
		if isAbsent(current) {
			return nil, nil
		}

		next, err := resolveStep(current, segment, path, caseInsensitive)
		if err != nil {
			return nil, err
		}
		current = next
	}

	if len(segments) > 0 {
		if r, ok := current.(gjson.Result); ok && !r.IsObject() && !r.IsArray() {
			return materializeScalar(r), nil
		}
	}
	return current, nil
}

// resolveStep dispatches one segment on the runtime shape of the current
// value. The shape classification is closed: document node, string-keyed
// mapping (including dynamic member views), generic keyed container,
// indexable sequence, structured record, or scalar.
func resolveStep(current any, segment, path string, caseInsensitive bool) (any, error) {
	switch v := current.(type) {
	case gjson.Result:
		return resolveDocument(v, segment, path, caseInsensitive)
	case map[string]any:
		return resolveStringMap(v, segment, path, caseInsensitive)
	case []any:
		return resolveSlice(v, segment, path)
	case MemberAccessor:
		return resolveMemberAccessor(v, segment, path, caseInsensitive)
	default:
		return resolveReflect(current, segment, path, caseInsensitive)
	}
}

// resolveStringMap resolves a segment against a plain map[string]any. Keyed
// lookup always runs first, so a numeric-looking segment matching a string
// key wins over any positional interpretation.
func resolveStringMap(m map[string]any, segment, path string, caseInsensitive bool) (any, error) {
	if v, ok := m[segment]; ok {
		return v, nil
	}
	if caseInsensitive {
		for k, v := range m {
			if strings.EqualFold(k, segment) {
				return v, nil
			}
		}
	}
	return nil, newMemberNotFoundError(path, segment, m)
}

func resolveSlice(s []any, segment, path string) (any, error) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 || idx >= len(s) {
		return nil, newIndexError(path, segment, len(s))
	}
	return s[idx], nil
}

// resolveMemberAccessor resolves a segment against a dynamic member view.
func resolveMemberAccessor(ma MemberAccessor, segment, path string, caseInsensitive bool) (any, error) {
	if v, ok := ma.GetMember(segment); ok {
		return v, nil
	}
	if caseInsensitive {
		for _, name := range ma.MemberNames() {
			if strings.EqualFold(name, segment) {
				if v, ok := ma.GetMember(name); ok {
					return v, nil
				}
			}
		}
	}
	return nil, newMemberNotFoundError(path, segment, ma)
}

// resolveReflect covers the shapes that need introspection: generic keyed
// containers, typed sequences and arrays, and structured records.
func resolveReflect(current any, segment, path string, caseInsensitive bool) (any, error) {
	rv := reflect.ValueOf(current)

	indirect := rv
	for indirect.Kind() == reflect.Pointer {
		indirect = indirect.Elem()
	}

	switch indirect.Kind() {
	case reflect.Map:
		if lookupMappingCapability(indirect.Type()) {
			return resolveKeyedContainer(indirect, segment, path, caseInsensitive)
		}
		return nil, newScalarDescentError(path, segment, current)
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= indirect.Len() {
			return nil, newIndexError(path, segment, indirect.Len())
		}
		return indirect.Index(idx).Interface(), nil
	case reflect.Struct:
		return resolveRecord(rv, segment, path, caseInsensitive)
	default:
		return nil, newScalarDescentError(path, segment, current)
	}
}

// resolveKeyedContainer resolves a segment against any map with string-kind
// keys, whatever its element type. Exact key match first, then the
// case-insensitive scan. Keyed lookup precedence over positional
// interpretation holds here as well.
func resolveKeyedContainer(mv reflect.Value, segment, path string, caseInsensitive bool) (any, error) {
	keyType := mv.Type().Key()
	key := reflect.ValueOf(segment)
	if keyType != key.Type() {
		key = key.Convert(keyType)
	}
	if v := mv.MapIndex(key); v.IsValid() {
		return v.Interface(), nil
	}

	if caseInsensitive {
		iter := mv.MapRange()
		for iter.Next() {
			if strings.EqualFold(iter.Key().String(), segment) {
				return iter.Value().Interface(), nil
			}
		}
	}
	return nil, newMemberNotFoundError(path, segment, mv.Interface())
}

// resolveRecord resolves a segment against a struct or pointer-to-struct via
// the member lookup cache. rv keeps its original pointer-ness so that
// pointer-receiver methods stay in the method set.
func resolveRecord(rv reflect.Value, segment, path string, caseInsensitive bool) (any, error) {
	// Collapse multiple pointer levels down to one.
	for rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	acc, ok := lookupMember(rv.Type(), segment, caseInsensitive)
	if !ok {
		return nil, newMemberNotFoundError(path, segment, rv.Interface())
	}
	return acc.get(rv), nil
}

package valuepath

import (
	"reflect"

	"github.com/tidwall/gjson"
)

// MemberAccessor is the capability a value can implement to expose its
// members dynamically, without reflection. Values implementing it are
// resolved like string-keyed mappings: GetMember is consulted first, and
// MemberNames feeds the case-insensitive fallback scan.
type MemberAccessor interface {
	// GetMember returns the member stored under name, and whether it exists.
	GetMember(name string) (any, bool)

	// MemberNames lists the member names currently exposed by the value.
	MemberNames() []string
}

// isAbsent reports whether a value is conceptually null: an untyped nil, a
// missing or null document node, or a typed nil pointer/interface/map/slice.
// Resolution stops on absent values without error, regardless of how many
// segments remain.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if r, ok := v.(gjson.Result); ok {
		return !r.Exists() || r.Type == gjson.Null
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

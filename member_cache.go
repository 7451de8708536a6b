package valuepath

import (
	"reflect"
	"strings"

	"github.com/cybergodev/valuepath/internal"
)

// memberCacheLimit bounds each lookup cache; exceeding it triggers a bulk
// eviction of roughly half the entries before the next insert.
const memberCacheLimit = 1000

var (
	// memberCache memoizes (type, member name, case mode) -> accessor.
	// Absent members are recorded too, so repeated lookups of a missing
	// name skip the introspection entirely.
	memberCache = internal.NewStore(memberCacheLimit)

	// capabilityCache memoizes whether a type exposes a generic
	// string-keyed mapping capability.
	capabilityCache = internal.NewStore(memberCacheLimit)
)

type memberKind int

const (
	memberMethod memberKind = iota // property-like: exported zero-arg, single-result method
	memberField                    // field-like: exported struct field, including promoted ones
)

// memberAccessor describes how to read one named member from values of a
// given type. Accessors are immutable once built and shared via the cache.
type memberAccessor struct {
	kind       memberKind
	methodIdx  int
	fieldIndex []int
	name       string // canonical member name as declared
}

// get reads the member from rv, which must be of the type the accessor was
// built for. A nil embedded pointer on the way to a promoted field yields an
// absent value rather than an error.
func (a *memberAccessor) get(rv reflect.Value) any {
	switch a.kind {
	case memberMethod:
		out := rv.Method(a.methodIdx).Call(nil)
		return out[0].Interface()
	default:
		sv := rv
		for sv.Kind() == reflect.Pointer {
			sv = sv.Elem()
		}
		fv, err := sv.FieldByIndexErr(a.fieldIndex)
		if err != nil {
			return nil
		}
		return fv.Interface()
	}
}

type memberCacheKey struct {
	typ             reflect.Type
	name            string
	caseInsensitive bool
}

// lookupMember resolves a named member on t, consulting the cache first.
// Property-like members (exported zero-arg single-result methods) are
// preferred over field-like members. The second return reports whether the
// member exists; a cached negative result returns (nil, false) without
// re-introspecting.
func lookupMember(t reflect.Type, name string, caseInsensitive bool) (*memberAccessor, bool) {
	key := memberCacheKey{typ: t, name: name, caseInsensitive: caseInsensitive}
	hash := internal.Hash(t.String() + "\x00" + name)

	if cached, ok := memberCache.Load(hash, key); ok {
		acc := cached.(*memberAccessor)
		return acc, acc != nil
	}

	acc := findMember(t, name, caseInsensitive)
	stored, _ := memberCache.LoadOrStore(hash, key, acc)
	acc = stored.(*memberAccessor)
	return acc, acc != nil
}

// findMember performs the structural introspection behind lookupMember.
func findMember(t reflect.Type, name string, caseInsensitive bool) *memberAccessor {
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		// Receiver only, one result: the property shape.
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if memberNameMatch(m.Name, name, caseInsensitive) {
			return &memberAccessor{kind: memberMethod, methodIdx: m.Index, name: m.Name}
		}
	}

	st := t
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(st) {
			if !f.IsExported() {
				continue
			}
			if memberNameMatch(f.Name, name, caseInsensitive) {
				return &memberAccessor{kind: memberField, fieldIndex: f.Index, name: f.Name}
			}
		}
	}

	return nil
}

func memberNameMatch(declared, requested string, caseInsensitive bool) bool {
	if declared == requested {
		return true
	}
	return caseInsensitive && strings.EqualFold(declared, requested)
}

// lookupMappingCapability reports whether t is usable as a generic
// string-keyed container, memoizing the answer per type.
func lookupMappingCapability(t reflect.Type) bool {
	hash := internal.Hash(t.String())

	if cached, ok := capabilityCache.Load(hash, t); ok {
		return cached.(bool)
	}

	capable := t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
	stored, _ := capabilityCache.LoadOrStore(hash, t, capable)
	return stored.(bool)
}

// ClearCaches removes every entry from every lookup cache. Safe to call
// concurrently with in-flight resolutions, which simply repopulate.
func ClearCaches() {
	memberCache.Clear()
	capabilityCache.Clear()
}

// CacheStats describes the combined usage counters of the member and
// capability caches.
type CacheStats struct {
	Entries   int64
	Hits      int64
	Misses    int64
	Evictions int64
}

// GetCacheStats returns a snapshot of the lookup caches' counters.
func GetCacheStats() CacheStats {
	member := memberCache.Stats()
	capability := capabilityCache.Stats()
	return CacheStats{
		Entries:   member.Entries + capability.Entries,
		Hits:      member.Hits + capability.Hits,
		Misses:    member.Misses + capability.Misses,
		Evictions: member.Evictions + capability.Evictions,
	}
}

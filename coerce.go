package valuepath

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var (
	uuidType            = reflect.TypeOf(uuid.UUID{})
	decimalType         = reflect.TypeOf(decimal.Decimal{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// enumTables maps enumeration types to their name tables. Registration is
// permanent: ClearCaches does not touch it, because a registry is
// configuration, not a memo.
var enumTables sync.Map // reflect.Type -> map[string]any

// RegisterEnum teaches the coercer the named members of an enumeration type,
// so text values resolve to members by name (respecting the case rule) and
// numeric values construct members from the underlying integral value.
//
//	type Weekday int
//	valuepath.RegisterEnum(map[string]Weekday{
//		"Sunday": Sunday, "Monday": Monday, ...
//	})
func RegisterEnum[T comparable](names map[string]T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	table := make(map[string]any, len(names))
	for name, member := range names {
		table[name] = member
	}
	enumTables.Store(t, table)
}

func enumTable(t reflect.Type) (map[string]any, bool) {
	v, ok := enumTables.Load(t)
	if !ok {
		return nil, false
	}
	return v.(map[string]any), true
}

// coerceValue converts a resolved raw value to T. An absent value yields T's
// zero value without error. Document nodes are unwrapped to their native
// representation before conversion.
func coerceValue[T any](value any, path string, caseInsensitive bool) (T, error) {
	var zero T
	if value == nil {
		return zero, nil
	}
	if r, ok := value.(gjson.Result); ok {
		if !r.Exists() || r.Type == gjson.Null {
			return zero, nil
		}
		value = documentValue(r)
	}

	if v, ok := value.(T); ok {
		return v, nil
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	out, err := coerceToType(value, target, path, caseInsensitive)
	if err != nil {
		return zero, err
	}
	return out.Interface().(T), nil
}

// coerceToType applies the conversion rules in order: identity, optional
// (pointer) unwrap, enumeration, unique identifier, arbitrary-precision
// decimal, then general primitive conversion. Any failure is reported as a
// single coercion error naming the value's type, the requested type and the
// full path.
func coerceToType(value any, target reflect.Type, path string, caseInsensitive bool) (reflect.Value, error) {
	if vt := reflect.TypeOf(value); vt != nil && vt.AssignableTo(target) {
		return reflect.ValueOf(value), nil
	}

	// Optional wrapper: coerce to the underlying type, then re-wrap.
	if target.Kind() == reflect.Pointer {
		inner, err := coerceToType(value, target.Elem(), path, caseInsensitive)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(target.Elem())
		p.Elem().Set(inner)
		return p, nil
	}

	if table, ok := enumTable(target); ok {
		return coerceEnum(value, target, table, path, caseInsensitive)
	}

	if target == uuidType {
		if s, ok := value.(string); ok {
			id, err := uuid.Parse(s)
			if err != nil {
				return reflect.Value{}, newCoercionError(path, value, target, err)
			}
			return reflect.ValueOf(id), nil
		}
		return reflect.Value{}, newCoercionError(path, value, target, nil)
	}

	// Enumeration-like types without a registered table can still parse
	// themselves from text.
	if reflect.PointerTo(target).Implements(textUnmarshalerType) {
		if s, ok := value.(string); ok {
			p := reflect.New(target)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return reflect.Value{}, newCoercionError(path, value, target, err)
			}
			return p.Elem(), nil
		}
	}

	if target == decimalType {
		return coerceDecimal(value, target, path)
	}

	return coercePrimitive(value, target, path)
}

// coerceEnum resolves an enumeration member from a registered name table.
// Text values match by name under the case rule; numeric values construct
// the member from the underlying integral value.
func coerceEnum(value any, target reflect.Type, table map[string]any, path string, caseInsensitive bool) (reflect.Value, error) {
	if s, ok := value.(string); ok {
		if member, ok := table[s]; ok {
			return reflect.ValueOf(member), nil
		}
		if caseInsensitive {
			for name, member := range table {
				if strings.EqualFold(name, s) {
					return reflect.ValueOf(member), nil
				}
			}
		}
		return reflect.Value{}, newCoercionError(path, value, target,
			fmt.Errorf("'%s' is not a member of %s", s, target))
	}

	if i, ok := toInt64(value); ok {
		out := reflect.New(target).Elem()
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if out.OverflowInt(i) {
				return reflect.Value{}, newCoercionError(path, value, target, nil)
			}
			out.SetInt(i)
			return out, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if i < 0 || out.OverflowUint(uint64(i)) {
				return reflect.Value{}, newCoercionError(path, value, target, nil)
			}
			out.SetUint(uint64(i))
			return out, nil
		}
	}
	return reflect.Value{}, newCoercionError(path, value, target, nil)
}

func coerceDecimal(value any, target reflect.Type, path string) (reflect.Value, error) {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return reflect.Value{}, newCoercionError(path, value, target, err)
		}
		return reflect.ValueOf(d), nil
	case float32:
		return reflect.ValueOf(decimal.NewFromFloat32(v)), nil
	case float64:
		return reflect.ValueOf(decimal.NewFromFloat(v)), nil
	default:
		if i, ok := toInt64(value); ok {
			return reflect.ValueOf(decimal.NewFromInt(i)), nil
		}
	}
	return reflect.Value{}, newCoercionError(path, value, target, nil)
}

// coercePrimitive performs the general numeric/textual conversion for the
// target's primitive kind, including named types over those kinds.
func coercePrimitive(value any, target reflect.Type, path string) (reflect.Value, error) {
	out := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.Bool:
		if b, ok := toBool(value); ok {
			out.SetBool(b)
			return out, nil
		}
	case reflect.String:
		if s, ok := toStringValue(value); ok {
			out.SetString(s)
			return out, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := toInt64(value); ok && !out.OverflowInt(i) {
			out.SetInt(i)
			return out, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u, ok := toUint64(value); ok && !out.OverflowUint(u) {
			out.SetUint(u)
			return out, nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat64(value); ok && !out.OverflowFloat(f) {
			out.SetFloat(f)
			return out, nil
		}
	}

	return reflect.Value{}, newCoercionError(path, value, target, nil)
}

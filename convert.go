package valuepath

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Primitive conversion helpers shared by the coercer. Each returns the
// converted value and whether the conversion was possible without loss.

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) <= 1<<63-1 {
			return int64(v), true
		}
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= 1<<63-1 {
			return int64(v), true
		}
	case float32:
		if float32(int64(v)) == v {
			return int64(v), true
		}
	case float64:
		if float64(int64(v)) == v {
			return int64(v), true
		}
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, true
		}
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
	case decimal.Decimal:
		if v.IsInteger() {
			return v.IntPart(), true
		}
	}
	return 0, false
}

func toUint64(value any) (uint64, bool) {
	if i, ok := toInt64(value); ok && i >= 0 {
		return uint64(i), true
	}
	if u, ok := value.(uint64); ok {
		return u, true
	}
	if u, ok := value.(uint); ok {
		return uint64(u), true
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, true
	default:
		if i, ok := toInt64(value); ok {
			return float64(i), true
		}
	}
	return 0, false
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	default:
		if i, ok := toInt64(value); ok {
			return i != 0, true
		}
	}
	return false, false
}

func toStringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case json.Number:
		return v.String(), true
	case decimal.Decimal:
		return v.String(), true
	default:
		if i, ok := toInt64(value); ok {
			return strconv.FormatInt(i, 10), true
		}
	}
	return "", false
}

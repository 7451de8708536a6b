package valuepath

import (
	"context"
	"errors"
	"log/slog"
)

// logResolveError emits a debug record for a failed operation when the
// caller opted into diagnostics. The library is silent by default.
func logResolveError(opt *Options, operation, path string, err error) {
	if opt == nil || opt.Logger == nil {
		return
	}

	opt.Logger.LogAttrs(context.Background(), slog.LevelDebug, "path operation failed",
		slog.String("operation", operation),
		slog.String("path", path),
		slog.String("error_kind", errorKind(err)),
		slog.String("error", err.Error()),
	)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return "member_not_found"
	case errors.Is(err, ErrInvalidIndex):
		return "invalid_index"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrInvalidPath):
		return "invalid_path"
	default:
		return "unknown"
	}
}

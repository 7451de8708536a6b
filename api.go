package valuepath

// GetValue resolves a path expression against root and returns the raw value
// found at that location. An absent root yields an absent result immediately;
// an empty path returns root unchanged. Matching is case-insensitive unless
// options say otherwise.
func GetValue(root any, path string, opts ...*Options) (any, error) {
	opt := resolveOptions(opts)

	if isAbsent(root) {
		return nil, nil
	}
	if path == "" {
		return root, nil
	}

	value, err := resolveSegments(root, path, tokenizePath(path), !opt.CaseSensitive)
	if err != nil {
		logResolveError(opt, "resolve", path, err)
		return nil, err
	}
	return value, nil
}

// GetValueAs resolves a path expression and coerces the result to T. An
// absent root, or a chain that short-circuits on a null value, yields T's
// zero value without error.
func GetValueAs[T any](root any, path string, opts ...*Options) (T, error) {
	opt := resolveOptions(opts)

	raw, err := GetValue(root, path, opt)
	if err != nil {
		var zero T
		return zero, err
	}

	value, err := coerceValue[T](raw, path, !opt.CaseSensitive)
	if err != nil {
		logResolveError(opt, "coerce", path, err)
		var zero T
		return zero, err
	}
	return value, nil
}

// TryGetValue is the non-throwing form of GetValue. It reports false when
// root is absent or the path fails to resolve, and true whenever the path
// fully resolves, even to an absent value at the end of the chain.
func TryGetValue(root any, path string, opts ...*Options) (any, bool) {
	if isAbsent(root) {
		return nil, false
	}
	value, err := GetValue(root, path, opts...)
	if err != nil {
		return nil, false
	}
	return value, true
}

// TryGetValueAs is the non-throwing form of GetValueAs; coercion failures
// also report false.
func TryGetValueAs[T any](root any, path string, opts ...*Options) (T, bool) {
	var zero T
	if isAbsent(root) {
		return zero, false
	}
	value, err := GetValueAs[T](root, path, opts...)
	if err != nil {
		return zero, false
	}
	return value, true
}

// GetString resolves a path expression and coerces the result to string
func GetString(root any, path string, opts ...*Options) (string, error) {
	return GetValueAs[string](root, path, opts...)
}

// GetInt resolves a path expression and coerces the result to int
func GetInt(root any, path string, opts ...*Options) (int, error) {
	return GetValueAs[int](root, path, opts...)
}

// GetFloat64 resolves a path expression and coerces the result to float64
func GetFloat64(root any, path string, opts ...*Options) (float64, error) {
	return GetValueAs[float64](root, path, opts...)
}

// GetBool resolves a path expression and coerces the result to bool
func GetBool(root any, path string, opts ...*Options) (bool, error) {
	return GetValueAs[bool](root, path, opts...)
}

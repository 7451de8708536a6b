package valuepath

import (
	"errors"
	"testing"
)

func TestGetValueEmptyPathIdentity(t *testing.T) {
	root := newTestUser()

	got, err := GetValue(root, "")
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	if got != any(root) {
		t.Errorf("empty path should return root unchanged by identity")
	}
}

func TestGetValueAbsentRoot(t *testing.T) {
	got, err := GetValue(nil, "anything.at.all")
	if err != nil {
		t.Fatalf("absent root raised error: %v", err)
	}
	if got != nil {
		t.Errorf("absent root = %v, want absent", got)
	}

	var typedNil *testUser
	if got, err = GetValue(typedNil, "Name"); err != nil || got != nil {
		t.Errorf("typed nil root = %v (err %v), want absent without error", got, err)
	}

	if _, ok := TryGetValue(nil, "anything"); ok {
		t.Errorf("TryGetValue on absent root should report failure")
	}

	// The typed form yields the target's zero value without error.
	s, err := GetValueAs[string](nil, "Name")
	if err != nil || s != "" {
		t.Errorf("GetValueAs on absent root = %q (err %v), want zero value", s, err)
	}
}

// TestGetValueTryGetValueAgreement checks the two entry points agree on
// success/failure and on the value, across shapes and failure modes.
func TestGetValueTryGetValueAgreement(t *testing.T) {
	user := newTestUser()

	tests := []struct {
		name string
		root any
		path string
	}{
		{name: "struct hit", root: user, path: "Address.City"},
		{name: "struct miss", root: user, path: "Address.Country"},
		{name: "sequence hit", root: user, path: "Items[0]"},
		{name: "sequence miss", root: user, path: "Items[99]"},
		{name: "map hit", root: user.Meta, path: "role"},
		{name: "map miss", root: user.Meta, path: "nope"},
		{name: "null short-circuit", root: map[string]any{"a": nil}, path: "a.b.c"},
		{name: "scalar descent", root: user, path: "Name.Length"},
		{name: "empty path", root: user, path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := GetValue(tt.root, tt.path)
			tryValue, ok := TryGetValue(tt.root, tt.path)

			if ok != (err == nil) {
				t.Fatalf("success disagreement: GetValue err = %v, TryGetValue ok = %v", err, ok)
			}
			if ok && value != tryValue {
				t.Errorf("value disagreement: %v vs %v", value, tryValue)
			}
		})
	}
}

func TestTryGetValueAsReportsCoercionFailure(t *testing.T) {
	root := map[string]any{"v": "not a number"}

	if _, ok := TryGetValueAs[int](root, "v"); ok {
		t.Errorf("TryGetValueAs should report failure when coercion fails")
	}
	if n, ok := TryGetValueAs[int](root, "v"); n != 0 || ok {
		t.Errorf("failed TryGetValueAs = (%d, %v), want zero value and false", n, ok)
	}
}

func TestGetValueAsKeepsResolutionErrors(t *testing.T) {
	user := newTestUser()

	_, err := GetValueAs[string](user, "Missing")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("typed get should surface resolution errors, got %v", err)
	}
}

func TestOptionsClone(t *testing.T) {
	opt := &Options{CaseSensitive: true}
	clone := opt.Clone()
	if clone == opt || clone.CaseSensitive != opt.CaseSensitive {
		t.Errorf("Clone should copy options into a new value")
	}

	var nilOpt *Options
	if nilOpt.Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

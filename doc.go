// Package valuepath resolves string path expressions against arbitrary
// in-memory value graphs: structs, maps, slices and parsed JSON documents.
// It is a read-only navigation layer for callers that know a textual address
// ("Address.City", "Items[0].Name", `["my.key"].value`) and want the value
// at that location without writing shape-specific traversal code.
//
// The package uses an internal package for implementation details:
//
//   - internal: the concurrency-safe, size-bounded memo backing member and
//     mapping-capability lookups
//
// # Basic Usage
//
// Resolve against any Go value:
//
//	type User struct {
//		Name    string
//		Address *Address
//	}
//
//	city, err := valuepath.GetValue(user, "Address.City")
//	name, err := valuepath.GetValueAs[string](user, "name") // case-insensitive by default
//
// Non-throwing forms report success as a boolean instead of an error:
//
//	if v, ok := valuepath.TryGetValue(user, "Address.City"); ok { ... }
//
// Resolve against parsed JSON documents by handing in a gjson node:
//
//	doc := gjson.Parse(`{"items":[{"name":"first"}]}`)
//	name, err := valuepath.GetString(doc, "items[0].name")
//
// # Path Expressions
//
// Dots separate segments, brackets hold indices, and quoted brackets hold
// literal keys that may themselves contain dots or brackets:
//
//	Items[0].Name
//	["my.key"].value
//
// A segment's meaning is decided by the value it is applied to: "0" is a
// positional index against a sequence but a key against a mapping, and a
// mapping containing the key "0" always wins over positional interpretation.
//
// A null value encountered mid-chain stops resolution and yields an absent
// result rather than an error.
//
// # Concurrency
//
// All operations are safe for concurrent use. Member lookups on struct types
// are memoized in a process-wide, size-bounded cache; ClearCaches empties it.
package valuepath

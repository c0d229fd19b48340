//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// same as Field, applied to an object nested under parent
func NestedField(parent, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		child, ok := m[parent].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[parent] = child
		}
		Field(key, value)(child)
	}
}

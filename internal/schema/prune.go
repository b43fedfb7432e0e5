package schema

// PruneEmpty recursively removes empty values from a JSON tree: nil,
// empty strings, empty arrays, and objects whose members all pruned
// away. Pruning an already-pruned tree is a no-op.
func PruneEmpty(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			pruned := PruneEmpty(child)
			if isEmpty(pruned) {
				delete(v, key)
			} else {
				v[key] = pruned
			}
		}
		return v
	case []any:
		out := make([]any, 0, len(v))
		for _, child := range v {
			pruned := PruneEmpty(child)
			if !isEmpty(pruned) {
				out = append(out, pruned)
			}
		}
		return out
	default:
		return value
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

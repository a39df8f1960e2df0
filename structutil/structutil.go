// Package structutil provides small structural helpers for plain values:
// map merging, identity-deduplicated slice merging, and deep cloning.
package structutil

// MergeMaps folds the given maps left to right into a fresh map; later
// entries overwrite earlier ones. Nil maps are skipped.
// Complexity: O(total entries).
func MergeMaps(ms ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}

// MergeSlices concatenates the given slices while deduplicating by the
// identity value; the first occurrence of each identity wins. A nil
// identity function degrades to plain concatenation.
// Complexity: O(total elements).
func MergeSlices(lists [][]interface{}, identity func(interface{}) string) []interface{} {
	var out []interface{}
	if identity == nil {
		for _, list := range lists {
			out = append(out, list...)
		}

		return out
	}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			key := identity(v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// Clone deep-copies a value composed of plain maps (string keys), slices,
// and scalars. Values of any other kind are returned as-is; cyclic values
// are outside the contract.
// Complexity: O(size of the value).
func Clone(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(tv))
		for k, inner := range tv {
			out[k] = Clone(inner)
		}

		return out
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i, inner := range tv {
			out[i] = Clone(inner)
		}

		return out
	default:
		return v
	}
}

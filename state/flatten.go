package state

import "fmt"

// flatten traverses the extension tree depth-first, bucketing leaves by
// their effective precedence, deduplicating any extension value
// encountered more than once, and concatenating the four buckets in
// Override, Extend, Default, Fallback order. This ordered list is the
// canonical input to resolution.
func flatten(root Extension) ([]Extension, error) {
	var buckets [4][]Extension
	seen := map[Extension]bool{}

	var walk func(ext Extension, level Prec) error
	walk = func(ext Extension, level Prec) error {
		if ext == nil || seen[ext] {
			return nil
		}
		seen[ext] = true

		switch v := ext.(type) {
		case *listExt:
			for _, child := range v.items {
				if err := walk(child, level); err != nil {
					return err
				}
			}
		case *precExt:
			return walk(v.inner, v.level)
		case *staticLeaf, *providerLeaf:
			buckets[level] = append(buckets[level], ext)
		case *fieldLeaf:
			buckets[level] = append(buckets[level], ext)
			for _, att := range v.field.attached {
				if err := walk(att, level); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("state: unknown extension type %T", ext)
		}
		return nil
	}

	if err := walk(root, Default); err != nil {
		return nil, err
	}

	out := make([]Extension, 0, len(buckets[0])+len(buckets[1])+len(buckets[2])+len(buckets[3]))
	for _, lvl := range precOrder {
		out = append(out, buckets[lvl]...)
	}
	return out, nil
}

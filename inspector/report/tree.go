package report

// Field is one key of an ordered mapping.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered mapping. Values are scalars (string, *string, numbers,
// bool, nil), Fields, or []any.
type Fields []Field

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	for _, fl := range f {
		if fl.Key == key {
			return fl.Value, true
		}
	}
	return nil, false
}

// Prune returns a copy of v without empty leaves: nil, "", "0px", "null",
// zero numbers and false are dropped, as is any mapping or sequence left
// with nothing in it. The second result is false when v itself is empty.
func Prune(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *string:
		if t == nil {
			return nil, false
		}
		return Prune(*t)
	case string:
		switch t {
		case "", "0px", "null":
			return nil, false
		}
		return t, true
	case bool:
		return t, t
	case int:
		return t, t != 0
	case int64:
		return t, t != 0
	case float64:
		return t, t != 0
	case Fields:
		var out Fields
		for _, f := range t {
			if pv, ok := Prune(f.Value); ok {
				out = append(out, Field{Key: f.Key, Value: pv})
			}
		}
		return out, len(out) > 0
	case []any:
		var out []any
		for _, e := range t {
			if pv, ok := Prune(e); ok {
				out = append(out, pv)
			}
		}
		return out, len(out) > 0
	case []string:
		items := make([]any, len(t))
		for i, s := range t {
			items[i] = s
		}
		return Prune(items)
	default:
		return v, true
	}
}

// PruneFields prunes a mapping and always returns Fields (possibly nil).
func PruneFields(f Fields) Fields {
	pv, ok := Prune(f)
	if !ok {
		return nil
	}
	return pv.(Fields)
}

package tools

// Argument extraction from the decoded JSON-RPC arguments map. Absent
// or wrongly-typed optional values read as their zero form; pointer
// variants return nil so downstream query encoding can omit the key.

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argBool(args map[string]any, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

// argInt reads a JSON number. JSON decoding produces float64 for every
// number, so that is the only shape checked.
func argInt(args map[string]any, key string) *int {
	if v, ok := args[key].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

func argStringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

package llm

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\s*\}\}`)

// Compose replaces every {{path}} in template with the value found at the
// dotted path in state. Unresolved paths become "".
//
// Example:
//
//	template: "Hi {{user.name}}, you wrote: {{message.content.text}}"
//	state:    {"user": {"name": "Ann"}, "message": {"content": {"text": "hello"}}}
//	returns:  "Hi Ann, you wrote: hello"
func Compose(template string, state map[string]any) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		path := placeholder.FindStringSubmatch(match)[1]
		v, ok := Lookup(state, path)
		if !ok {
			return ""
		}
		return stringify(v)
	})
}

// Lookup resolves a dotted path through nested maps.
func Lookup(state map[string]any, path string) (any, bool) {
	var cur any = state
	for key := range strings.SplitSeq(path, ".") {
		switch m := cur.(type) {
		case map[string]any:
			v, ok := m[key]
			if !ok {
				return nil, false
			}
			cur = v
		case map[string]string:
			v, ok := m[key]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, "\n")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, "\n")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

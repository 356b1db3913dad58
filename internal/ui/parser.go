package ui

import (
	"strings"
)

// ParseCSS parses a small CSS subset: selectors .class or #id, optionally comma-separated,
// with blocks of "key: value;". No combinators, no @rules. Later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		rules, rest, ok := parseOneBlock(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

// parseOneBlock finds the next "selectors { ... }" and returns one rule per valid selector
// plus the rest of the input. Blocks with no usable selector are skipped.
func parseOneBlock(s string) ([]Rule, string, bool) {
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			return nil, "", false
		}
		close := findMatchingBrace(s, open)
		if close == -1 {
			return nil, "", false
		}
		props := parseDeclarations(s[open+1 : close])
		rest := strings.TrimSpace(s[close+1:])
		var rules []Rule
		for _, sel := range strings.Split(s[:open], ",") {
			sel = strings.TrimSpace(sel)
			if validSelector(sel) {
				rules = append(rules, Rule{Selector: sel, Props: props})
			}
		}
		if len(rules) > 0 {
			return rules, rest, true
		}
		s = rest
	}
}

func validSelector(sel string) bool {
	return len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel[1:], " >+~.#:")
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

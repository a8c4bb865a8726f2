package inspect

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidLocator is returned for locator strings that cannot be parsed or
// that carry no meaningful filter.
var ErrInvalidLocator = errors.New("invalid locator")

// Locator is a parsed element query in the RemoteSwingLibrary style:
//
//	text=Save, type=JButton, index=2
//
// Keys may use "=" or ":" and entries are separated by commas or semicolons.
// Values may be quoted. At least one of role, name/text, or type/class must
// be present for the locator to match anything.
type Locator struct {
	Name  string
	Text  string
	Type  string
	Class string
	Role  string
	Label string // accepted but not evaluated yet
	Title string // accepted but not evaluated yet

	Index    int
	HasIndex bool
}

var locatorKeyRe = regexp.MustCompile(`(?i)(name|text|type|class|role|label|title|index)\s*[:=]`)

// ParseLocator parses s into a Locator. An empty string, a string with no
// recognized keys, or a non-integer index yields ErrInvalidLocator.
func ParseLocator(s string) (*Locator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidLocator
	}

	matches := locatorKeyRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return nil, ErrInvalidLocator
	}

	loc := &Locator{}
	for i, m := range matches {
		key := strings.ToLower(s[m[2]:m[3]])
		start := m[1]
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		raw := strings.TrimSpace(s[start:end])
		raw = strings.Trim(raw, ",;")
		raw = strings.TrimSpace(raw)
		raw = unquote(raw)

		if key == "index" {
			idx, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: index %q", ErrInvalidLocator, raw)
			}
			loc.Index = idx
			loc.HasIndex = true
			continue
		}

		switch key {
		case "name":
			loc.Name = raw
		case "text":
			loc.Text = raw
		case "type":
			loc.Type = raw
		case "class":
			loc.Class = raw
		case "role":
			loc.Role = raw
		case "label":
			loc.Label = raw
		case "title":
			loc.Title = raw
		}
	}

	return loc, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// nameFilter returns the effective name/text filter (name wins over text).
func (l *Locator) nameFilter() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Text
}

// typeFilter returns the effective type/class filter (type wins over class).
func (l *Locator) typeFilter() string {
	if l.Type != "" {
		return l.Type
	}
	return l.Class
}

// Match filters nodes by the locator. Matching rules follow the viewer's
// search semantics:
//   - role compares case-insensitively for equality;
//   - name/text matches by case-insensitive prefix, or by glob when the
//     pattern contains any of "*?[]";
//   - type/class matches the role's Swing class by simple name, so both
//     "JButton" and "javax.swing.JButton" are accepted;
//   - a 1-based index selects one entry across the matches.
//
// A locator without at least one of role, name/text, or type/class returns
// ErrInvalidLocator.
func (l *Locator) Match(nodes []*Node) ([]*Node, error) {
	role := l.Role
	name := l.nameFilter()
	typ := l.typeFilter()

	if role == "" && name == "" && typ == "" {
		return nil, ErrInvalidLocator
	}

	var matches []*Node
	for _, n := range nodes {
		r := strings.TrimSpace(n.Info.Role)
		nm := strings.TrimSpace(n.Info.Name)

		if role != "" && !equalsFold(r, role) {
			continue
		}
		if name != "" && !matchText(nm, name) {
			continue
		}
		if typ != "" && !typeMatches(r, typ) {
			continue
		}
		matches = append(matches, n)
	}

	if l.HasIndex {
		if l.Index < 1 || l.Index > len(matches) {
			return nil, nil
		}
		return matches[l.Index-1 : l.Index], nil
	}

	return matches, nil
}

func equalsFold(value, pattern string) bool {
	return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(pattern))
}

// matchText applies glob matching when the pattern has wildcard characters,
// case-insensitive prefix matching otherwise.
func matchText(value, pattern string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" {
		return true
	}
	if strings.ContainsAny(p, "*?[]") {
		ok, err := path.Match(p, v)
		return err == nil && ok
	}
	return strings.HasPrefix(v, p)
}

// typeMatches compares the role's Swing class against a type pattern by
// simple class name, accepting fully qualified names.
func typeMatches(role, pattern string) bool {
	if pattern == "" {
		return true
	}
	parts := strings.Split(pattern, ".")
	simple := strings.TrimSpace(parts[len(parts)-1])
	return RoleToSwingType(role) == simple
}

// SynthesizeLocator builds the preferred locator for node: text= when the
// element has a name, then type=, falling back to role=; an index= part is
// appended when other elements in nodes collide on the same name and type.
func SynthesizeLocator(node *Node, nodes []*Node) string {
	role := strings.TrimSpace(node.Info.Role)
	name := strings.TrimSpace(node.Info.Name)
	swingType := RoleToSwingType(role)

	var matches []*Node
	if name != "" {
		for _, n := range nodes {
			nm := strings.TrimSpace(n.Info.Name)
			t := RoleToSwingType(n.Info.Role)
			if nm == name && (swingType == "" || t == swingType) {
				matches = append(matches, n)
			}
		}
	} else if swingType != "" {
		for _, n := range nodes {
			if RoleToSwingType(n.Info.Role) == swingType {
				matches = append(matches, n)
			}
		}
	}

	idx := 1
	for i, n := range matches {
		if n == node {
			idx = i + 1
			break
		}
	}

	var parts []string
	if name != "" {
		parts = append(parts, "text="+name)
	}
	if swingType != "" {
		parts = append(parts, "type="+swingType)
	}
	if len(parts) == 0 && role != "" {
		parts = append(parts, "role="+role)
	}
	if len(matches) > 1 {
		parts = append(parts, "index="+strconv.Itoa(idx))
	}

	return strings.Join(parts, ", ")
}

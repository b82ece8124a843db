package theme

import (
	"strings"
	"unicode"

	"themeplane/model"
)

// Variable is a single CSS custom property.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariableName converts a camelCase key to a custom property name:
// "textPrimary" becomes "--text-primary".
func VariableName(parts ...string) string {
	var b strings.Builder
	b.WriteString("-")
	for _, part := range parts {
		b.WriteByte('-')
		for i, r := range part {
			if unicode.IsUpper(r) {
				if i > 0 {
					b.WriteByte('-')
				}
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Variables lists the custom properties for t: one per color role, then
// font family, weight and transform per text role.
func Variables(t model.Theme) []Variable {
	vars := make([]Variable, 0, len(model.ColorKeys)+3*len(model.TextRoles))
	for _, key := range model.ColorKeys {
		v, _ := t.Colors.Get(key)
		vars = append(vars, Variable{Name: VariableName(key), Value: v})
	}
	for _, role := range model.TextRoles {
		st, ok := t.Typography[role]
		if !ok {
			continue
		}
		vars = append(vars,
			Variable{Name: VariableName(string(role), "fontFamily"), Value: string(st.FontFamily)},
			Variable{Name: VariableName(string(role), "fontWeight"), Value: string(st.FontWeight)},
			Variable{Name: VariableName(string(role), "textTransform"), Value: string(st.TextTransform)},
		)
	}
	return vars
}

// VariableMap returns vars keyed by name.
func VariableMap(vars []Variable) map[string]string {
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[v.Name] = v.Value
	}
	return out
}

var cssValueReplacer = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "")

// CSS renders vars as a :root rule.
func CSS(vars []Variable) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		b.WriteString("  ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(cssValueReplacer.Replace(v.Value))
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

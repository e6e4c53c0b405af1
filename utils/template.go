package utils

import (
	"html/template"
	"strings"

	"github.com/pkg/errors"
)

// TemplateFuncs are the helper functions available to every page template
var TemplateFuncs = template.FuncMap{
	"join": strings.Join,
	"initials": func(names ...string) string {
		var b strings.Builder
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name != "" {
				b.WriteString(strings.ToUpper(string([]rune(name)[0])))
			}
		}
		return b.String()
	},
}

// LoadTemplates parses every template matching the glob pattern into one set
func LoadTemplates(pattern string) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(TemplateFuncs).ParseGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse templates matching %s", pattern)
	}

	return tmpl, nil
}

package docgen

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const crlf = "\r\n"

// KebabCase converts a camelCase method name to its kebab-case anchor.
func KebabCase(name string) string {
	s := kebabWordBreak.ReplaceAllString(name, "${1}-${2}")
	s = kebabCaseChange.ReplaceAllString(s, "${1}-${2}")
	return cases.Lower(language.Und).String(s)
}

// RenderMarkdown writes the contents list followed by one table per
// document. Lines end in CRLF.
func RenderMarkdown(w io.Writer, docs []Document) error {
	var b strings.Builder

	b.WriteString("## Contents" + crlf)
	for _, d := range docs {
		b.WriteString(`* <a href="#` + d.Anchor() + `">` + d.Name + "</a>" + crlf)
	}

	for _, d := range docs {
		b.WriteString(crlf + "---" + crlf + crlf)
		b.WriteString(`<a name="` + d.Anchor() + `"/>` + crlf)
		b.WriteString(crlf)
		b.WriteString("| | " + d.Name + " |" + crlf)
		b.WriteString("| :--- | :--- |" + crlf)
		b.WriteString("| Description | " + d.Desc + " |" + crlf)

		b.WriteString("| Syntax | ")
		for _, s := range d.Syntax {
			b.WriteString("`" + s + "`<br>")
		}
		b.WriteString(" |" + crlf)

		if len(d.Params) > 0 {
			b.WriteString("| Parameters | ")
			for _, p := range d.Params {
				b.WriteString("**" + p.Name + "** - " + p.Type + ": " + p.Desc + "<br>")
			}
			b.WriteString(" |" + crlf)
		}

		b.WriteString("| Returns | " + d.Returns() + " |" + crlf)

		if len(d.References) > 0 {
			b.WriteString("| References | ")
			for _, r := range d.References {
				b.WriteString(r + "<br>")
			}
			b.WriteString(" |" + crlf)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Package docgen extracts reference documentation from the doc comments of
// the library's sources and renders it as markdown.
//
// A documented method looks like:
//
//	/**
//	 * Sets the stroke weight of the visualizer.
//	 * @param weight The stroke weight in pixels
//	 * @return The visualizer, for chaining
//	 * @see fill
//	 */
//	public OavpVisualizer strokeWeight(float weight) {
//
// The last line before ") {" is the declaration. Parameter names and types
// come from the declaration; the tags only contribute descriptions.
package docgen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	commentPattern  = regexp.MustCompile(`(?s)\*\*(.*?)\) \{`)
	decorationRun   = regexp.MustCompile(`[ *]+`)
	newlineRun      = regexp.MustCompile(`\n+`)
	kebabWordBreak  = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	kebabCaseChange = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Param is one method parameter.
type Param struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
	Desc string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// Document is the reference entry for one method name. Overloads share a
// Document and contribute one Syntax line each.
type Document struct {
	Name       string   `json:"name" yaml:"name"`
	Syntax     []string `json:"syntax" yaml:"syntax"`
	Desc       string   `json:"desc,omitempty" yaml:"desc,omitempty"`
	Params     []Param  `json:"params,omitempty" yaml:"params,omitempty"`
	ReturnType string   `json:"returnType" yaml:"returnType"`
	ReturnDesc string   `json:"returnDesc,omitempty" yaml:"returnDesc,omitempty"`
	References []string `json:"references,omitempty" yaml:"references,omitempty"`
}

// Anchor is the markdown anchor for the document.
func (d Document) Anchor() string {
	return KebabCase(d.Name)
}

// Returns is the rendered return cell: the declared type and the @return text.
func (d Document) Returns() string {
	return d.ReturnType + "<br>" + d.ReturnDesc
}

// ParamMismatchError reports a comment that documents more parameters than
// its declaration has.
type ParamMismatchError struct {
	Method     string
	Documented []string
	Arguments  []string
}

func (e *ParamMismatchError) Error() string {
	return fmt.Sprintf("parameter mismatch for method '%s': documented params %q, arguments %q",
		e.Method, e.Documented, e.Arguments)
}

// Comments returns the cleaned lines of every doc comment in src, one slice
// per comment, declaration line last.
func Comments(src string) [][]string {
	matches := commentPattern.FindAllStringSubmatch(src, -1)
	comments := make([][]string, 0, len(matches))
	for _, m := range matches {
		body := strings.TrimSpace(decorationRun.ReplaceAllString(m[1], " "))
		body = newlineRun.ReplaceAllString(body, "|")

		var lines []string
		for _, line := range strings.Split(body, "|") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		comments = append(comments, lines)
	}
	return comments
}

// Parse builds the documents for every doc comment in src, in source order.
// Comments whose last line is not a declaration are skipped.
func Parse(src string) ([]Document, error) {
	var docs []Document
	for _, comment := range Comments(src) {
		doc, ok, err := buildDocument(comment)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if n := len(docs); n > 0 && docs[n-1].Name == doc.Name {
			prev := &docs[n-1]
			prev.Syntax = append(prev.Syntax, doc.Syntax[0])
			prev.Params = doc.Params
			prev.References = doc.References
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

type documentedParam struct {
	name string
	desc string
}

func buildDocument(comment []string) (Document, bool, error) {
	var (
		doc         Document
		documented  []documentedParam
		desc        []string
		declaration string
	)

	for i, line := range comment {
		key := strings.Fields(line)[0]
		switch {
		case key == "@param":
			name, d, _ := strings.Cut(tagValue(line, "@param"), " ")
			documented = append(documented, documentedParam{name: name, desc: d})
		case key == "@return":
			doc.ReturnDesc = tagValue(line, "@return")
		case key == "@see":
			doc.References = append(doc.References, strings.TrimSpace(tagValue(line, "@see")))
		case key == "/" || strings.HasPrefix(key, "@"):
			continue
		case i == len(comment)-1:
			declaration = line
		default:
			desc = append(desc, line)
		}
	}

	if declaration == "" {
		return Document{}, false, nil
	}

	parts := strings.Split(declaration, "(")
	head := strings.Fields(parts[0])
	if len(head) == 0 {
		return Document{}, false, nil
	}
	argList := parts[len(parts)-1]

	doc.Name = head[len(head)-1]
	if len(head) > 1 {
		doc.ReturnType = head[1]
	}
	doc.Syntax = []string{doc.Name + "(" + argList + ")"}
	doc.Desc = strings.TrimSpace(strings.Join(desc, " "))

	args := strings.Split(argList, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	if len(documented) > len(args) {
		names := make([]string, 0, len(documented))
		for _, p := range documented {
			names = append(names, p.name)
		}
		return Document{}, false, &ParamMismatchError{Method: doc.Name, Documented: names, Arguments: args}
	}

	for i, p := range documented {
		fields := strings.Fields(args[i])
		param := Param{Desc: p.desc}
		if len(fields) > 0 {
			param.Type = fields[0]
			param.Name = fields[len(fields)-1]
		}
		doc.Params = append(doc.Params, param)
	}

	return doc, true, nil
}

// tagValue returns what follows "<tag> " on line.
func tagValue(line, tag string) string {
	if len(line) <= len(tag)+1 {
		return ""
	}
	return line[len(tag)+1:]
}

package querygen_service

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sheetsql/sheetsql/domain/app"
)

const sqlGeneratorSystemPrompt = "You are a READ ONLY SQL SELECT statement generator for the schema below ONLY. " +
	"Generate only queries that read data, never UPDATE, INSERT, DELETE or any statement that changes it. " +
	"Respond with a JSON object {\"sql\": \"...\", \"explanation\": \"...\"} and nothing else."

const generationPromptTemplate = `Schema:
{{.Schema}}
{{- if .Rules}}

Business rules:
{{.Rules}}
{{- end}}

Question: {{.Question}}`

var generationTmpl = template.Must(template.New("generate").Parse(generationPromptTemplate))

func buildGenerationPrompt(kb *app.KnowledgeBase, question string) (string, error) {
	var out bytes.Buffer
	err := generationTmpl.Execute(&out, map[string]string{
		"Schema":   renderSchema(kb.Tables),
		"Rules":    renderRules(kb.BusinessRules),
		"Question": question,
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// renderSchema writes the knowledge-base tables as DDL-like text, which
// models follow more reliably than nested JSON.
func renderSchema(tables []app.TableDefinition) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "CREATE TABLE %s (", t.Name)
		for j, c := range t.Columns {
			if j > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "\n  %s %s", c.Name, c.Type)
			if c.Description != "" {
				fmt.Fprintf(&b, " -- %s", c.Description)
			}
		}
		b.WriteString("\n);")
		if t.Description != "" {
			fmt.Fprintf(&b, " -- %s", t.Description)
		}
	}
	return b.String()
}

func renderRules(rules []string) string {
	if len(rules) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s", r)
	}
	return b.String()
}

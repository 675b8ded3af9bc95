package knowledge_service

import (
	"fmt"
	"strings"

	"github.com/sheetsql/sheetsql/domain/app"
)

const extractionSystemPrompt = "You analyze spreadsheet data and build a knowledge base for SQL query generation. " +
	"Derive table definitions with SQL column types from the sheet contents, state the business rules the data implies, " +
	"and propose test scenarios a query against this data should satisfy. " +
	"Return ONLY the JSON required by the schema."

// buildExtractionPrompt lays the sheets out as name + range + tab/newline
// text. Cell values inside a row are tab separated; empty cells carry no
// placeholder, so column position is approximate and the model is told so.
func buildExtractionPrompt(sheets []*app.SerializedSheet) string {
	var b strings.Builder
	b.WriteString("Build the knowledge base from the following sheets. ")
	b.WriteString("Cells are tab separated, rows are newline separated, empty cells are omitted.\n")

	for _, s := range sheets {
		fmt.Fprintf(&b, "\n--- Sheet %q (%s) ---\n", s.Name, s.Range)
		b.WriteString(s.Text)
	}

	return b.String()
}

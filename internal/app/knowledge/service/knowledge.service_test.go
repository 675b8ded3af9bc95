package knowledge_service

import (
	"strings"
	"testing"

	"github.com/sheetsql/sheetsql/domain/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKnowledgeJSON = `{
	"tables": [{
		"name": "orders",
		"description": "One row per customer order",
		"columns": [
			{"name": "id", "type": "INTEGER", "description": "Order id"},
			{"name": "total", "type": "DECIMAL", "description": "Order total"}
		]
	}],
	"business_rules": ["total is never negative"],
	"test_scenarios": [{
		"name": "totals add up",
		"description": "Sum of totals matches the control row",
		"expected_sql": "SELECT SUM(total) FROM orders;"
	}]
}`

func TestDecodeKnowledgePlainJSON(t *testing.T) {
	kb, err := decodeKnowledge(sampleKnowledgeJSON)
	require.NoError(t, err)

	require.Len(t, kb.Tables, 1)
	assert.Equal(t, "orders", kb.Tables[0].Name)
	require.Len(t, kb.Tables[0].Columns, 2)
	assert.Equal(t, []string{"total is never negative"}, kb.BusinessRules)
	require.Len(t, kb.TestScenarios, 1)
	assert.Equal(t, "SELECT SUM(total) FROM orders;", kb.TestScenarios[0].ExpectedSQL)
}

func TestDecodeKnowledgeFencedJSON(t *testing.T) {
	kb, err := decodeKnowledge("Here is the knowledge base:\n```json\n" + sampleKnowledgeJSON + "\n```\nHope it helps!")
	require.NoError(t, err)
	require.Len(t, kb.Tables, 1)
	assert.Equal(t, "orders", kb.Tables[0].Name)
}

func TestDecodeKnowledgeRejectsProse(t *testing.T) {
	_, err := decodeKnowledge("I could not find any tables in the sheets.")
	assert.Error(t, err)
}

func TestBuildExtractionPromptIncludesEverySheet(t *testing.T) {
	sheets := []*app.SerializedSheet{
		{Name: "Orders", Range: "A1:C10", Text: "id\ttotal\t\n"},
		{Name: "Refunds", Range: "A1:B4", Text: "id\tamount\t\n"},
	}

	prompt := buildExtractionPrompt(sheets)
	assert.Contains(t, prompt, `Sheet "Orders" (A1:C10)`)
	assert.Contains(t, prompt, `Sheet "Refunds" (A1:B4)`)
	assert.Contains(t, prompt, "id\ttotal\t\n")
	assert.True(t, strings.Contains(prompt, "empty cells are omitted"))
}

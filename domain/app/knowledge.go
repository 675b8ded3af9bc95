package app

import (
	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

type ColumnDefinition struct {
	Name        string `json:"name" jsonschema_description:"Column name as it should appear in SQL"`
	Type        string `json:"type" jsonschema_description:"SQL data type, e.g. INTEGER, VARCHAR, DATE"`
	Description string `json:"description" jsonschema_description:"Short explanation of what the column holds"`
}

type TableDefinition struct {
	Name        string             `json:"name" jsonschema_description:"Table name derived from the sheet data"`
	Description string             `json:"description" jsonschema_description:"What one row of the table represents"`
	Columns     []ColumnDefinition `json:"columns" jsonschema_description:"Column definitions in sheet order"`
}

type TestScenario struct {
	Name        string `json:"name" jsonschema_description:"Short scenario title"`
	Description string `json:"description" jsonschema_description:"What the scenario verifies"`
	ExpectedSQL string `json:"expected_sql,omitempty" jsonschema_description:"SQL query that would exercise the scenario, if obvious"`
}

// KnowledgeBase is the structured view of a workbook the model extracts:
// table shapes, the business rules implied by the data, and test scenarios
// worth running against generated queries.
type KnowledgeBase struct {
	Tables        []TableDefinition `json:"tables" jsonschema_description:"Table definitions found in the sheets"`
	BusinessRules []string          `json:"business_rules" jsonschema_description:"Business rules implied by the data"`
	TestScenarios []TestScenario    `json:"test_scenarios" jsonschema_description:"Suggested test scenarios"`
}

type KnowledgeService interface {
	Extract(ctx nova_ctx.Ctx, sheets []*SerializedSheet) (*KnowledgeBase, errs.Error)
}

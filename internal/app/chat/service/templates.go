package chat_service

// QueryTemplate is one canned SQL answer. The table is static configuration:
// matching is a case-insensitive keyword containment check, first hit wins.
type QueryTemplate struct {
	ID       string
	Title    string
	Keywords []string
	SQL      string
	Answer   string
}

func BuiltinTemplates() []QueryTemplate {
	return builtinTemplates
}

var builtinTemplates = []QueryTemplate{
	{
		ID:       "row-count",
		Title:    "Count rows",
		Keywords: []string{"count", "how many", "number of rows"},
		SQL:      "SELECT COUNT(*) AS row_count\nFROM {table};",
		Answer:   "To count the rows in a table, use COUNT(*).",
	},
	{
		ID:       "select-all",
		Title:    "Preview a table",
		Keywords: []string{"show all", "preview", "first rows", "select all"},
		SQL:      "SELECT *\nFROM {table}\nLIMIT 100;",
		Answer:   "A LIMIT keeps the preview cheap on large tables.",
	},
	{
		ID:       "top-n",
		Title:    "Top N by a column",
		Keywords: []string{"top", "highest", "largest", "most expensive"},
		SQL:      "SELECT *\nFROM {table}\nORDER BY {column} DESC\nLIMIT 10;",
		Answer:   "Order descending by the measure column and cut with LIMIT.",
	},
	{
		ID:       "group-by",
		Title:    "Aggregate by group",
		Keywords: []string{"group", "per category", "by category", "aggregate", "sum by"},
		SQL:      "SELECT {group_column}, SUM({value_column}) AS total\nFROM {table}\nGROUP BY {group_column}\nORDER BY total DESC;",
		Answer:   "GROUP BY collapses rows per group; aggregate the value column.",
	},
	{
		ID:       "duplicates",
		Title:    "Find duplicates",
		Keywords: []string{"duplicate", "duplicates", "repeated"},
		SQL:      "SELECT {column}, COUNT(*) AS occurrences\nFROM {table}\nGROUP BY {column}\nHAVING COUNT(*) > 1;",
		Answer:   "Group on the candidate key and keep groups larger than one.",
	},
	{
		ID:       "null-check",
		Title:    "Find missing values",
		Keywords: []string{"null", "missing", "empty values", "blank"},
		SQL:      "SELECT *\nFROM {table}\nWHERE {column} IS NULL;",
		Answer:   "IS NULL filters the rows where the column has no value.",
	},
	{
		ID:       "date-range",
		Title:    "Filter by date range",
		Keywords: []string{"between dates", "date range", "last month", "since"},
		SQL:      "SELECT *\nFROM {table}\nWHERE {date_column} BETWEEN :start_date AND :end_date;",
		Answer:   "BETWEEN is inclusive on both ends of the range.",
	},
	{
		ID:       "join",
		Title:    "Join two tables",
		Keywords: []string{"join", "combine tables", "relate"},
		SQL:      "SELECT a.*, b.*\nFROM {table_a} a\nJOIN {table_b} b ON a.{key} = b.{key};",
		Answer:   "An inner JOIN keeps only rows with a match on the key.",
	},
	{
		ID:       "distinct",
		Title:    "Distinct values",
		Keywords: []string{"distinct", "unique", "different values"},
		SQL:      "SELECT DISTINCT {column}\nFROM {table}\nORDER BY {column};",
		Answer:   "DISTINCT removes duplicate values from the projection.",
	},
	{
		ID:       "average",
		Title:    "Average of a column",
		Keywords: []string{"average", "avg", "mean"},
		SQL:      "SELECT AVG({column}) AS average_value\nFROM {table};",
		Answer:   "AVG ignores NULLs when computing the mean.",
	},
}

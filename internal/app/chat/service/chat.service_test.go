package chat_service

import (
	"log/slog"
	"testing"

	"github.com/sheetsql/sheetsql/domain/app"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeywordOnlyService() *ChatService {
	return New(nil, slog.Default())
}

func TestReplyMatchesKeywords(t *testing.T) {
	svc := newKeywordOnlyService()

	testCases := []struct {
		name     string
		message  string
		template string
	}{
		{"count phrasing", "how many orders do we have?", "row-count"},
		{"count keyword", "give me a count of products", "row-count"},
		{"top n", "what are the top sellers", "top-n"},
		{"duplicates", "find duplicate SKUs please", "duplicates"},
		{"nulls", "which rows have missing prices", "null-check"},
		{"join", "how do I join orders with customers", "join"},
		{"distinct", "list the unique categories", "distinct"},
		{"average", "what's the average price", "average"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := svc.Reply(nova_ctx.New(), tc.message)
			require.Nil(t, err)
			assert.Equal(t, app.ChatMatchKeyword, reply.Match)
			assert.Equal(t, tc.template, reply.Template)
			assert.NotEmpty(t, reply.SQL)
			assert.NotEmpty(t, reply.Answer)
		})
	}
}

func TestReplyIsCaseInsensitive(t *testing.T) {
	svc := newKeywordOnlyService()

	reply, err := svc.Reply(nova_ctx.New(), "HOW MANY rows?")
	require.Nil(t, err)
	assert.Equal(t, "row-count", reply.Template)
}

func TestReplyFirstTemplateWins(t *testing.T) {
	svc := newKeywordOnlyService()

	// "count" (row-count) appears before "duplicate" in the template table.
	reply, err := svc.Reply(nova_ctx.New(), "count the duplicate rows")
	require.Nil(t, err)
	assert.Equal(t, "row-count", reply.Template)
}

func TestReplyNoMatchFallback(t *testing.T) {
	svc := newKeywordOnlyService()

	reply, err := svc.Reply(nova_ctx.New(), "tell me a story about databases")
	require.Nil(t, err)
	assert.Equal(t, app.ChatMatchNone, reply.Match)
	assert.Empty(t, reply.SQL)
	assert.NotEmpty(t, reply.Answer)
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	svc := newKeywordOnlyService()

	_, err := svc.Reply(nova_ctx.New(), "   ")
	assert.NotNil(t, err)
}

func TestBuiltinTemplatesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, tpl := range BuiltinTemplates() {
		assert.NotEmpty(t, tpl.ID)
		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true
		assert.NotEmpty(t, tpl.Keywords, "template %s", tpl.ID)
		assert.NotEmpty(t, tpl.SQL, "template %s", tpl.ID)
	}
}

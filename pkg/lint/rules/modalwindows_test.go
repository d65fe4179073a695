package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/config"
)

func TestModalWindowsGlobalCall(t *testing.T) {
	t.Parallel()

	source := `Procedure Ask()
	DoQueryBox("Post the document?", Mode);
EndProcedure
`
	diags := lintSource(t, NewModalWindowsRule(), config.NewConfig(), "Posting.bsl", source)

	require.Len(t, diags, 1)
	assert.Equal(t, "BSL003", diags[0].RuleID)
	assert.Contains(t, diags[0].Message, "DoQueryBox")
	assert.Contains(t, diags[0].Suggestion, "ShowQueryBox")
	assert.Equal(t, 2, diags[0].StartLine)
}

func TestModalWindowsRussianCall(t *testing.T) {
	t.Parallel()

	source := `Процедура Спросить()
	ОткрытьФормуМодально("Документ.Заказ.Форма");
КонецПроцедуры
`
	diags := lintSource(t, NewModalWindowsRule(), config.NewConfig(), "Проведение.bsl", source)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Suggestion, "ОткрытьФорму")
}

func TestModalWindowsMethodCallNotFlagged(t *testing.T) {
	t.Parallel()

	// A method with a matching name on a receiver is not the global method.
	source := `Procedure Ask()
	Helper.DoQueryBox("text");
EndProcedure
`
	diags := lintSource(t, NewModalWindowsRule(), config.NewConfig(), "Posting.bsl", source)
	assert.Empty(t, diags)
}

func TestModalWindowsAsyncCounterpartNotFlagged(t *testing.T) {
	t.Parallel()

	source := `Procedure Ask()
	ShowQueryBox(Handler, "Post the document?", Mode);
EndProcedure
`
	diags := lintSource(t, NewModalWindowsRule(), config.NewConfig(), "Posting.bsl", source)
	assert.Empty(t, diags)
}

func TestModalWindowsSeverity(t *testing.T) {
	t.Parallel()

	source := `Procedure Ask()
	PutFile(Address);
EndProcedure
`
	diags := lintSource(t, NewModalWindowsRule(), config.NewConfig(), "Files.bsl", source)

	require.Len(t, diags, 1)
	assert.Equal(t, config.SeverityMajor, diags[0].Severity)
	assert.Contains(t, diags[0].Suggestion, "BeginPutFile")
}

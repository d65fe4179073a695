package wordcheck

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "Handler", []string{"Handler"}},
		{"two words", "HandlerModule", []string{"Handler", "Module"}},
		{"acronym prefix", "ASFRules", []string{"ASF", "Rules"}},
		{"acronym middle", "ParseHTTPResponse", []string{"Parse", "HTTP", "Response"}},
		{"digits split", "Table2Row", []string{"Table", "2", "Row"}},
		{"underscored", "do_work", []string{"do", "work"}},
		{"cyrillic", "ОбщийМодуль", []string{"Общий", "Модуль"}},
		{"lower start", "handlerModule", []string{"handler", "Module"}},
		{"empty", "", nil},
		{"punctuation only", "___", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitCamelCase(tt.input))
		})
	}
}

func TestIsFormatString(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFormatString("ЧЦ=10; ЧДЦ=2"))
	assert.True(t, IsFormatString("nd=10"))
	assert.True(t, IsFormatString("L=en_US"))
	assert.False(t, IsFormatString("PlainIdentifier"))
	assert.False(t, IsFormatString(""))
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Fold("THE"), Fold("the"))
	assert.Equal(t, Fold("Модуль"), Fold("МОДУЛЬ"))
	assert.NotEqual(t, Fold("module"), Fold("modul"))
}

func TestFoldConcurrent(t *testing.T) {
	t.Parallel()

	// Fold is called from concurrently analyzed modules; run it across
	// goroutines so the race detector covers that path.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "модуль", Fold("МОДУЛЬ"))
				assert.Equal(t, "handler", Fold("Handler"))
			}
		}()
	}
	wg.Wait()
}

package bsl

import "strings"

// BSL keywords are bilingual: every keyword has a Russian and an English
// spelling, both case-insensitive. Keywords are canonicalized to the
// lowercase English form.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywords = map[string]string{
	"procedure": "procedure", "процедура": "procedure",
	"endprocedure": "endprocedure", "конецпроцедуры": "endprocedure",
	"function": "function", "функция": "function",
	"endfunction": "endfunction", "конецфункции": "endfunction",
	"if": "if", "если": "if",
	"then": "then", "тогда": "then",
	"elsif": "elsif", "иначеесли": "elsif",
	"else": "else", "иначе": "else",
	"endif": "endif", "конецесли": "endif",
	"while": "while", "пока": "while",
	"do": "do", "цикл": "do",
	"enddo": "enddo", "конеццикла": "enddo",
	"for": "for", "для": "for",
	"each": "each", "каждого": "each",
	"in": "in", "из": "in",
	"to": "to", "по": "to",
	"return": "return", "возврат": "return",
	"var": "var", "перем": "var",
	"export": "export", "экспорт": "export",
	"val": "val", "знач": "val",
	"new": "new", "новый": "new",
	"and": "and", "и": "and",
	"or": "or", "или": "or",
	"not": "not", "не": "not",
	"true": "true", "истина": "true",
	"false": "false", "ложь": "false",
	"undefined": "undefined", "неопределено": "undefined",
	"null": "null",
	"try":  "try", "попытка": "try",
	"except": "except", "исключение": "except",
	"endtry": "endtry", "конецпопытки": "endtry",
	"raise": "raise", "вызватьисключение": "raise",
	"break": "break", "прервать": "break",
	"continue": "continue", "продолжить": "continue",
	"goto": "goto", "перейти": "goto",
}

// CanonicalKeyword returns the canonical lowercase English form of a keyword
// and true, or ("", false) when the text is not a keyword.
func CanonicalKeyword(text string) (string, bool) {
	kw, ok := keywords[strings.ToLower(text)]
	return kw, ok
}

// IsKeyword reports whether text is a BSL keyword in either language.
func IsKeyword(text string) bool {
	_, ok := CanonicalKeyword(text)
	return ok
}

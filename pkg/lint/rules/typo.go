package rules

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bsltools/bsllint/internal/logging"
	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
	"github.com/bsltools/bsllint/pkg/wordcheck"
)

// Default option values for the typo rule.
const (
	defaultMinWordLength = 3

	// minWordLengthFloor is the hard lower bound for minWordLength. Shorter
	// words are mostly abbreviations and produce noise.
	minWordLengthFloor = 3

	// checkerPoolSize bounds the number of concurrently live checkers.
	checkerPoolSize = 4

	// checkoutWait bounds how long a module waits for a free checker before
	// skipping the spell check for its unseen words.
	checkoutWait = 10 * time.Second
)

// typoEnv holds the shared per-language checking state: the checker pool,
// the word memo, and suggestions for words confirmed as misspelled. State is
// shared across modules and runs within the process, mirroring how checker
// construction cost is amortized.
type typoEnv struct {
	pool *wordcheck.Pool
	memo *wordcheck.Memo

	mu          sync.Mutex
	suggestions map[string]string
}

//nolint:gochecknoglobals // Checker state is process-wide on purpose.
var (
	typoEnvsMu sync.Mutex
	typoEnvs   = make(map[string]*typoEnv)
)

// typoEnvFor returns the shared environment for a language, creating it on
// first use. Returns nil when the language has no built-in lexicon.
func typoEnvFor(language string) *typoEnv {
	typoEnvsMu.Lock()
	defer typoEnvsMu.Unlock()

	if env, ok := typoEnvs[language]; ok {
		return env
	}

	lexicon := wordcheck.Lexicon(language)
	if lexicon == nil {
		return nil
	}

	env := &typoEnv{
		pool: wordcheck.NewPool(checkerPoolSize, func() wordcheck.Checker {
			return wordcheck.NewDictionary(lexicon)
		}),
		memo:        wordcheck.NewMemo(),
		suggestions: make(map[string]string),
	}
	typoEnvs[language] = env
	return env
}

// resetTypoEnvs drops all shared checker state. Test hook.
func resetTypoEnvs() {
	typoEnvsMu.Lock()
	defer typoEnvsMu.Unlock()
	typoEnvs = make(map[string]*typoEnv)
}

// LoadSpellCache merges a persisted word memo for the given language.
// Missing cache files are not an error on first runs.
func LoadSpellCache(language, path string) error {
	env := typoEnvFor(language)
	if env == nil {
		return fmt.Errorf("no lexicon for language %q", language)
	}
	return env.memo.LoadFile(path)
}

// SaveSpellCache persists the word memo for the given language.
func SaveSpellCache(language, path string) error {
	env := typoEnvFor(language)
	if env == nil {
		return fmt.Errorf("no lexicon for language %q", language)
	}
	return env.memo.SaveFile(path)
}

// TypoRule flags identifiers and string literals containing words that the
// language checker considers misspelled. Checked words are memoized per
// language, so each distinct word costs at most one checker call per
// process.
type TypoRule struct {
	lint.BaseRule

	minWordLength int
	ignore        map[string]struct{}
	language      string
}

// NewTypoRule creates the rule with default options.
func NewTypoRule() *TypoRule {
	r := &TypoRule{
		BaseRule: lint.NewBaseRule(
			"BSL004",
			"typo",
			"Identifiers and strings should not contain misspelled words",
			[]string{"badpractice"},
		),
		minWordLength: defaultMinWordLength,
		ignore:        make(map[string]struct{}),
	}
	return r
}

// Options describes the configurable options.
func (r *TypoRule) Options() []lint.OptionSpec {
	return []lint.OptionSpec{
		{
			Name:        "minWordLength",
			Type:        lint.OptionInt,
			Default:     defaultMinWordLength,
			Description: "Minimum word length to check, floor 3",
		},
		{
			Name:        "wordsToIgnore",
			Type:        lint.OptionString,
			Default:     "",
			Description: "Comma-separated words to skip",
		},
		{
			Name:        "language",
			Type:        lint.OptionString,
			Default:     "",
			Description: "Override the configured check language",
		},
	}
}

// Configure applies and validates options.
func (r *TypoRule) Configure(options map[string]any) error {
	decoded, err := lint.DecodeOptions(r.ID(), r.Options(), options)
	if err != nil {
		return err
	}

	r.minWordLength = decoded["minWordLength"].(int)
	if r.minWordLength < minWordLengthFloor {
		r.minWordLength = minWordLengthFloor
	}

	r.ignore = make(map[string]struct{})
	for _, w := range strings.Split(decoded["wordsToIgnore"].(string), ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			r.ignore[wordcheck.Fold(w)] = struct{}{}
		}
	}

	r.language = decoded["language"].(string)
	return nil
}

// DefaultEnabled keeps the rule opt-in: it reaches out to a checker pool
// and can be noisy on codebases with domain-specific vocabulary.
func (r *TypoRule) DefaultEnabled() bool {
	return false
}

// DefaultSeverity marks typos as info-level issues.
func (r *TypoRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Apply checks all identifiers and string literals of the module.
func (r *TypoRule) Apply(ctx *lint.RuleContext) error {
	language := r.language
	if language == "" && ctx.Config != nil {
		language = string(ctx.Config.Language)
	}

	env := typoEnvFor(language)
	if env == nil {
		logging.FromContext(ctx.Ctx).Warn("no lexicon for language, skipping typo check",
			logging.FieldLanguage, language)
		return nil
	}

	tokens := r.collectTokens(ctx.Unit)
	if len(tokens) == 0 {
		return nil
	}

	unseen := r.collectUnseen(env, tokens)
	if len(unseen) > 0 {
		r.checkBatch(ctx, env, unseen)
	}

	for _, tok := range tokens {
		r.reportToken(ctx, env, tok)
	}
	return nil
}

// checkedToken is one identifier or string literal with its candidate words.
type checkedToken struct {
	token bslast.Token
	words []string
}

// collectTokens gathers the tokens worth checking and their words.
func (r *TypoRule) collectTokens(unit *bslast.Unit) []checkedToken {
	var out []checkedToken
	for _, tok := range unit.Tokens {
		switch tok.Kind {
		case bslast.TokIdentifier, bslast.TokString:
		default:
			continue
		}

		text := string(tok.Text(unit.Content))
		if tok.Kind == bslast.TokString {
			text = strings.Trim(text, `"`)
			// Format strings look like prose but are parameter lists.
			if wordcheck.IsFormatString(text) {
				continue
			}
		}

		words := r.candidateWords(text)
		if len(words) > 0 {
			out = append(out, checkedToken{token: tok, words: words})
		}
	}
	return out
}

// candidateWords splits text and filters out words too short, ignored, or
// without letters.
func (r *TypoRule) candidateWords(text string) []string {
	var words []string
	for _, word := range wordcheck.SplitCamelCase(text) {
		if utf8.RuneCountInString(word) < r.minWordLength {
			continue
		}
		if !strings.ContainsFunc(word, unicode.IsLetter) {
			continue
		}
		if _, ok := r.ignore[wordcheck.Fold(word)]; ok {
			continue
		}
		words = append(words, word)
	}
	return words
}

// collectUnseen returns the folded words with no memoized result yet, in
// first-seen order.
func (r *TypoRule) collectUnseen(env *typoEnv, tokens []checkedToken) []string {
	var unseen []string
	seen := make(map[string]struct{})
	for _, ct := range tokens {
		for _, word := range ct.words {
			folded := wordcheck.Fold(word)
			if _, ok := seen[folded]; ok {
				continue
			}
			seen[folded] = struct{}{}
			if _, ok := env.memo.Get(folded); !ok {
				unseen = append(unseen, folded)
			}
		}
	}
	return unseen
}

// checkBatch sends all unseen words to a pooled checker in one call and
// memoizes the outcome. On checker failure or checkout timeout the words
// stay unconfirmed and will be retried on the next module.
func (r *TypoRule) checkBatch(ctx *lint.RuleContext, env *typoEnv, unseen []string) {
	checker, err := env.pool.CheckoutTimeout(ctx.Ctx, checkoutWait)
	if err != nil {
		logging.FromContext(ctx.Ctx).Warn("word checker unavailable, skipping batch",
			logging.FieldError, err,
			logging.FieldWords, len(unseen))
		return
	}
	defer env.pool.Checkin(checker)

	// Build the batch text and remember where each word starts so matches
	// can be mapped back.
	var batch strings.Builder
	wordAt := make(map[int]string, len(unseen))
	for i, word := range unseen {
		if i > 0 {
			batch.WriteByte(' ')
		}
		wordAt[batch.Len()] = word
		batch.WriteString(word)
	}

	matches, err := checker.Check(batch.String())
	if err != nil {
		logging.FromContext(ctx.Ctx).Error("word check failed",
			logging.FieldError, err)
		return
	}

	misspelled := make(map[string]struct{})
	for _, match := range matches {
		// A match without replacements carries no usable signal.
		if len(match.Replacements) == 0 {
			continue
		}
		word, ok := wordAt[match.From]
		if !ok {
			continue
		}
		misspelled[word] = struct{}{}
		env.memo.SetIfAbsent(word, true)

		env.mu.Lock()
		if _, ok := env.suggestions[word]; !ok {
			env.suggestions[word] = match.Replacements[0]
		}
		env.mu.Unlock()
	}

	for _, word := range unseen {
		if _, ok := misspelled[word]; !ok {
			env.memo.SetIfAbsent(word, false)
		}
	}
}

// reportToken fires at most one diagnostic per token, on the first word the
// memo marks as misspelled. A token flagged once is never flagged again, no
// matter how many of its words are erroneous.
func (r *TypoRule) reportToken(ctx *lint.RuleContext, env *typoEnv, ct checkedToken) {
	for _, word := range ct.words {
		folded := wordcheck.Fold(word)

		bad, ok := env.memo.Get(folded)
		if !ok || !bad {
			continue
		}

		d := lint.Diagnostic{
			Message: fmt.Sprintf("The word %q appears to be misspelled", word),
		}
		env.mu.Lock()
		if suggestion, ok := env.suggestions[folded]; ok {
			d.Suggestion = fmt.Sprintf("Did you mean %q?", suggestion)
		}
		env.mu.Unlock()

		pos := ctx.Unit.TokenPosition(ct.token)
		d.StartLine = pos.StartLine
		d.StartColumn = pos.StartColumn
		d.EndLine = pos.EndLine
		d.EndColumn = pos.EndColumn

		ctx.Report(d)
		return
	}
}

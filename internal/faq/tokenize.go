package faq

import (
	"strings"
	"unicode"
)

// stopTokens are function words excluded from scoring. ASCII entries cover
// English glue words; the kana entries cover common Japanese particles and
// polite suffixes that would otherwise dominate overlap scores.
var stopTokens = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"is": true, "are": true, "to": true, "of": true, "in": true,
	"for": true, "on": true, "at": true, "what": true, "how": true,

	"の": true, "は": true, "が": true, "を": true, "に": true,
	"で": true, "と": true, "も": true, "や": true, "か": true,
	"です": true, "ます": true, "して": true, "すか": true,
	"さい": true, "ください": true, "ですか": true,
}

// Tokenize splits text into scoring units: lowercased ASCII word runs plus
// character bigrams over contiguous Japanese script runs. Japanese has no
// word boundaries, so bigrams stand in for words; single-rune runs are kept
// as-is.
func Tokenize(text string) []string {
	var tokens []string
	var ascii strings.Builder
	var run []rune

	flushASCII := func() {
		if ascii.Len() == 0 {
			return
		}
		tok := strings.ToLower(ascii.String())
		ascii.Reset()
		if len(tok) < 2 || stopTokens[tok] {
			return
		}
		tokens = append(tokens, tok)
	}

	flushRun := func() {
		if len(run) == 0 {
			return
		}
		if len(run) == 1 {
			tok := string(run)
			if !stopTokens[tok] {
				tokens = append(tokens, tok)
			}
		}
		for i := 0; i+1 < len(run); i++ {
			tok := string(run[i : i+2])
			if stopTokens[tok] {
				continue
			}
			tokens = append(tokens, tok)
		}
		run = run[:0]
	}

	for _, r := range text {
		switch {
		case r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			flushRun()
			ascii.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushASCII()
			run = append(run, r)
		default:
			flushASCII()
			flushRun()
		}
	}
	flushASCII()
	flushRun()

	return tokens
}

// tokenSet returns the distinct tokens of text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}

package generator

import "strings"

// Strategy selects how answers are routed into document buckets.
//
// The keyword strategy classifies by case-insensitive substring match
// against question text and section title (with a few per-document
// section predicates); the range strategy classifies purely by fixed
// section-number ranges. The two produce materially different documents
// from the same input, so the choice is explicit configuration, never
// a silent merge. Keyword is the canonical default.
type Strategy string

const (
	StrategyKeyword Strategy = "keyword"
	StrategyRange   Strategy = "range"
)

// ParseStrategy maps a config value to a Strategy, defaulting to keyword.
func ParseStrategy(value string) Strategy {
	if Strategy(strings.ToLower(value)) == StrategyRange {
		return StrategyRange
	}
	return StrategyKeyword
}

// matcher is one classification predicate over a single answer.
type matcher func(AnswerContext) bool

// sectionBetween matches answers whose section number falls in [lo, hi].
func sectionBetween(lo, hi int) matcher {
	return func(a AnswerContext) bool {
		return a.SectionNumber >= lo && a.SectionNumber <= hi
	}
}

// pick matches exactly one (section, question) slot.
func pick(sectionNumber, questionNumber int) matcher {
	return func(a AnswerContext) bool {
		return a.SectionNumber == sectionNumber && a.QuestionNumber == questionNumber
	}
}

// keywords matches when any term appears in the question text or the
// section title, case-insensitively. An answer may match the keyword
// sets of several documents; documents are independent views, not a
// partition, so no deduplication happens across them.
func keywords(terms ...string) matcher {
	return func(a AnswerContext) bool {
		question := strings.ToLower(a.QuestionText)
		title := strings.ToLower(a.SectionTitle)
		for _, term := range terms {
			if strings.Contains(question, term) || strings.Contains(title, term) {
				return true
			}
		}
		return false
	}
}

// titleKeywords matches on the section title only.
func titleKeywords(terms ...string) matcher {
	return func(a AnswerContext) bool {
		title := strings.ToLower(a.SectionTitle)
		for _, term := range terms {
			if strings.Contains(title, term) {
				return true
			}
		}
		return false
	}
}

// anyOf matches when at least one of the given matchers does.
func anyOf(matchers ...matcher) matcher {
	return func(a AnswerContext) bool {
		for _, m := range matchers {
			if m(a) {
				return true
			}
		}
		return false
	}
}

// selectAnswers filters answers through a matcher, preserving storage
// order (section ascending, then question ascending).
func selectAnswers(answers []AnswerContext, match matcher) []AnswerContext {
	var matched []AnswerContext
	for _, answer := range answers {
		if match(answer) {
			matched = append(matched, answer)
		}
	}
	return matched
}

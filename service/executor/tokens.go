package executor

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota
	wordCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	wordToken       = parsly.NewToken(wordCode, "Word", &wordMatcher{})
)

// wordMatcher matches a run of non whitespace bytes. Quotes and backslashes
// are ordinary bytes: arguments containing spaces cannot be expressed.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if isSpace(cursor.Input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Tokenize splits a command line on whitespace; runs of whitespace count as
// a single separator, so empty arguments are never produced and echo sees
// "a  b" as two words printed as "a b". Quotes and backslashes are literal.
func Tokenize(line string) []string {
	cursor := parsly.NewCursor("", []byte(line), 0)
	var ret []string
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAny(whitespaceToken, wordToken)
		switch matched.Code {
		case wordCode:
			ret = append(ret, matched.Text(cursor))
		case whitespaceCode:
		default:
			cursor.Pos++
		}
	}
	return ret
}

package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiysky/jsonb/container"
	"github.com/leiysky/jsonb/jsonpath"
	"github.com/leiysky/jsonb/value"
)

func encode(t *testing.T, text string) []byte {
	t.Helper()
	v, err := value.Parse([]byte(text))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)
	return buf
}

func queryStrings(t *testing.T, text, path string) []string {
	t.Helper()
	buf := encode(t, text)
	p, err := jsonpath.Parse(path)
	require.NoError(t, err)
	results, err := jsonpath.Eval(buf, p)
	require.NoError(t, err)
	out := make([]string, len(results))
	for i, r := range results {
		s, err := container.ToString(r)
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	toks, err := jsonpath.Tokenize(`$.phones[0].number`)
	require.NoError(t, err)
	var kinds []jsonpath.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []jsonpath.Kind{
		jsonpath.Dollar, jsonpath.Period, jsonpath.Ident,
		jsonpath.LBracket, jsonpath.LiteralInteger, jsonpath.RBracket,
		jsonpath.Period, jsonpath.Ident, jsonpath.EOI,
	}, kinds)
}

func TestMemberAndIndex(t *testing.T) {
	doc := `{"phones":[{"number":"111"},{"number":"222"}]}`
	got := queryStrings(t, doc, `$.phones[0].number`)
	assert.Equal(t, []string{`"111"`}, got)

	got = queryStrings(t, doc, `$.phones[1].number`)
	assert.Equal(t, []string{`"222"`}, got)
}

func TestWildcardMember(t *testing.T) {
	got := queryStrings(t, `{"a":1,"b":2}`, `$.*`)
	assert.ElementsMatch(t, []string{"1", "2"}, got)
}

func TestWildcardIndex(t *testing.T) {
	got := queryStrings(t, `[1,2,3]`, `$[*]`)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestNegativeIndex(t *testing.T) {
	got := queryStrings(t, `[1,2,3]`, `$[-1]`)
	assert.Equal(t, []string{"3"}, got)
}

func TestIndexRange(t *testing.T) {
	got := queryStrings(t, `[1,2,3,4,5]`, `$[1 to 3]`)
	assert.Equal(t, []string{"2", "3", "4"}, got)

	got = queryStrings(t, `[1,2,3,4,5]`, `$[1 to last]`)
	assert.Equal(t, []string{"2", "3", "4", "5"}, got)
}

func TestQuotedMember(t *testing.T) {
	got := queryStrings(t, `{"first name":"ann"}`, `$."first name"`)
	assert.Equal(t, []string{`"ann"`}, got)
}

func TestFilterComparison(t *testing.T) {
	doc := `[{"age":10},{"age":20},{"age":30}]`
	got := queryStrings(t, doc, `$[*]?(@.age > 15)`)
	assert.ElementsMatch(t, []string{`{"age":20}`, `{"age":30}`}, got)
}

func TestFilterLogicalOperators(t *testing.T) {
	doc := `[{"age":10},{"age":20},{"age":30}]`
	got := queryStrings(t, doc, `$[*]?(@.age > 10 AND @.age < 30)`)
	assert.Equal(t, []string{`{"age":20}`}, got)

	got = queryStrings(t, doc, `$[*]?(@.age > 10 && @.age < 30)`)
	assert.Equal(t, []string{`{"age":20}`}, got)

	got = queryStrings(t, doc, `$[*]?(@.age == 10 OR @.age == 30)`)
	assert.ElementsMatch(t, []string{`{"age":10}`, `{"age":30}`}, got)
}

func TestFilterNot(t *testing.T) {
	doc := `[{"age":10},{"age":20}]`
	got := queryStrings(t, doc, `$[*]?(NOT @.age == 10)`)
	assert.Equal(t, []string{`{"age":20}`}, got)
}

func TestFilterSizeAndEmpty(t *testing.T) {
	doc := `[{"tags":[]},{"tags":[1,2]}]`
	got := queryStrings(t, doc, `$[*]?(EMPTY @.tags)`)
	assert.Equal(t, []string{`{"tags":[]}`}, got)

	got = queryStrings(t, doc, `$[*]?(SIZE @.tags == 2)`)
	assert.Equal(t, []string{`{"tags":[1,2]}`}, got)
}

func TestFilterInAndNin(t *testing.T) {
	doc := `[{"a":1,"allowed":[1,3]},{"a":2,"allowed":[1,3]},{"a":3,"allowed":[1,3]}]`
	got := queryStrings(t, doc, `$[*]?(@.a IN @.allowed[*])`)
	assert.ElementsMatch(t, []string{`{"a":1,"allowed":[1,3]}`, `{"a":3,"allowed":[1,3]}`}, got)

	got = queryStrings(t, doc, `$[*]?(@.a NIN @.allowed[*])`)
	assert.Equal(t, []string{`{"a":2,"allowed":[1,3]}`}, got)
}

func TestFilterSubsetOfAndContains(t *testing.T) {
	doc := `[{"tags":[1,2],"allowed":[1,2,3]},{"tags":[1,99],"allowed":[1,2,3]}]`
	got := queryStrings(t, doc, `$[*]?(@.tags SUBSETOF @.allowed)`)
	assert.Equal(t, []string{`{"tags":[1,2],"allowed":[1,2,3]}`}, got)

	got = queryStrings(t, doc, `$[*]?(@.allowed CONTAINS @.tags)`)
	assert.Equal(t, []string{`{"tags":[1,2],"allowed":[1,2,3]}`}, got)
}

func TestFilterStringNumberComparisonFallback(t *testing.T) {
	doc := `[{"n":"5"},{"n":"abc"}]`
	got := queryStrings(t, doc, `$[*]?(@.n == 5)`)
	assert.Equal(t, []string{`{"n":"5"}`}, got)
}

func TestRangeThenFilterWorkedExample(t *testing.T) {
	doc := `{"phones":[{"type":"home","number":3720453},{"type":"work","number":5062051}]}`
	got := queryStrings(t, doc, `$.phones[0 to last]?(@.type == "home")`)
	assert.Equal(t, []string{`{"type":"home","number":3720453}`}, got)

	got = queryStrings(t, doc, `$.phones[0 to last]?(@.number == 3720453 && @.type == "work")`)
	assert.Equal(t, []string{}, got)
}

func TestSyntaxErrorOnMissingRoot(t *testing.T) {
	_, err := jsonpath.Parse(`.a`)
	assert.Error(t, err)
}

func TestSyntaxErrorOnUnterminatedString(t *testing.T) {
	_, err := jsonpath.Tokenize(`$."unterminated`)
	assert.Error(t, err)
}

package jsonpath

import "github.com/leiysky/jsonb/value"

// Path is a compiled path expression: a sequence of selectors applied in
// order, rooted at the document root ($) or, for a filter's inner path, at
// the current value (@).
type Path struct {
	Selectors []Selector
}

// Selector is one navigation step.
type Selector interface {
	isSelector()
}

// MemberSelector descends into an object field by name: `.name` or
// `."name"`.
type MemberSelector struct {
	Name string
}

// WildcardMemberSelector yields all values of an object: `.*`.
type WildcardMemberSelector struct{}

// IndexSelector selects the element at position Index, which may be
// negative (counts from the end).
type IndexSelector struct {
	Index int
}

// IndexRangeSelector selects an inclusive slice `[i to j]` or `[i to last]`.
type IndexRangeSelector struct {
	Start     int
	End       int
	EndIsLast bool
}

// WildcardIndexSelector yields every element of an array: `[*]`.
type WildcardIndexSelector struct{}

// FilterSelector keeps only inputs for which Expr evaluates truthy:
// `?(expr)`.
type FilterSelector struct {
	Expr FilterExpr
}

func (MemberSelector) isSelector()         {}
func (WildcardMemberSelector) isSelector() {}
func (IndexSelector) isSelector()          {}
func (IndexRangeSelector) isSelector()     {}
func (WildcardIndexSelector) isSelector()  {}
func (FilterSelector) isSelector()         {}

// FilterExpr is a node in a filter's boolean/comparison expression tree,
// built with OR binding loosest, then AND, then NOT, then comparison, then
// unary, then primary.
type FilterExpr interface {
	isFilterExpr()
}

// OrExpr is a short-circuiting logical OR (`OR` or `||`).
type OrExpr struct{ Left, Right FilterExpr }

// AndExpr is a short-circuiting logical AND (`AND` or `&&`).
type AndExpr struct{ Left, Right FilterExpr }

// NotExpr negates a boolean result (`NOT`).
type NotExpr struct{ Operand FilterExpr }

// CompareOp is a comparison operator.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNe
	CmpLt
	CmpGt
	CmpLe
	CmpGe
	CmpSpaceship
	CmpIn
	CmpNin
	CmpSubsetOf
	CmpContains
)

// CompareExpr existentially compares every value produced by Left against
// every value produced by Right: true if any pair satisfies Op. NIN is the
// negation of IN: true iff no pair is equal.
type CompareExpr struct {
	Op          CompareOp
	Left, Right FilterExpr
}

// UnaryOp is a prefix unary operator: `SIZE`, `EMPTY`, or numeric negation.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnarySize
	UnaryEmpty
)

// UnaryExpr applies Op to Operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand FilterExpr
}

// LiteralExpr is a constant value parsed from the path text: a number,
// string, TRUE, FALSE, or NULL.
type LiteralExpr struct {
	Value *value.Value
}

// PathExpr is a path expression rooted at `@`, the current value under
// consideration by the enclosing selector.
type PathExpr struct {
	Path *Path
}

func (OrExpr) isFilterExpr()      {}
func (AndExpr) isFilterExpr()     {}
func (NotExpr) isFilterExpr()     {}
func (CompareExpr) isFilterExpr() {}
func (UnaryExpr) isFilterExpr()   {}
func (LiteralExpr) isFilterExpr() {}
func (PathExpr) isFilterExpr()    {}

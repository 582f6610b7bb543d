package jsonpath

import (
	"strconv"

	"github.com/leiysky/jsonb/container"
	"github.com/leiysky/jsonb/value"
)

// Eval walks root (a well-formed JSONB buffer) guided by path and returns
// the JSONB sub-buffers matched, in the order produced by the selector
// chain. Each result aliases root; callers that need an independent copy
// should copy the bytes themselves. Member lookups are case-sensitive; use
// EvalCase to fold case.
func Eval(root []byte, path *Path) ([][]byte, error) {
	return EvalCase(root, path, false)
}

// EvalCase is Eval with control over whether member-selector lookups fold
// ASCII case, matching container.GetByName's ignoreCase parameter.
func EvalCase(root []byte, path *Path, ignoreCase bool) ([][]byte, error) {
	positions := [][]byte{root}
	for _, sel := range path.Selectors {
		next, err := applySelector(root, positions, sel, ignoreCase)
		if err != nil {
			return nil, err
		}
		positions = next
	}
	return positions, nil
}

// applySelector applies one selector to every current position and
// concatenates the results in order, mapping one multiset of current
// positions to the next. root is passed through unchanged, since filter
// predicates may reference it indirectly via future extensions; today only
// the current value is in scope for `@`.
func applySelector(root []byte, positions [][]byte, sel Selector, ignoreCase bool) ([][]byte, error) {
	var out [][]byte
	for _, cur := range positions {
		switch s := sel.(type) {
		case MemberSelector:
			if v, ok := container.GetByName(cur, s.Name, ignoreCase); ok {
				out = append(out, v)
			}
		case WildcardMemberSelector:
			if container.IsObject(cur) {
				keys, _ := container.ObjectKeys(cur)
				n, _ := container.ArrayLength(keys)
				for i := 0; i < n; i++ {
					k, _ := container.GetByIndex(keys, i)
					name, _ := container.AsStr(k)
					if v, ok := container.GetByName(cur, name, ignoreCase); ok {
						out = append(out, v)
					}
				}
			}
		case IndexSelector:
			idx, ok := resolveIndex(cur, s.Index)
			if !ok {
				continue
			}
			if v, ok := container.GetByIndex(cur, idx); ok {
				out = append(out, v)
			}
		case IndexRangeSelector:
			n, ok := container.ArrayLength(cur)
			if !ok {
				continue
			}
			start, ok := resolveIndex(cur, s.Start)
			if !ok {
				continue
			}
			end := n - 1
			if !s.EndIsLast {
				var ok2 bool
				end, ok2 = resolveIndex(cur, s.End)
				if !ok2 {
					continue
				}
			}
			for i := start; i <= end && i < n; i++ {
				if i < 0 {
					continue
				}
				if v, ok := container.GetByIndex(cur, i); ok {
					out = append(out, v)
				}
			}
		case WildcardIndexSelector:
			n, ok := container.ArrayLength(cur)
			if !ok {
				continue
			}
			for i := 0; i < n; i++ {
				if v, ok := container.GetByIndex(cur, i); ok {
					out = append(out, v)
				}
			}
		case FilterSelector:
			// Evaluated against the current position itself: any fan-out
			// into "each element" already happened via a preceding
			// wildcard/range selector, so the predicate tests cur directly
			// rather than re-expanding into cur's own children.
			truthy, err := evalFilter(root, cur, s.Expr, ignoreCase)
			if err != nil {
				return nil, err
			}
			if truthy {
				out = append(out, cur)
			}
		}
	}
	return out, nil
}

// resolveIndex turns a possibly-negative path index into a non-negative
// array position, resolving against cur's element count before
// container.GetByIndex is ever consulted: negative indices count from the
// end, but GetByIndex itself only accepts non-negative offsets.
func resolveIndex(cur []byte, idx int) (int, bool) {
	if idx >= 0 {
		return idx, true
	}
	n, ok := container.ArrayLength(cur)
	if !ok {
		return 0, false
	}
	resolved := n + idx
	if resolved < 0 {
		return 0, false
	}
	return resolved, true
}

// evalFilter evaluates expr against current (the candidate value `@`
// refers to), within the scope of root.
func evalFilter(root, current []byte, expr FilterExpr, ignoreCase bool) (bool, error) {
	switch e := expr.(type) {
	case OrExpr:
		l, err := evalFilter(root, current, e.Left, ignoreCase)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return evalFilter(root, current, e.Right, ignoreCase)
	case AndExpr:
		l, err := evalFilter(root, current, e.Left, ignoreCase)
		if err != nil {
			return false, err
		}
		if !l {
			return false, nil
		}
		return evalFilter(root, current, e.Right, ignoreCase)
	case NotExpr:
		v, err := evalFilter(root, current, e.Operand, ignoreCase)
		if err != nil {
			return false, err
		}
		return !v, nil
	case CompareExpr:
		return evalCompare(root, current, e, ignoreCase)
	case UnaryExpr:
		return evalUnaryTruthy(root, current, e, ignoreCase)
	case LiteralExpr, PathExpr:
		// A bare term used as a filter predicate (not inside a CompareExpr) is
		// true iff it produces at least one value; the value itself is not
		// inspected, so a FALSE or NULL literal also counts.
		vals, err := evalOperand(root, current, e, ignoreCase)
		if err != nil {
			return false, err
		}
		return len(vals) > 0, nil
	default:
		return false, nil
	}
}

// evalOperand yields the JSONB sub-buffers an operand expression produces:
// a single literal, or every match of an inner `@`-rooted path.
func evalOperand(root, current []byte, expr FilterExpr, ignoreCase bool) ([][]byte, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		buf, err := container.Encode(e.Value)
		if err != nil {
			return nil, err
		}
		return [][]byte{buf}, nil
	case PathExpr:
		return EvalCase(current, e.Path, ignoreCase)
	case UnaryExpr:
		buf, err := evalUnaryValue(root, current, e, ignoreCase)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			return nil, nil
		}
		return [][]byte{buf}, nil
	default:
		return nil, nil
	}
}

// evalCompare existentially quantifies the comparison over every pairing of
// Left's and Right's produced values: true if any pair satisfies Op. NIN is
// the negation of IN: true iff no pair is equal.
func evalCompare(root, current []byte, e CompareExpr, ignoreCase bool) (bool, error) {
	if e.Op == CmpNin {
		in, err := evalCompare(root, current, CompareExpr{Op: CmpIn, Left: e.Left, Right: e.Right}, ignoreCase)
		if err != nil {
			return false, err
		}
		return !in, nil
	}
	lefts, err := evalOperand(root, current, e.Left, ignoreCase)
	if err != nil {
		return false, err
	}
	rights, err := evalOperand(root, current, e.Right, ignoreCase)
	if err != nil {
		return false, err
	}
	for _, l := range lefts {
		for _, r := range rights {
			ok, err := compareOne(e.Op, l, r)
			if err != nil {
				continue
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

func compareOne(op CompareOp, l, r []byte) (bool, error) {
	switch op {
	case CmpIn, CmpNin:
		match := valuesEqual(l, r)
		if op == CmpIn {
			return match, nil
		}
		return !match, nil
	case CmpSubsetOf:
		return isSubsetOf(l, r), nil
	case CmpContains:
		return isSubsetOf(r, l), nil
	}

	c, comparable := orderedCompare(l, r)
	if !comparable {
		return false, nil
	}
	switch op {
	case CmpEq:
		return c == container.Equal, nil
	case CmpNe:
		return c != container.Equal, nil
	case CmpLt:
		return c == container.Less, nil
	case CmpGt:
		return c == container.Greater, nil
	case CmpLe:
		return c != container.Greater, nil
	case CmpGe:
		return c != container.Less, nil
	case CmpSpaceship:
		return true, nil
	default:
		return false, nil
	}
}

// orderedCompare compares l and r, falling back to parsing a String operand
// as a Number when the other side is numeric: if the string doesn't parse
// as a number, the pair is incomparable rather than ordered by the base
// type rank.
func orderedCompare(l, r []byte) (container.Ordering, bool) {
	ln, lIsNum := container.AsNumber(l)
	rn, rIsNum := container.AsNumber(r)
	ls, lIsStr := container.AsStr(l)
	rs, rIsStr := container.AsStr(r)

	if lIsNum && rIsStr {
		if coerced, ok := container.AsNumber(mustEncodeNumberString(rs)); ok {
			return sign64(ln.Float64() - coerced.Float64()), true
		}
		return 0, false
	}
	if rIsNum && lIsStr {
		if coerced, ok := container.AsNumber(mustEncodeNumberString(ls)); ok {
			return sign64(coerced.Float64() - rn.Float64()), true
		}
		return 0, false
	}
	return container.Compare(l, r), true
}

func sign64(f float64) container.Ordering {
	switch {
	case f < 0:
		return container.Less
	case f > 0:
		return container.Greater
	default:
		return container.Equal
	}
}

// mustEncodeNumberString attempts to parse s as a JSON number and encode it
// as a JSONB scalar; on failure it returns a buffer that decodes as nothing
// numeric, so the caller's AsNumber check simply fails closed.
func mustEncodeNumberString(s string) []byte {
	v, ok := parseJSONNumber(s)
	if !ok {
		return nil
	}
	buf, err := container.Encode(v)
	if err != nil {
		return nil
	}
	return buf
}

// parseJSONNumber parses s the way a Number-vs-String comparison fallback
// requires: try the narrowest numeric subtype first, falling through to
// float64, and fail outright on anything that isn't a clean numeric
// literal.
func parseJSONNumber(s string) (*value.Value, bool) {
	if s == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.NewInt64(i), true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return value.NewUint64(u), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.NewFloat64(f), true
	}
	return nil, false
}

func valuesEqual(l, r []byte) bool {
	c, ok := orderedCompare(l, r)
	return ok && c == container.Equal
}

// isSubsetOf reports whether every element of small (an array, or a single
// value treated as a one-element array) appears among big's elements.
func isSubsetOf(small, big []byte) bool {
	smallVals, ok := container.ArrayValues(small)
	if !ok {
		smallVals = [][]byte{small}
	}
	bigVals, ok := container.ArrayValues(big)
	if !ok {
		bigVals = [][]byte{big}
	}
	for _, s := range smallVals {
		found := false
		for _, b := range bigVals {
			if valuesEqual(s, b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// evalUnaryTruthy evaluates SIZE/EMPTY/neg as a standalone filter predicate:
// truthy iff the operation succeeds and (for EMPTY) the result is true, or
// (for SIZE/neg) it produces a value at all.
func evalUnaryTruthy(root, current []byte, e UnaryExpr, ignoreCase bool) (bool, error) {
	buf, err := evalUnaryValue(root, current, e, ignoreCase)
	if err != nil {
		return false, err
	}
	if buf == nil {
		return false, nil
	}
	if e.Op == UnaryEmpty {
		b, ok := container.AsBool(buf)
		return ok && b, nil
	}
	return true, nil
}

// evalUnaryValue computes the JSONB-encoded result of a unary operator
// applied to its operand's first produced value: SIZE yields an
// array/object's element count, EMPTY yields whether it has none, neg
// arithmetically negates a number.
func evalUnaryValue(root, current []byte, e UnaryExpr, ignoreCase bool) ([]byte, error) {
	vals, err := evalOperand(root, current, e.Operand, ignoreCase)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	v := vals[0]
	switch e.Op {
	case UnarySize:
		n, ok := container.ArrayLength(v)
		if !ok {
			keys, okk := container.ObjectKeys(v)
			if !okk {
				return nil, nil
			}
			n, _ = container.ArrayLength(keys)
		}
		return container.Encode(value.NewInt64(int64(n)))
	case UnaryEmpty:
		n, ok := container.ArrayLength(v)
		if !ok {
			keys, okk := container.ObjectKeys(v)
			if !okk {
				return nil, nil
			}
			n, _ = container.ArrayLength(keys)
		}
		return container.Encode(value.NewBool(n == 0))
	case UnaryNeg:
		n, ok := container.AsNumber(v)
		if !ok {
			return nil, nil
		}
		switch n.Kind {
		case container.NumberInt64:
			return container.Encode(value.NewInt64(-n.I64))
		default:
			return container.Encode(value.NewFloat64(-n.Float64()))
		}
	default:
		return nil, nil
	}
}

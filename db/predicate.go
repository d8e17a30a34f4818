// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strings"
)

// Op is a comparison operator usable in a Predicate
type Op string

const (
	OpEq Op = "="
	OpNe Op = "<>"
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="
)

func (o Op) valid() bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// Condition compares one column against a bound value
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Predicate is a conjunction of conditions. The zero Predicate matches
// every row.
type Predicate struct {
	conds []Condition
}

// Eq matches rows where column equals value
func Eq(column string, value any) Predicate {
	return Where(column, OpEq, value)
}

func Where(column string, op Op, value any) Predicate {
	return Predicate{conds: []Condition{{Column: column, Op: op, Value: value}}}
}

// And joins predicates with AND
func And(preds ...Predicate) Predicate {
	var p Predicate
	for _, other := range preds {
		p.conds = append(p.conds, other.conds...)
	}
	return p
}

func (p Predicate) IsZero() bool {
	return len(p.conds) == 0
}

func (p Predicate) Conditions() []Condition {
	return append([]Condition(nil), p.conds...)
}

// build renders the WHERE body. Columns are checked against the table
// handle and values are always bound, numbering from start.
func (p Predicate) build(t *Table, d Dialect, start int) (string, []any, error) {
	if p.IsZero() {
		return "", nil, nil
	}

	parts := make([]string, 0, len(p.conds))
	args := make([]any, 0, len(p.conds))
	for i, c := range p.conds {
		if _, err := t.C(c.Column); err != nil {
			return "", nil, err
		}
		if !c.Op.valid() {
			return "", nil, fmt.Errorf("unsupported operator %q", c.Op)
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", quoteIdent(c.Column), c.Op, d.Placeholder(start+i)))
		args = append(args, c.Value)
	}
	return strings.Join(parts, " AND "), args, nil
}

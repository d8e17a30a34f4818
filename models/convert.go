// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/db"
)

// timeLayouts covers how the drivers hand back datetime columns as text
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// QuestionFromRow decodes a polls_question row
func QuestionFromRow(row db.Row) (Question, error) {
	var (
		q   Question
		err error
	)
	if q.ID, err = int64Column(row, "id"); err != nil {
		return Question{}, err
	}
	if q.QuestionText, err = stringColumn(row, "question_text"); err != nil {
		return Question{}, err
	}
	if q.PubDate, err = timeColumn(row, "pub_date"); err != nil {
		return Question{}, err
	}
	return q, nil
}

// ChoiceFromRow decodes a polls_choice row
func ChoiceFromRow(row db.Row) (Choice, error) {
	var (
		c   Choice
		err error
	)
	if c.ID, err = int64Column(row, "id"); err != nil {
		return Choice{}, err
	}
	if c.QuestionID, err = int64Column(row, "question_id"); err != nil {
		return Choice{}, err
	}
	if c.ChoiceText, err = stringColumn(row, "choice_text"); err != nil {
		return Choice{}, err
	}
	if c.Votes, err = int64Column(row, "votes"); err != nil {
		return Choice{}, err
	}
	return c, nil
}

func column(row db.Row, name string) (any, error) {
	v, ok := row.Get(name)
	if !ok {
		return nil, fmt.Errorf("column %s missing from row", name)
	}
	if v == nil {
		return nil, fmt.Errorf("column %s is NULL", name)
	}
	return v, nil
}

func int64Column(row db.Row, name string) (int64, error) {
	v, err := column(row, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, fmt.Errorf("column %s: unexpected type %T", name, v)
}

func stringColumn(row db.Row, name string) (string, error) {
	v, err := column(row, name)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return fmt.Sprint(v), nil
}

func timeColumn(row db.Row, name string) (time.Time, error) {
	v, err := column(row, name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := toTime(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s: %w", name, err)
	}
	return t, nil
}

func toTime(v any) (time.Time, error) {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", v)
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as time", s)
}

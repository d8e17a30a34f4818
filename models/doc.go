// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types for the polls site.

# Domain Types

Decoded from reflected table rows:

  - Question: polls_question (id, question_text, pub_date)
  - Choice: polls_choice (id, question_id, choice_text, votes)

Rows come from db.Session as untyped tuples; use the decoders:

	q, err := models.QuestionFromRow(row)
	c, err := models.ChoiceFromRow(row)

Datetime columns may arrive as time.Time or text depending on the driver.
Both are accepted.

# Response Types

  - QuestionList: latest_question_list
  - QuestionDetail: question and its choices
  - SchemaResponse, TableInfo, ColumnInfo: reflected schema
  - ErrorResponse: error, message

# Constants

Table names:

	TableUser     = "auth_user"
	TableQuestion = "polls_question"
	TableChoice   = "polls_choice"
*/
package models

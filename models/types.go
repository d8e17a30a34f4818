package models

import "time"

// Reflected table names
const (
	TableUser     = "auth_user"
	TableQuestion = "polls_question"
	TableChoice   = "polls_choice"
)

// LatestQuestionCount is how many questions the index shows
const LatestQuestionCount = 5

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

// Response types

type QuestionList struct {
	LatestQuestionList []Question `json:"latest_question_list"`
}

type QuestionDetail struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

type SchemaResponse struct {
	Tables []string `json:"tables"`
}

type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}

type TableInfo struct {
	Name     string       `json:"name"`
	Columns  []ColumnInfo `json:"columns"`
	RowCount int64        `json:"row_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

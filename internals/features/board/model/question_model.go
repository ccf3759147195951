// file: internals/features/board/model/question_model.go
package model

import "time"

/* =========================================================
   MODEL: questions
   ========================================================= */

type Question struct {
	QuestionID         uint      `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionSubject    string    `gorm:"column:question_subject;type:varchar(200);not null" json:"question_subject" validate:"required,max=200"`
	QuestionContent    string    `gorm:"column:question_content;type:text;not null" json:"question_content" validate:"required"`
	QuestionCreateDate time.Time `gorm:"column:question_create_date;not null" json:"question_create_date" validate:"required"`

	// Reverse side of answers.answer_question_id. Only filled by an explicit
	// load (eager preload or a lazy load inside a unit of work).
	Answers []Answer `gorm:"foreignKey:AnswerQuestionID;references:QuestionID" json:"answers,omitempty" validate:"-"`
}

func (Question) TableName() string { return "questions" }

// HasIdentity reports whether the store already assigned an id.
func (q *Question) HasIdentity() bool { return q != nil && q.QuestionID != 0 }

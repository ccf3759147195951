// file: internals/features/board/model/answer_model.go
package model

import "time"

/* =========================================================
   MODEL: answers
   ========================================================= */

type Answer struct {
	AnswerID         uint      `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	AnswerContent    string    `gorm:"column:answer_content;type:text;not null" json:"answer_content" validate:"required"`
	AnswerCreateDate time.Time `gorm:"column:answer_create_date;not null" json:"answer_create_date" validate:"required"`
	AnswerQuestionID uint      `gorm:"column:answer_question_id;not null;index" json:"answer_question_id" validate:"required"`

	// Owning question (many-to-one). Deleting a question with answers is restricted.
	Question *Question `gorm:"foreignKey:AnswerQuestionID;references:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"question,omitempty" validate:"-"`
}

func (Answer) TableName() string { return "answers" }

func (a *Answer) HasIdentity() bool { return a != nil && a.AnswerID != 0 }

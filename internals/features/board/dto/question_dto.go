// file: internals/features/board/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"sbb_backend/internals/features/board/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type QuestionRequest struct {
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Content string `json:"content" form:"content" validate:"required"`
}

func (r *QuestionRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Content = strings.TrimSpace(r.Content)
}

func (r QuestionRequest) ToModel() *model.Question {
	return &model.Question{
		QuestionSubject: r.Subject,
		QuestionContent: r.Content,
	}
}

// ApplyTo copies the editable fields onto an existing question.
func (r QuestionRequest) ApplyTo(q *model.Question) {
	q.QuestionSubject = r.Subject
	q.QuestionContent = r.Content
}

/* =========================================================
   RESPONSE
   ========================================================= */

type QuestionResponse struct {
	ID         uint             `json:"id"`
	Subject    string           `json:"subject"`
	Content    string           `json:"content"`
	CreateDate time.Time        `json:"create_date"`
	Answers    []AnswerResponse `json:"answers,omitempty"`
}

func FromQuestionModel(q model.Question) QuestionResponse {
	out := QuestionResponse{
		ID:         q.QuestionID,
		Subject:    q.QuestionSubject,
		Content:    q.QuestionContent,
		CreateDate: q.QuestionCreateDate,
	}
	if q.Answers != nil {
		out.Answers = make([]AnswerResponse, 0, len(q.Answers))
		for _, a := range q.Answers {
			out.Answers = append(out.Answers, FromAnswerModel(a))
		}
	}
	return out
}

func FromQuestionModels(rows []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for _, q := range rows {
		out = append(out, FromQuestionModel(q))
	}
	return out
}

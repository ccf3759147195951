// file: internals/features/board/dto/answer_dto.go
package dto

import (
	"strings"
	"time"

	"sbb_backend/internals/features/board/model"
)

type AnswerRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
}

func (r *AnswerRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

func (r AnswerRequest) ToModel(questionID uint) *model.Answer {
	return &model.Answer{
		AnswerContent:    r.Content,
		AnswerQuestionID: questionID,
	}
}

type AnswerResponse struct {
	ID         uint              `json:"id"`
	Content    string            `json:"content"`
	CreateDate time.Time         `json:"create_date"`
	QuestionID uint              `json:"question_id"`
	Question   *QuestionResponse `json:"question,omitempty"`
}

func FromAnswerModel(a model.Answer) AnswerResponse {
	out := AnswerResponse{
		ID:         a.AnswerID,
		Content:    a.AnswerContent,
		CreateDate: a.AnswerCreateDate,
		QuestionID: a.AnswerQuestionID,
	}
	if a.Question != nil {
		q := FromQuestionModel(*a.Question)
		out.Question = &q
	}
	return out
}

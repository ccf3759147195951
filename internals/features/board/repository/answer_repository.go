// file: internals/features/board/repository/answer_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sbb_backend/internals/features/board/model"
)

type AnswerRepository struct {
	binding
	validate *validator.Validate
}

func (r *AnswerRepository) In(uow *UnitOfWork) *AnswerRepository {
	return &AnswerRepository{
		binding:  binding{db: r.db, uow: uow, bound: true},
		validate: r.validate,
	}
}

/* ====================== WRITE ====================== */

func (r *AnswerRepository) Save(ctx context.Context, a *model.Answer) (*model.Answer, error) {
	if a == nil {
		return nil, wrapIntegrity("nil answer")
	}
	if a.HasIdentity() {
		return r.Update(ctx, a)
	}
	return r.Insert(ctx, a)
}

// Insert stores a new answer. The owning question must exist; it is checked
// in the same transaction as the insert.
func (r *AnswerRepository) Insert(ctx context.Context, a *model.Answer) (*model.Answer, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	if a.HasIdentity() {
		return nil, fmt.Errorf("%w: answer %d already has an identity", ErrDataIntegrity, a.AnswerID)
	}
	if a.AnswerQuestionID == 0 && a.Question != nil {
		a.AnswerQuestionID = a.Question.QuestionID
	}
	if a.AnswerCreateDate.IsZero() {
		a.AnswerCreateDate = time.Now()
	}
	if err := r.validate.Struct(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var owners int64
		if err := tx.Model(&model.Question{}).
			Where("question_id = ?", a.AnswerQuestionID).
			Count(&owners).Error; err != nil {
			return err
		}
		if owners == 0 {
			return fmt.Errorf("%w (question %d)", ErrQuestionMissing, a.AnswerQuestionID)
		}
		return tx.Omit(clause.Associations).Create(a).Error
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update rewrites the content of an existing answer. The owning question and
// the create date are fixed at creation.
func (r *AnswerRepository) Update(ctx context.Context, a *model.Answer) (*model.Answer, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	if !a.HasIdentity() {
		return nil, fmt.Errorf("%w: answer has no identity", ErrNotFound)
	}
	if err := r.validate.StructPartial(a, "AnswerContent"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}
	res := db.Model(&model.Answer{}).
		Where("answer_id = ?", a.AnswerID).
		Update("answer_content", a.AnswerContent)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: answer %d", ErrNotFound, a.AnswerID)
	}
	return a, nil
}

func (r *AnswerRepository) Delete(ctx context.Context, a *model.Answer) error {
	if !a.HasIdentity() {
		return nil
	}
	return r.DeleteByID(ctx, a.AnswerID)
}

func (r *AnswerRepository) DeleteByID(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Where("answer_id = ?", id).Delete(&model.Answer{}).Error
}

/* ====================== READ ====================== */

func (r *AnswerRepository) FindAll(ctx context.Context) ([]model.Answer, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Answer
	if err := db.Order("answer_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID loads the answer together with its owning question.
func (r *AnswerRepository) FindByID(ctx context.Context, id uint) (model.Answer, bool, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return model.Answer{}, false, err
	}
	var a model.Answer
	if err := db.Preload("Question").Where("answer_id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Answer{}, false, nil
		}
		return model.Answer{}, false, err
	}
	return a, true, nil
}

func (r *AnswerRepository) FindByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Answer{}
	if err := db.Where("answer_question_id = ?", questionID).
		Order("answer_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnswerRepository) Count(ctx context.Context) (int64, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.Model(&model.Answer{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// file: internals/features/board/repository/question_repository.go
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

type QuestionRepository struct {
	binding
	validate *validator.Validate
}

// In returns the repository bound to uow. Calls fail with ErrDetachedAccess
// once uow is no longer active.
func (r *QuestionRepository) In(uow *UnitOfWork) *QuestionRepository {
	return &QuestionRepository{
		binding:  binding{db: r.db, uow: uow, bound: true},
		validate: r.validate,
	}
}

/* ====================== WRITE ====================== */

// Save inserts q when it has no identity yet, otherwise updates the row
// with the same identity.
func (r *QuestionRepository) Save(ctx context.Context, q *model.Question) (*model.Question, error) {
	if q == nil {
		return nil, wrapIntegrity("nil question")
	}
	if q.HasIdentity() {
		return r.Update(ctx, q)
	}
	return r.Insert(ctx, q)
}

func (r *QuestionRepository) Insert(ctx context.Context, q *model.Question) (*model.Question, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	if q.HasIdentity() {
		return nil, fmt.Errorf("%w: question %d already has an identity", ErrDataIntegrity, q.QuestionID)
	}
	if q.QuestionCreateDate.IsZero() {
		q.QuestionCreateDate = time.Now()
	}
	if err := r.validate.Struct(q); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}
	if err := db.Omit(clause.Associations).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// Update writes subject and content of an existing question. The id and the
// create date are never written.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) (*model.Question, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	if !q.HasIdentity() {
		return nil, fmt.Errorf("%w: question has no identity", ErrNotFound)
	}
	if err := r.validate.StructPartial(q, "QuestionSubject", "QuestionContent"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}
	res := db.Model(&model.Question{}).
		Where("question_id = ?", q.QuestionID).
		Updates(map[string]interface{}{
			"question_subject": q.QuestionSubject,
			"question_content": q.QuestionContent,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: question %d", ErrNotFound, q.QuestionID)
	}
	return q, nil
}

// Delete removes q by identity. A question that still has answers is not
// deleted (ErrQuestionHasAnswers); an identity without a row is a no-op.
func (r *QuestionRepository) Delete(ctx context.Context, q *model.Question) error {
	if !q.HasIdentity() {
		return nil
	}
	return r.DeleteByID(ctx, q.QuestionID)
}

func (r *QuestionRepository) DeleteByID(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var answers int64
		if err := tx.Model(&model.Answer{}).
			Where("answer_question_id = ?", id).
			Count(&answers).Error; err != nil {
			return err
		}
		if answers > 0 {
			return fmt.Errorf("%w (question %d, %d answers)", ErrQuestionHasAnswers, id, answers)
		}
		return tx.Where("question_id = ?", id).Delete(&model.Question{}).Error
	})
}

/* ====================== READ ====================== */

// FindAll returns every question in insertion (id) order.
func (r *QuestionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Question
	if err := db.Order("question_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindPage returns one page of the board, newest first.
func (r *QuestionRepository) FindPage(ctx context.Context, offset, limit int) ([]model.Question, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Question
	if err := db.Order("question_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (model.Question, bool, error) {
	return r.findOne(ctx, "question_id = ?", id)
}

// FindBySubject returns the question with the lowest id among exact matches.
func (r *QuestionRepository) FindBySubject(ctx context.Context, subject string) (model.Question, bool, error) {
	return r.findOne(ctx, "question_subject = ?", subject)
}

func (r *QuestionRepository) FindBySubjectAndContent(ctx context.Context, subject, content string) (model.Question, bool, error) {
	return r.findOne(ctx, "question_subject = ? AND question_content = ?", subject, content)
}

// FindBySubjectLike matches subject with SQL LIKE, so % stands for any run
// of characters: "sbb%" prefix, "%sbb" suffix, "%sbb%" substring.
func (r *QuestionRepository) FindBySubjectLike(ctx context.Context, pattern string) ([]model.Question, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Question
	if err := db.Where("question_subject LIKE ?", pattern).
		Order("question_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.Model(&model.Question{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *QuestionRepository) findOne(ctx context.Context, query string, args ...interface{}) (model.Question, bool, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return model.Question{}, false, err
	}
	var q model.Question
	if err := db.Where(query, args...).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Question{}, false, nil
		}
		return model.Question{}, false, err
	}
	return q, true, nil
}

/* ====================== RELATIONS ====================== */

// LoadAnswers fills q.Answers from the store. It needs an active unit of
// work; outside one it fails with ErrDetachedAccess instead of returning an
// empty collection.
func (r *QuestionRepository) LoadAnswers(uow *UnitOfWork, q *model.Question) ([]model.Answer, error) {
	if !uow.Active() {
		return nil, ErrDetachedAccess
	}
	answers := []model.Answer{}
	if q.HasIdentity() {
		if err := uow.tx.Where("answer_question_id = ?", q.QuestionID).
			Order("answer_id ASC").
			Find(&answers).Error; err != nil {
			return nil, err
		}
	}
	q.Answers = answers
	return answers, nil
}

// FindByIDWithAnswers is the eager form of FindByID + LoadAnswers.
func (r *QuestionRepository) FindByIDWithAnswers(ctx context.Context, id uint) (model.Question, bool, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return model.Question{}, false, err
	}
	var q model.Question
	err = db.Preload("Answers", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("answer_id ASC")
	}).Where("question_id = ?", id).First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Question{}, false, nil
		}
		return model.Question{}, false, err
	}
	if q.Answers == nil {
		q.Answers = []model.Answer{}
	}
	return q, true, nil
}

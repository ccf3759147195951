// file: internals/features/board/repository/store.go
package repository

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Store is the session object every access goes through. It is built once
// at startup around the connection pool and handed to whoever needs it.
type Store struct {
	DB        *gorm.DB
	Questions *QuestionRepository
	Answers   *AnswerRepository
}

func NewStore(db *gorm.DB) *Store {
	v := validator.New()
	return &Store{
		DB:        db,
		Questions: &QuestionRepository{binding: binding{db: db}, validate: v},
		Answers:   &AnswerRepository{binding: binding{db: db}, validate: v},
	}
}

var errManagedUnitOfWork = errors.New("unit of work is managed by InUnitOfWork")

/* =========================================================
   UNIT OF WORK
   ========================================================= */

// UnitOfWork is one open transaction. Lazy relationship loads are only valid
// while it is active. Not safe for concurrent use.
type UnitOfWork struct {
	tx      *gorm.DB
	closed  bool
	managed bool
}

func (u *UnitOfWork) Active() bool { return u != nil && u.tx != nil && !u.closed }

func (u *UnitOfWork) Commit() error {
	if !u.Active() {
		return ErrDetachedAccess
	}
	if u.managed {
		return errManagedUnitOfWork
	}
	u.closed = true
	return u.tx.Commit().Error
}

func (u *UnitOfWork) Rollback() error {
	if !u.Active() {
		return ErrDetachedAccess
	}
	if u.managed {
		return errManagedUnitOfWork
	}
	u.closed = true
	return u.tx.Rollback().Error
}

// Begin opens a unit of work the caller must Commit or Rollback.
func (s *Store) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{tx: tx}, nil
}

// InUnitOfWork runs fn inside one transaction: committed when fn returns nil,
// rolled back otherwise. The unit of work is detached once fn returns.
func (s *Store) InUnitOfWork(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		uow := &UnitOfWork{tx: tx, managed: true}
		defer func() { uow.closed = true }()
		return fn(uow)
	})
}

// binding is the connection a repository runs on: the root session, or a
// unit of work when the repository was obtained through In.
type binding struct {
	db    *gorm.DB
	uow   *UnitOfWork
	bound bool
}

func (b binding) conn(ctx context.Context) (*gorm.DB, error) {
	if !b.bound {
		return b.db.WithContext(ctx), nil
	}
	if !b.uow.Active() {
		return nil, ErrDetachedAccess
	}
	return b.uow.tx.WithContext(ctx), nil
}

package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sbb_backend/internals/features/board/dto"
	"sbb_backend/internals/features/board/repository"
	helper "sbb_backend/internals/helpers"
)

var (
	questionColumns = []string{"question_id", "question_subject", "question_content", "question_create_date"}
	answerColumns   = []string{"answer_id", "answer_content", "answer_create_date", "answer_question_id"}
	fixedDate       = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
)

type envelope[T any] struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code"`
	Errors     map[string][]string `json:"errors"`
	Data       T                   `json:"data"`
	Pagination helper.Pagination   `json:"pagination"`
}

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	store := repository.NewStore(db)

	app := fiber.New()
	mc := NewMainController()
	app.Get("/", mc.Root)
	app.Get("/sbb", mc.Index)
	qc := NewQuestionController(store, log)
	app.Get("/question/list", qc.List)
	app.Get("/question/detail/:id", qc.Detail)
	app.Post("/question/create", qc.Create)
	app.Put("/question/:id", qc.Update)
	app.Delete("/question/:id", qc.Delete)
	ac := NewAnswerController(store, log)
	app.Post("/answer/create/:id", ac.Create)
	app.Get("/answer/:id", ac.Get)
	return app, mock
}

func rx(s string) string { return regexp.QuoteMeta(s) }

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) envelope[T] {
	t.Helper()
	defer resp.Body.Close()
	var out envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMainController(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/question/list", resp.Header.Get(fiber.HeaderLocation))

	resp = doJSON(t, app, http.MethodGet, "/sbb", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, Greeting, string(body))
}

func TestQuestionController_List(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(rx(`SELECT count(*) FROM "questions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(rx(`SELECT * FROM "questions" ORDER BY question_id DESC LIMIT`)).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(2, "스프링부트 모델 질문입니다.", "id는 자동으로 생성되나요?", fixedDate).
			AddRow(1, "sbb가 무엇인가요?", "sbb에 대해서 알고 싶습니다.", fixedDate))

	resp := doJSON(t, app, http.MethodGet, "/question/list?page=1&per_page=10", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[[]dto.QuestionResponse](t, resp)
	assert.True(t, out.Success)
	require.Len(t, out.Data, 2)
	assert.EqualValues(t, 2, out.Data[0].ID)
	assert.EqualValues(t, 2, out.Pagination.Total)
	assert.Equal(t, 1, out.Pagination.TotalPages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_DetailLoadsAnswers(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(2, "스프링부트 모델 질문입니다.", "id는 자동으로 생성되나요?", fixedDate))
	mock.ExpectQuery(rx(`SELECT * FROM "answers" WHERE answer_question_id = $1 ORDER BY answer_id ASC`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(answerColumns).
			AddRow(1, "네 자동으로 생성됩니다.", fixedDate, 2))
	mock.ExpectCommit()

	resp := doJSON(t, app, http.MethodGet, "/question/detail/2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.QuestionResponse](t, resp)
	assert.Equal(t, "스프링부트 모델 질문입니다.", out.Data.Subject)
	require.Len(t, out.Data.Answers, 1)
	assert.Equal(t, "네 자동으로 생성됩니다.", out.Data.Answers[0].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_DetailMissing(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WillReturnRows(sqlmock.NewRows(questionColumns))
	mock.ExpectCommit()

	resp := doJSON(t, app, http.MethodGet, "/question/detail/99", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[any](t, resp).ErrorCode)

	resp = doJSON(t, app, http.MethodGet, "/question/detail/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_Create(t *testing.T) {
	app, mock := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/question/create", `{"subject":"   ","content":"본문"}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	out := decode[any](t, resp)
	assert.Equal(t, []string{"required"}, out.Errors["subject"])

	mock.ExpectQuery(rx(`INSERT INTO "questions" ("question_subject","question_content","question_create_date") VALUES ($1,$2,$3) RETURNING "question_id"`)).
		WithArgs("sbb가 무엇인가요?", "sbb에 대해서 알고 싶습니다.", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).AddRow(3))

	resp = doJSON(t, app, http.MethodPost, "/question/create", `{"subject":"sbb가 무엇인가요?","content":"sbb에 대해서 알고 싶습니다."}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.QuestionResponse](t, resp)
	assert.EqualValues(t, 3, created.Data.ID)
	assert.False(t, created.Data.CreateDate.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_Update(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(1, "sbb가 무엇인가요?", "sbb에 대해서 알고 싶습니다.", fixedDate))
	mock.ExpectExec(rx(`UPDATE "questions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := doJSON(t, app, http.MethodPut, "/question/1", `{"subject":"수정된 제목","content":"sbb에 대해서 알고 싶습니다."}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.QuestionResponse](t, resp)
	assert.EqualValues(t, 1, out.Data.ID)
	assert.Equal(t, "수정된 제목", out.Data.Subject)
	assert.True(t, fixedDate.Equal(out.Data.CreateDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_DeleteRestrictedByAnswers(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(2, "스프링부트 모델 질문입니다.", "id는 자동으로 생성되나요?", fixedDate))
	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT count(*) FROM "answers" WHERE answer_question_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	resp := doJSON(t, app, http.MethodDelete, "/question/2", "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionController_Delete(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(1, "sbb가 무엇인가요?", "sbb에 대해서 알고 싶습니다.", fixedDate))
	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT count(*) FROM "answers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(rx(`DELETE FROM "questions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := doJSON(t, app, http.MethodDelete, "/question/1", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerController_CreateUnderMissingQuestion(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT count(*) FROM "questions" WHERE question_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	resp := doJSON(t, app, http.MethodPost, "/answer/create/7", `{"content":"늦은 답변"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerController_Create(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(rx(`SELECT count(*) FROM "questions" WHERE question_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(rx(`INSERT INTO "answers"`)).
		WithArgs("네 자동으로 생성됩니다.", sqlmock.AnyArg(), 2).
		WillReturnRows(sqlmock.NewRows([]string{"answer_id"}).AddRow(1))
	mock.ExpectCommit()

	resp := doJSON(t, app, http.MethodPost, "/answer/create/2", `{"content":"네 자동으로 생성됩니다."}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[dto.AnswerResponse](t, resp)
	assert.EqualValues(t, 1, out.Data.ID)
	assert.EqualValues(t, 2, out.Data.QuestionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerController_Get(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(rx(`SELECT * FROM "answers" WHERE answer_id = $1`)).
		WillReturnRows(sqlmock.NewRows(answerColumns).
			AddRow(1, "네 자동으로 생성됩니다.", fixedDate, 2))
	mock.ExpectQuery(rx(`SELECT * FROM "questions" WHERE "questions"."question_id" = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(2, "스프링부트 모델 질문입니다.", "id는 자동으로 생성되나요?", fixedDate))

	resp := doJSON(t, app, http.MethodGet, "/answer/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.AnswerResponse](t, resp)
	require.NotNil(t, out.Data.Question)
	assert.Equal(t, "스프링부트 모델 질문입니다.", out.Data.Question.Subject)

	mock.ExpectQuery(rx(`SELECT * FROM "answers" WHERE answer_id = $1`)).
		WillReturnRows(sqlmock.NewRows(answerColumns))
	resp = doJSON(t, app, http.MethodGet, "/answer/5", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

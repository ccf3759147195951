package questions

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"sbb_backend/internals/features/board/model"
	"sbb_backend/internals/features/board/repository"
)

type QuestionSeed struct {
	Subject string   `json:"subject"`
	Content string   `json:"content"`
	Answers []string `json:"answers"`
}

func ReadSeedFile(filePath string) ([]QuestionSeed, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seeds []QuestionSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return seeds, nil
}

// SeedQuestionsFromJSON saves every question whose subject is not stored yet,
// together with its answers. It returns how many questions were inserted.
func SeedQuestionsFromJSON(ctx context.Context, store *repository.Store, log *logrus.Logger, filePath string) (int, error) {
	log.WithField("file", filePath).Info("reading question seeds")

	seeds, err := ReadSeedFile(filePath)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, s := range seeds {
		_, exists, err := store.Questions.FindBySubject(ctx, s.Subject)
		if err != nil {
			return inserted, err
		}
		if exists {
			log.WithField("subject", s.Subject).Debug("question already present, skipped")
			continue
		}

		q, err := store.Questions.Save(ctx, &model.Question{
			QuestionSubject: s.Subject,
			QuestionContent: s.Content,
		})
		if err != nil {
			return inserted, fmt.Errorf("seed question %q: %w", s.Subject, err)
		}
		for _, content := range s.Answers {
			if _, err := store.Answers.Save(ctx, &model.Answer{
				AnswerContent:    content,
				AnswerQuestionID: q.QuestionID,
			}); err != nil {
				return inserted, fmt.Errorf("seed answer for question %d: %w", q.QuestionID, err)
			}
		}
		inserted++
	}

	log.WithField("inserted", inserted).Info("question seeds done")
	return inserted, nil
}

package seeds

import (
	"context"

	"github.com/sirupsen/logrus"

	"sbb_backend/internals/features/board/repository"
	"sbb_backend/internals/seeds/questions"
)

func RunAllSeeds(ctx context.Context, store *repository.Store, log *logrus.Logger, questionsFile string) error {
	//* Board
	if _, err := questions.SeedQuestionsFromJSON(ctx, store, log, questionsFile); err != nil {
		return err
	}
	return nil
}

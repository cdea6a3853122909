// Package scheduler creates the monthly tournament automatically.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/services"
	"github.com/robfig/cron/v3"
)

const DefaultNameFormat = "%s %d"

type TournamentCreator interface {
	CreateTournament(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error)
}

type Scheduler struct {
	cron       *cron.Cron
	expr       string
	nameFormat string
	creator    TournamentCreator
	logger     *slog.Logger
	now        func() time.Time
}

// New returns a scheduler running on the standard 5-field cron expression. An empty
// expression disables the job. nameFormat receives the month name and the year.
func New(expr, nameFormat string, creator TournamentCreator, logger *slog.Logger) *Scheduler {
	if nameFormat == "" {
		nameFormat = DefaultNameFormat
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		expr:       expr,
		nameFormat: nameFormat,
		creator:    creator,
		logger:     logger.With(slog.String("component", "scheduler")),
		now:        time.Now,
	}
}

func (s *Scheduler) Start() error {
	if s.expr == "" {
		s.logger.Info("auto scheduling disabled")
		return nil
	}
	_, err := s.cron.AddFunc(s.expr, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("auto scheduling run failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid auto schedule expression %q: %w", s.expr, err)
	}

	s.cron.Start()
	s.logger.Info("auto scheduling started", slog.String("cron", s.expr))
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("auto scheduling stopped")
}

// RunOnce creates the tournament of the current month. An existing tournament
// or an incomplete roster is not an error.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := s.now()
	year, month := now.Year(), int(now.Month())

	input := services.CreateTournamentInput{
		Name:  fmt.Sprintf(s.nameFormat, now.Month().String(), year),
		Year:  year,
		Month: month,
	}

	tournament, err := s.creator.CreateTournament(ctx, input)
	switch {
	case err == nil:
		s.logger.Info("monthly tournament created",
			slog.Int("tournament_id", tournament.ID),
			slog.String("name", tournament.Name),
		)
		return nil
	case errors.Is(err, services.ErrDuplicateTournament):
		s.logger.Info("monthly tournament already exists", slog.Int("year", year), slog.Int("month", month))
		return nil
	case errors.Is(err, services.ErrRosterIncomplete):
		s.logger.Warn("monthly tournament skipped, roster incomplete", slog.Any("error", err))
		return nil
	default:
		return err
	}
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/analytics"
	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/roomsplit/internal/settlement"
	"golang.org/x/sync/errgroup"
)

// NewExpense is raw user input for a new expense. Date may be empty, meaning
// today.
type NewExpense struct {
	Roommate    string `json:"roommate"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ConfirmFunc is asked before a destructive operation; false aborts it.
type ConfirmFunc func(models.Expense) bool

// State is everything a client shows on startup.
type State struct {
	Expenses   []models.Expense       `json:"expenses"`
	Archives   []models.ArchivedMonth `json:"archives"`
	Settlement models.Settlement      `json:"settlement"`
	Analytics  analytics.Report       `json:"analytics"`
}

type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	roster      *models.Roster
	log         logging.Logger
	recorder    Recorder
	now         Clock
}

type Option func(*ExpenseService)

func WithClock(c Clock) Option { return func(s *ExpenseService) { s.now = c } }

func WithRecorder(r Recorder) Option {
	return func(s *ExpenseService) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(s *ExpenseService) {
		if l != nil {
			s.log = l
		}
	}
}

func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager, roster *models.Roster, opts ...Option) *ExpenseService {
	s := &ExpenseService{
		db:          db,
		repomanager: m,
		roster:      roster,
		log:         logging.Nop(),
		recorder:    nopRecorder{},
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *ExpenseService) Roster() *models.Roster { return s.roster }

// List returns the current month's expenses, newest first.
func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return s.repomanager.Expenses(s.db).List(ctx)
}

func (s *ExpenseService) Get(ctx context.Context, id string) (models.Expense, error) {
	return s.repomanager.Expenses(s.db).Get(ctx, id)
}

// Validate turns raw input into an expense without storing it.
func (s *ExpenseService) Validate(in NewExpense) (models.Expense, error) {
	roommate := strings.TrimSpace(in.Roommate)
	if err := s.roster.Validate(roommate); err != nil {
		return models.Expense{}, err
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return models.Expense{}, fmt.Errorf("%w: %w", common.ErrValidation, common.ErrDescriptionRequired)
	}

	amount, err := models.ParseAmount(in.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	date := models.DateOf(s.now())
	if strings.TrimSpace(in.Date) != "" {
		if date, err = models.ParseDate(in.Date); err != nil {
			return models.Expense{}, err
		}
	}

	return models.Expense{
		Roommate:    roommate,
		Amount:      amount,
		Description: desc,
		Date:        date,
	}, nil
}

// Add validates and stores a new expense.
func (s *ExpenseService) Add(ctx context.Context, in NewExpense) (models.Expense, error) {
	e, err := s.Validate(in)
	if err != nil {
		return models.Expense{}, err
	}

	created, err := s.repomanager.Expenses(s.db).Create(ctx, e)
	if err != nil {
		return models.Expense{}, err
	}

	s.recorder.ExpenseAdded()
	s.log.Info(ctx, "expense added", "id", created.ID, "roommate", created.Roommate, "amount", created.Amount.StringFixed(2))
	return created, nil
}

// Delete removes the expense once confirm approves it. A nil confirm is
// treated as a refusal.
func (s *ExpenseService) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	repo := s.repomanager.Expenses(s.db)

	e, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if confirm == nil || !confirm(e) {
		return common.ErrNotConfirmed
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info(ctx, "expense deleted", "id", id)
	return nil
}

// Settlement computes the live settlement of the current expenses.
func (s *ExpenseService) Settlement(ctx context.Context) (models.Settlement, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.Settlement{}, err
	}
	return settlement.Compute(list, s.roster)
}

// Load fetches current expenses and archives concurrently and derives the
// settlement and analytics from them.
func (s *ExpenseService) Load(ctx context.Context) (State, error) {
	var st State

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.repomanager.Expenses(s.db).List(gctx)
		st.Expenses = list
		return err
	})
	g.Go(func() error {
		list, err := s.repomanager.Archives(s.db).List(gctx)
		st.Archives = list
		return err
	})
	if err := g.Wait(); err != nil {
		return State{}, err
	}

	stl, err := settlement.Compute(st.Expenses, s.roster)
	if err != nil {
		return State{}, err
	}
	st.Settlement = stl
	st.Analytics = analytics.Aggregate(st.Expenses, st.Archives, s.roster)
	return st, nil
}

// EndMonth snapshots the current expenses with their settlement into the
// archive and clears them, atomically. It returns ErrNothingToArchive when
// there is nothing to close.
func (s *ExpenseService) EndMonth(ctx context.Context) (models.ArchivedMonth, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.ArchivedMonth{}, err
	}
	if len(list) == 0 {
		return models.ArchivedMonth{}, common.ErrNothingToArchive
	}

	stl, err := settlement.Compute(list, s.roster)
	if err != nil {
		return models.ArchivedMonth{}, err
	}

	var archived models.ArchivedMonth
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.repomanager.Archives(tx).Create(ctx, models.ArchivedMonth{
			MonthDate:  models.DateOf(s.now()),
			Expenses:   list,
			Settlement: stl,
		})
		if err != nil {
			return err
		}

		repo := s.repomanager.Expenses(tx)
		for _, e := range list {
			if err := repo.Delete(ctx, e.ID); err != nil {
				return fmt.Errorf("clear expense %s: %w", e.ID, err)
			}
		}

		archived = a
		return nil
	})
	if err != nil {
		return models.ArchivedMonth{}, err
	}

	s.recorder.MonthArchived()
	s.log.Info(ctx, "month archived", "id", archived.ID, "month", archived.MonthDateString(), "expenses", len(list))
	return archived, nil
}

// Archives lists archived months, most recent first.
func (s *ExpenseService) Archives(ctx context.Context) ([]models.ArchivedMonth, error) {
	return s.repomanager.Archives(s.db).List(ctx)
}

func (s *ExpenseService) Archive(ctx context.Context, id string) (models.ArchivedMonth, error) {
	return s.repomanager.Archives(s.db).Get(ctx, id)
}

// Analytics aggregates the current month with the archive.
func (s *ExpenseService) Analytics(ctx context.Context) (analytics.Report, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	return st.Analytics, nil
}

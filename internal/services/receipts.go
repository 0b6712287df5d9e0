package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roomsplit/internal/blob"
	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxReceiptSize is 5 MiB.
const DefaultMaxReceiptSize int64 = 5 << 20

// ReceiptService attaches receipt images to current expenses.
type ReceiptService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blob.Store
	maxSize     int64
	log         logging.Logger
	recorder    Recorder
}

func NewReceiptService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store, maxSize int64, log logging.Logger, rec Recorder) *ReceiptService {
	if maxSize <= 0 {
		maxSize = DefaultMaxReceiptSize
	}
	if log == nil {
		log = logging.Nop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &ReceiptService{
		db:          db,
		repomanager: m,
		store:       store,
		maxSize:     maxSize,
		log:         log,
		recorder:    rec,
	}
}

func (s *ReceiptService) MaxSize() int64 { return s.maxSize }

// CheckImage validates a receipt upload without touching storage and
// returns the sniffed content type.
func (s *ReceiptService) CheckImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %w", common.ErrReceiptRejected, common.ErrReceiptNotImage)
	}
	if int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%w: %w: %d bytes, limit %d", common.ErrReceiptRejected, common.ErrReceiptTooLarge, len(data), s.maxSize)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %w: %s", common.ErrReceiptRejected, common.ErrReceiptNotImage, mt.String())
	}
	return mt.String(), nil
}

// Attach stores data as the receipt of expense id, replacing any previous
// receipt. The old object is deleted before the new one is uploaded.
func (s *ReceiptService) Attach(ctx context.Context, id, filename string, data []byte) (models.Expense, error) {
	contentType, err := s.CheckImage(data)
	if err != nil {
		return models.Expense{}, err
	}

	repo := s.repomanager.Expenses(s.db)
	e, err := repo.Get(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}

	if e.HasReceipt() {
		if err := s.store.Delete(ctx, e.ReceiptRef); err != nil {
			return models.Expense{}, fmt.Errorf("delete previous receipt: %w", err)
		}
	}

	ref, err := s.store.Upload(ctx, blob.ReceiptPath(id, filename), data, contentType)
	if err != nil {
		return models.Expense{}, fmt.Errorf("upload receipt: %w", err)
	}

	if err := repo.UpdateReceipt(ctx, id, ref); err != nil {
		return models.Expense{}, err
	}

	s.recorder.ReceiptUploaded()
	s.log.Info(ctx, "receipt attached", "id", id, "ref", ref, "size", len(data))

	e.ReceiptRef = ref
	return e, nil
}

// Detach deletes the receipt object and clears the reference.
func (s *ReceiptService) Detach(ctx context.Context, id string) error {
	repo := s.repomanager.Expenses(s.db)
	e, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !e.HasReceipt() {
		return common.ErrNoReceipt
	}

	if err := s.store.Delete(ctx, e.ReceiptRef); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	if err := repo.UpdateReceipt(ctx, id, ""); err != nil {
		return err
	}

	s.log.Info(ctx, "receipt removed", "id", id)
	return nil
}

// URL resolves the receipt of expense id to a fetchable URL.
func (s *ReceiptService) URL(ctx context.Context, id string) (string, error) {
	e, err := s.repomanager.Expenses(s.db).Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !e.HasReceipt() {
		return "", common.ErrNoReceipt
	}
	return s.store.Resolve(ctx, e.ReceiptRef)
}

package bills

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	billRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/bill"
	"github.com/m04kA/SMC-HotelService/internal/service/bills/models"
)

// Service сервис чтения журнала счетов
type Service struct {
	billRepo BillRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(billRepo BillRepository, logger Logger) *Service {
	return &Service{
		billRepo: billRepo,
		logger:   logger,
	}
}

// List возвращает счета от новых к старым
func (s *Service) List(ctx context.Context, req *models.ListBillsRequest) (*models.BillListResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	s.logger.Info("List: fetching bills, from=%s, to=%s, limit=%d",
		formatTime(filter.From), formatTime(filter.To), filter.Limit)

	bills, err := s.billRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bills", len(bills))
	return models.FromDomainBillList(bills), nil
}

// GetByID получает счёт по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, billRepo.ErrBillNotFound) {
			s.logger.Warn("GetByID: bill id=%s not found", id)
			return nil, ErrBillNotFound
		}
		s.logger.Error("GetByID: repository error for bill id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBill(bill), nil
}

func toDomainFilter(req *models.ListBillsRequest) (domain.BillFilter, error) {
	filter := domain.BillFilter{Limit: domain.DefaultBillsLimit}
	if req == nil {
		return filter, nil
	}

	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return filter, ErrInvalidTimeRange
	}
	filter.From = req.From
	filter.To = req.To

	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > domain.MaxBillsLimit {
			return filter, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxBillsLimit)
		}
		filter.Limit = *req.Limit
	}

	return filter, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

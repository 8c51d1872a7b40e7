package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/bill"
)

// BillRepository журнал счетов в памяти
type BillRepository struct {
	s *Store
}

// Create добавляет счёт в журнал
func (r *BillRepository) Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	err := r.s.write(ctx, func() (func(), error) {
		b.CreatedAt = r.s.now()

		stored := cloneBill(b)
		r.s.bills = append(r.s.bills, stored)
		r.s.billByID[b.ID] = stored

		return func() {
			r.s.bills = r.s.bills[:len(r.s.bills)-1]
			delete(r.s.billByID, b.ID)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID возвращает копию счёта
func (r *BillRepository) GetByID(_ context.Context, id string) (*domain.Bill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.billByID[id]
	if !ok {
		return nil, bill.ErrBillNotFound
	}
	return cloneBill(b), nil
}

// List возвращает счета от новых к старым
func (r *BillRepository) List(_ context.Context, filter domain.BillFilter) ([]*domain.Bill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bills := make([]*domain.Bill, 0, len(r.s.bills))
	// обратный порядок добавления, затем стабильная сортировка по времени выезда
	for i := len(r.s.bills) - 1; i >= 0; i-- {
		b := r.s.bills[i]
		if filter.From != nil && b.CheckOutTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.CheckOutTime.After(*filter.To) {
			continue
		}
		bills = append(bills, cloneBill(b))
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].CheckOutTime.After(bills[j].CheckOutTime)
	})

	if filter.Limit > 0 && len(bills) > filter.Limit {
		bills = bills[:filter.Limit]
	}
	return bills, nil
}

func cloneBill(b *domain.Bill) *domain.Bill {
	c := *b
	if b.Guests != nil {
		c.Guests = append([]domain.Guest(nil), b.Guests...)
	}
	return &c
}

package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// RoomRepository комнаты в памяти, ошибки совпадают с Postgres-репозиторием
type RoomRepository struct {
	s *Store
}

// Create добавляет комнату
func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) (*domain.Room, error) {
	err := r.s.write(ctx, func() (func(), error) {
		if _, exists := r.s.numbers[rm.Number]; exists {
			return nil, room.ErrRoomNumberExists
		}

		now := r.s.now()
		rm.CreatedAt = now
		rm.UpdatedAt = now

		r.s.rooms[rm.ID] = rm.Clone()
		r.s.numbers[rm.Number] = rm.ID

		return func() {
			delete(r.s.rooms, rm.ID)
			delete(r.s.numbers, rm.Number)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return rm, nil
}

// GetByID возвращает копию комнаты
func (r *RoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	return rm.Clone(), nil
}

// List возвращает комнаты, отсортированные по номеру
func (r *RoomRepository) List(_ context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rooms := make([]*domain.Room, 0, len(r.s.rooms))
	for _, rm := range r.s.rooms {
		if filter.Status != nil && rm.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && rm.Type != *filter.Type {
			continue
		}
		rooms = append(rooms, rm.Clone())
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number < rooms[j].Number
	})
	return rooms, nil
}

// Update сохраняет статус, тарифы и проживание комнаты
func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	return r.s.write(ctx, func() (func(), error) {
		prev, ok := r.s.rooms[rm.ID]
		if !ok {
			return nil, room.ErrRoomNotFound
		}

		next := prev.Clone()
		next.Status = rm.Status
		next.Pricing = rm.Pricing
		next.Stay = rm.Clone().Stay
		next.UpdatedAt = r.s.now()
		rm.UpdatedAt = next.UpdatedAt

		r.s.rooms[rm.ID] = next
		return func() {
			r.s.rooms[rm.ID] = prev
		}, nil
	})
}

// Delete удаляет комнату
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func() (func(), error) {
		prev, ok := r.s.rooms[id]
		if !ok {
			return nil, room.ErrRoomNotFound
		}

		delete(r.s.rooms, id)
		delete(r.s.numbers, prev.Number)
		return func() {
			r.s.rooms[id] = prev
			r.s.numbers[prev.Number] = id
		}, nil
	})
}

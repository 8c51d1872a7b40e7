// Package memory хранилище комнат и счетов в памяти процесса.
// Используется драйвером storage.driver = "memory" и в тестах.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type txKey struct{}

// transaction журнал отката: изменения применяются сразу,
// при ошибке действия выполняются в обратном порядке
type transaction struct {
	id              int64
	rollbackActions []func()
}

// Store данные в памяти с транзакциями в стиле TransactionManager
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // пишущие транзакции выполняются по одной

	rooms    map[string]*domain.Room
	numbers  map[string]string // номер комнаты -> id
	bills    []*domain.Bill    // в порядке добавления
	billByID map[string]*domain.Bill

	nextTxID int64
	now      func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		rooms:    make(map[string]*domain.Room),
		numbers:  make(map[string]string),
		billByID: make(map[string]*domain.Bill),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Rooms репозиторий комнат поверх хранилища
func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{s: s}
}

// Bills журнал счетов поверх хранилища
func (s *Store) Bills() *BillRepository {
	return &BillRepository{s: s}
}

// Do выполняет fn в транзакции
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции; транзакции хранилища всегда сериализуемы
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

func (s *Store) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	// вложенный вызов переиспользует внешнюю транзакцию
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	s.nextTxID++
	tx := &transaction{id: s.nextTxID}
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.rollback(tx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		s.rollback(tx)
		return err
	}

	return nil
}

func (s *Store) rollback(tx *transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(tx.rollbackActions) - 1; i >= 0; i-- {
		tx.rollbackActions[i]()
	}
	tx.rollbackActions = nil
}

// write применяет изменение под блокировкой данных.
// Вне транзакции изменение ждёт завершения текущей пишущей транзакции.
// apply возвращает действие отката или nil
func (s *Store) write(ctx context.Context, apply func() (func(), error)) error {
	tx := txFromContext(ctx)
	if tx == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	undo, err := apply()
	if err != nil {
		return err
	}
	if tx != nil && undo != nil {
		tx.rollbackActions = append(tx.rollbackActions, undo)
	}
	return nil
}

func txFromContext(ctx context.Context) *transaction {
	tx, _ := ctx.Value(txKey{}).(*transaction)
	return tx
}

func (s *Store) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("memory.Store{rooms: %d, bills: %d}", len(s.rooms), len(s.bills))
}

package keylock

import "sync"

// KeyLock взаимное исключение по строковому ключу (например, ID комнаты)
// Запись о ключе удаляется, когда его больше никто не держит и не ждёт
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock захватывает блокировку ключа и возвращает функцию освобождения
func (l *KeyLock) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len количество ключей, которые сейчас удерживаются или ожидаются
func (l *KeyLock) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

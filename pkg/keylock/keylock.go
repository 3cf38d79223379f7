package keylock

import "sync"

// KeyLock сериализует операции по строковому ключу.
// Операции с разными ключами выполняются независимо,
// с одним ключом - строго по очереди.
//
// Используется для сериализации commit-операций по calendarID:
// удаленное хранилище не поддерживает транзакции, поэтому
// одновременные попытки бронирования одного календаря выстраиваются
// в очередь внутри процесса.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает новый KeyLock
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock захватывает блокировку по ключу и возвращает функцию освобождения
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		// Запись удаляется, когда на нее больше никто не претендует
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Do выполняет fn под блокировкой по ключу
func (l *KeyLock) Do(key string, fn func() error) error {
	unlock := l.Lock(key)
	defer unlock()
	return fn()
}

package memoryrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/pg"
)

// Store keeps every table in process memory behind one RWMutex. Each
// mutation registers an undo step with the transaction in its context so a
// failed unit can be reverted.
type Store struct {
	mu           sync.RWMutex
	wallets      map[uuid.UUID]*domain.Wallet
	transactions map[uuid.UUID]*domain.Transaction
	txSeq        map[uuid.UUID]int
	interests    map[uuid.UUID]*domain.Interest
	quotes       map[uuid.UUID]*domain.Quote
	quoteSeq     map[uuid.UUID]int
	jobs         map[uuid.UUID]*domain.Job
	seq          int
}

func NewStore() *Store {
	return &Store{
		wallets:      make(map[uuid.UUID]*domain.Wallet),
		transactions: make(map[uuid.UUID]*domain.Transaction),
		txSeq:        make(map[uuid.UUID]int),
		interests:    make(map[uuid.UUID]*domain.Interest),
		quotes:       make(map[uuid.UUID]*domain.Quote),
		quoteSeq:     make(map[uuid.UUID]int),
		jobs:         make(map[uuid.UUID]*domain.Job),
	}
}

func (s *Store) nextSeq() int {
	s.seq++
	return s.seq
}

type journalKey struct{}

type journal struct {
	mu    sync.Mutex
	undos []func()
}

// record appends undo to the journal of ctx. Outside a transaction the
// mutation is final and undo is dropped. Callers hold s.mu.
func record(ctx context.Context, undo func()) {
	j, ok := ctx.Value(journalKey{}).(*journal)
	if !ok {
		return
	}
	j.mu.Lock()
	j.undos = append(j.undos, undo)
	j.mu.Unlock()
}

// TxManager gives the memory store all-or-nothing units of work.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin runs fn and reverts every mutation it made when fn fails. A unit
// whose fn returned nil is committed even if ctx ends afterwards. Nested
// calls join the outer unit.
func (m *TxManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		m.rollback(j)
		return err
	}
	return nil
}

func (m *TxManager) rollback(j *journal) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.undos) - 1; i >= 0; i-- {
		j.undos[i]()
	}
	j.undos = nil
}

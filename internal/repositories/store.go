// Package repositories holds the in-memory store for generated transactions
// and their analyses. There is no persistence behind it: records live for the
// lifetime of the process, last write wins, and only an explicit Clear
// removes them.
package repositories

import (
	"sync"

	"finwatch/internal/models"
)

// Store is the keyed store shared by the API handlers.
type Store interface {
	SaveTransaction(tx *models.Transaction)
	Transaction(id string) (*models.Transaction, bool)
	SaveAnalysis(res *models.AnalysisResult)
	Analysis(transactionID string) (*models.AnalysisResult, bool)
	// Counts reports the current number of transactions and analyses.
	Counts() (transactions, analyses int)
	// Clear empties both maps and returns the counts before clearing.
	Clear() (transactions, analyses int)
}

type memoryStore struct {
	mu           sync.RWMutex
	transactions map[string]*models.Transaction
	analyses     map[string]*models.AnalysisResult
}

// NewMemoryStore creates an empty store safe for concurrent use.
func NewMemoryStore() Store {
	return &memoryStore{
		transactions: make(map[string]*models.Transaction),
		analyses:     make(map[string]*models.AnalysisResult),
	}
}

func (s *memoryStore) SaveTransaction(tx *models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = tx
}

func (s *memoryStore) Transaction(id string) (*models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	return tx, ok
}

func (s *memoryStore) SaveAnalysis(res *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[res.TransactionID] = res
}

func (s *memoryStore) Analysis(transactionID string) (*models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.analyses[transactionID]
	return res, ok
}

func (s *memoryStore) Counts() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions), len(s.analyses)
}

func (s *memoryStore) Clear() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	transactions, analyses := len(s.transactions), len(s.analyses)
	s.transactions = make(map[string]*models.Transaction)
	s.analyses = make(map[string]*models.AnalysisResult)
	return transactions, analyses
}

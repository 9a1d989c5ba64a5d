package repositories

import (
	"fmt"
	"sync"
	"testing"

	"finwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndLookup(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Transaction("TXN-MISSING")
	assert.False(t, ok)

	tx := &models.Transaction{ID: "TXN-AAAA0001", Amount: 100}
	store.SaveTransaction(tx)

	got, ok := store.Transaction("TXN-AAAA0001")
	require.True(t, ok)
	assert.Equal(t, tx, got)

	// Last write wins.
	newer := &models.Transaction{ID: "TXN-AAAA0001", Amount: 200}
	store.SaveTransaction(newer)
	got, _ = store.Transaction("TXN-AAAA0001")
	assert.Equal(t, 200.0, got.Amount)

	res := &models.AnalysisResult{TransactionID: "TXN-AAAA0001", RiskScore: 42}
	store.SaveAnalysis(res)
	gotRes, ok := store.Analysis("TXN-AAAA0001")
	require.True(t, ok)
	assert.Equal(t, 42, gotRes.RiskScore)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("TXN-%08d", i)
		store.SaveTransaction(&models.Transaction{ID: id})
	}
	store.SaveAnalysis(&models.AnalysisResult{TransactionID: "TXN-00000000"})

	txCount, anCount := store.Clear()
	assert.Equal(t, 3, txCount)
	assert.Equal(t, 1, anCount)

	txCount, anCount = store.Counts()
	assert.Zero(t, txCount)
	assert.Zero(t, anCount)

	// Clearing an empty store reports zeros.
	txCount, anCount = store.Clear()
	assert.Zero(t, txCount)
	assert.Zero(t, anCount)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("TXN-%02d%06d", g, i)
				store.SaveTransaction(&models.Transaction{ID: id})
				store.SaveAnalysis(&models.AnalysisResult{TransactionID: id})
				_, _ = store.Transaction(id)
				_, _ = store.Counts()
			}
		}(g)
	}
	wg.Wait()

	txCount, anCount := store.Counts()
	assert.Equal(t, 1000, txCount)
	assert.Equal(t, 1000, anCount)
}

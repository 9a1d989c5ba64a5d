package analyzer

import (
	"fmt"
	"time"

	apperrors "finwatch/internal/errors"
	"finwatch/internal/models"
	"finwatch/internal/random"
	"finwatch/internal/risk"
)

// Score bounds and banding cut-offs.
const (
	baseScore = 50
	minScore  = 5
	maxScore  = 95

	veryHighBand = 80
	highBand     = 60
	mediumBand   = 40
	lowBand      = 20
)

// Service is the risk scoring narrator.
type Service interface {
	// Analyze scores a single transaction. Pure function of the transaction
	// and the random source; it keeps no cross-transaction state.
	Analyze(tx *models.Transaction) (*models.AnalysisResult, error)
	// AnalyzeBatch maps Analyze over a list of transactions.
	AnalyzeBatch(txs []*models.Transaction) ([]*models.AnalysisResult, error)
}

type service struct {
	rng random.Source
}

// NewService creates an analyzer backed by the given random source.
func NewService(rng random.Source) Service {
	if rng == nil {
		panic("random source is required")
	}
	return &service{rng: rng}
}

// evaluation carries the derived inputs every narrative helper needs.
type evaluation struct {
	tx        *models.Transaction
	tier      risk.Tier
	threshold float64
	amountStr string
	profile   string
	score     int
}

// customerProfile defaults to Medium when the transaction carries no profile.
func customerProfile(tx *models.Transaction) string {
	if tx.CustomerInfo.RiskProfile == "" {
		return models.ProfileMedium
	}
	return tx.CustomerInfo.RiskProfile
}

func (s *service) Analyze(tx *models.Transaction) (*models.AnalysisResult, error) {
	profile, ok := risk.AmountProfiles[tx.TransactionType]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tx.TransactionType, apperrors.ErrUnknownTransactionType)
	}

	// Countries outside the tier tables score like the low tier.
	tier, _ := risk.TierOf(tx.Country)

	score := baseScore

	if tx.RiskIndicator == models.RiskHigh {
		score += s.rng.IntBetween(20, 35)
	} else {
		score += s.rng.IntBetween(-20, 5)
	}

	switch tier {
	case risk.TierHigh:
		score += s.rng.IntBetween(10, 20)
	case risk.TierMedium:
		score += s.rng.IntBetween(5, 10)
	default:
		score += s.rng.IntBetween(-10, 5)
	}

	switch {
	case tx.Amount > profile.Threshold*5:
		score += s.rng.IntBetween(15, 25)
	case tx.Amount > profile.Threshold:
		score += s.rng.IntBetween(5, 15)
	}

	switch customerProfile(tx) {
	case models.ProfileHigh:
		score += s.rng.IntBetween(5, 15)
	case models.ProfileLow:
		score -= s.rng.IntBetween(5, 15)
	}

	score = clamp(score, minScore, maxScore)

	ev := &evaluation{
		tx:        tx,
		tier:      tier,
		threshold: profile.Threshold,
		amountStr: formatAmount(tx.Amount),
		profile:   customerProfile(tx),
		score:     score,
	}

	assessment, action := s.assess(ev)

	return &models.AnalysisResult{
		TransactionID:     tx.ID,
		RiskScore:         score,
		RiskAssessment:    assessment,
		RecommendedAction: action,
		Confidence:        s.confidence(score),
		Factors:           s.factors(ev),
		Reasoning:         s.reasoning(ev),
		GeneratedAt:       tx.Timestamp.Add(time.Duration(s.rng.IntBetween(1, 5)) * time.Minute),
		AgentAnalysis:     s.report(ev),
	}, nil
}

func (s *service) AnalyzeBatch(txs []*models.Transaction) ([]*models.AnalysisResult, error) {
	results := make([]*models.AnalysisResult, 0, len(txs))
	for i, tx := range txs {
		res, err := s.Analyze(tx)
		if err != nil {
			return nil, fmt.Errorf("analyze transaction %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *service) confidence(score int) int {
	if score > veryHighBand || score < lowBand {
		return s.rng.IntBetween(85, 98)
	}
	return s.rng.IntBetween(70, 90)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

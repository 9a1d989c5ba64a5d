package generator

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "finwatch/internal/errors"
	"finwatch/internal/models"
	"finwatch/internal/random"
	"finwatch/internal/risk"
)

// Service is the transaction synthesizer.
type Service interface {
	// Generate produces one transaction, honoring any explicit Options.
	Generate(opts Options) (*models.Transaction, error)
	// GenerateBatch produces count transactions with the given high-risk
	// fraction, sorted by timestamp descending. count <= 0 and fractions
	// outside [0, 1] are rejected, not clamped.
	GenerateBatch(count int, highRiskFraction float64) ([]*models.Transaction, error)
}

type service struct {
	rng random.Source
	now func() time.Time
}

// NewService creates a transaction synthesizer backed by the given source.
func NewService(rng random.Source) Service {
	if rng == nil {
		panic("random source is required")
	}
	return &service{rng: rng, now: time.Now}
}

func (s *service) Generate(opts Options) (*models.Transaction, error) {
	riskLevel := opts.RiskLevel
	switch riskLevel {
	case "":
		riskLevel = random.PickWeighted(s.rng, riskIndicators, riskIndicatorWeights)
	case models.RiskNormal, models.RiskHigh:
	default:
		return nil, fmt.Errorf("%q: %w", opts.RiskLevel, apperrors.ErrInvalidRiskLevel)
	}

	txType := opts.TransactionType
	if txType == "" {
		txType = random.PickWeighted(s.rng, models.TransactionTypes, transactionTypeWeights)
	} else if _, ok := risk.AmountProfiles[txType]; !ok {
		return nil, fmt.Errorf("%q: %w", opts.TransactionType, apperrors.ErrInvalidTransactionType)
	}

	country := opts.Country
	if country == "" {
		country = s.pickCountry(riskLevel)
	} else if _, ok := risk.TierOf(country); !ok {
		return nil, fmt.Errorf("%q: %w", opts.Country, apperrors.ErrInvalidCountry)
	}

	profile := risk.AmountProfiles[txType]
	lo, hi := profile.Range(riskLevel)
	amount := round2(lo + s.rng.Float64()*(hi-lo))

	var statusWeights, profileWeights []float64
	if riskLevel == models.RiskHigh {
		statusWeights, profileWeights = statusHighWeights, profileHighWeights
	} else {
		statusWeights, profileWeights = statusNormalWeights, profileNormalWeights
	}

	merchant := s.pickMerchant(txType)

	tx := &models.Transaction{
		ID:              newRef("TXN"),
		CustomerID:      newRef("CUST"),
		Amount:          amount,
		Currency:        models.DefaultCurrency,
		Country:         country,
		TransactionType: txType,
		RiskIndicator:   riskLevel,
		Timestamp:       s.pickTimestamp(),
		Status:          random.PickWeighted(s.rng, statuses, statusWeights),
		CustomerInfo: models.CustomerInfo{
			Name:        s.customerName(),
			AccountType: random.PickWeighted(s.rng, accountTypes, accountTypeWeights),
			RiskProfile: random.PickWeighted(s.rng, riskProfiles, profileWeights),
		},
		MerchantInfo: merchant,
	}
	tx.Description = s.description(txType, riskLevel, merchant)

	return tx, nil
}

func (s *service) GenerateBatch(count int, highRiskFraction float64) ([]*models.Transaction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%d: %w", count, apperrors.ErrInvalidCount)
	}
	if highRiskFraction < 0 || highRiskFraction > 1 {
		return nil, fmt.Errorf("%g: %w", highRiskFraction, apperrors.ErrInvalidFraction)
	}

	highRiskCount := int(float64(count) * highRiskFraction)

	out := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		level := models.RiskNormal
		if i < highRiskCount {
			level = models.RiskHigh
		}
		tx, err := s.Generate(Options{RiskLevel: level})
		if err != nil {
			return nil, fmt.Errorf("generate transaction %d: %w", i, err)
		}
		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

func (s *service) pickCountry(riskLevel string) string {
	var tier risk.Tier
	if riskLevel == models.RiskHigh {
		tier = random.PickWeighted(s.rng, highRiskTierOrder, highRiskTierWeights)
	} else {
		tier = random.PickWeighted(s.rng, normalTierOrder, normalTierWeights)
	}
	return random.Pick(s.rng, risk.Countries(tier))
}

func (s *service) pickMerchant(txType string) *models.MerchantInfo {
	if txType != models.TypePayment &&
		!(txType == models.TypeTransfer && random.Chance(s.rng, transferMerchantProbability)) {
		return nil
	}
	category := random.Pick(s.rng, merchantCategories)
	return &models.MerchantInfo{
		Name:     s.merchantName(category),
		Category: category,
	}
}

// pickTimestamp returns a UTC instant within the last 30 days.
func (s *service) pickTimestamp() time.Time {
	offset := time.Duration(s.rng.IntBetween(0, 30))*24*time.Hour +
		time.Duration(s.rng.IntBetween(0, 23))*time.Hour +
		time.Duration(s.rng.IntBetween(0, 59))*time.Minute +
		time.Duration(s.rng.IntBetween(0, 59))*time.Second
	return s.now().UTC().Add(-offset)
}

// newRef builds ids like TXN-9F2C41AB from the first uuid group.
func newRef(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

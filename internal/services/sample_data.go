package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	incomeShare        = 0.35
	businessHoursStart = 8
	businessHoursEnd   = 22
)

var expenseDescriptions = []string{
	"Groceries - %s",
	"Dinner at %s",
	"Online order - %s",
	"Utility bill - %s",
	"Subscription - %s",
}

type sampleDataGenerator struct {
	rng *rand.Rand
}

// NewSampleDataGenerator creates a generator of plausible ledger entries for
// local development seeding.
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateTransactions produces count entries spread over the last twelve
// months so every point of the monthly series gets data.
func (g *sampleDataGenerator) GenerateTransactions(ownerID uuid.UUID, count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		if g.rng.Float64() < incomeShare {
			transactions = append(transactions, g.incomeTransaction(ownerID))
		} else {
			transactions = append(transactions, g.expenseTransaction(ownerID))
		}
	}

	return transactions
}

func (g *sampleDataGenerator) incomeTransaction(ownerID uuid.UUID) models.Transaction {
	descriptions := []string{
		"Salary - " + gofakeit.Company(),
		"Freelance payment - " + gofakeit.Company(),
		"Dividend - " + gofakeit.Company(),
	}

	return models.Transaction{
		OwnerID:     ownerID,
		Description: descriptions[g.rng.Intn(len(descriptions))],
		Amount:      decimal.NewFromFloat(gofakeit.Price(1500, 8000)).Round(2),
		Kind:        models.TransactionKindIncome,
		OccurredAt:  g.randomTimestamp(),
	}
}

func (g *sampleDataGenerator) expenseTransaction(ownerID uuid.UUID) models.Transaction {
	template := expenseDescriptions[g.rng.Intn(len(expenseDescriptions))]

	return models.Transaction{
		OwnerID:     ownerID,
		Description: fmt.Sprintf(template, gofakeit.Company()),
		Amount:      decimal.NewFromFloat(gofakeit.Price(5, 600)).Round(2),
		Kind:        models.TransactionKindExpense,
		OccurredAt:  g.randomTimestamp(),
	}
}

// randomTimestamp picks a moment in the last year, clamped to waking hours so
// the data reads like real activity.
func (g *sampleDataGenerator) randomTimestamp() time.Time {
	now := time.Now().UTC()
	daysBack := g.rng.Intn(365)
	day := now.AddDate(0, 0, -daysBack)

	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	minute := g.rng.Intn(60)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

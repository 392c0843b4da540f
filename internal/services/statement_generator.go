package services

import (
	"fmt"
	"time"

	"olibranch/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type statementGenerator struct {
	faker *gofakeit.Faker
}

// NewStatementGenerator creates a new demo statement generator
func NewStatementGenerator() StatementGeneratorInterface {
	return &statementGenerator{
		faker: gofakeit.New(0),
	}
}

// statementLine is one fixed row of the demo statement
type statementLine struct {
	daysAgo     int
	description string
	amount      float64
	feeType     string
}

// The demo statement is deterministic: the same fee mix every time a bank is
// linked, so repeated analyses of it agree.
var demoStatement = []statementLine{
	{0, "Monthly Maintenance Fee", -15.00, "maintenance"},
	{1, "Overdraft Fee", -35.00, "overdraft"},
	{2, "ATM Withdrawal Fee", -3.50, "atm"},
	{3, "Wire Transfer Fee", -25.00, "wire"},
	{5, "Paper Statement Fee", -5.00, "statement"},
	{7, "Overdraft Fee", -35.00, "overdraft"},
	{10, "Foreign Transaction Fee", -12.50, "foreign"},
	{12, "ATM Withdrawal Fee", -3.00, "atm"},
	{13, "Minimum Balance Fee", -10.00, "minimum_balance"},
	{18, "Monthly Maintenance Fee", -15.00, "maintenance"},
	{26, "Overdraft Fee", -35.00, "overdraft"},
	{31, "ACH Return Fee", -20.00, "ach_return"},
}

// GenerateStatement returns the fixed demo ledger, dated backwards from
// today so the feed always looks current.
func (g *statementGenerator) GenerateStatement() []models.BankTransaction {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	transactions := make([]models.BankTransaction, 0, len(demoStatement))
	for _, line := range demoStatement {
		transactions = append(transactions, models.BankTransaction{
			PostedOn:    today.AddDate(0, 0, -line.daysAgo),
			Description: line.description,
			Amount:      decimal.NewFromFloat(line.amount),
			Category:    models.TransactionCategoryFee,
			FeeType:     line.feeType,
		})
	}

	return transactions
}

// GenerateAccountMask returns a masked account number for a new link
func (g *statementGenerator) GenerateAccountMask() string {
	return fmt.Sprintf("****%04d", g.faker.Number(0, 9999))
}

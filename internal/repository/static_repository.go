package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

// StaticCustomerRepository serves a fixed list of customer seeds
type StaticCustomerRepository struct {
	Seeds []domain.CustomerSeed
}

func (r *StaticCustomerRepository) GetCustomerSeeds() ([]domain.CustomerSeed, error) {
	out := make([]domain.CustomerSeed, len(r.Seeds))
	copy(out, r.Seeds)
	return out, nil
}

// StaticOperationRepository serves a fixed list of operation requests
type StaticOperationRepository struct {
	Requests []domain.OperationRequest
}

func (r *StaticOperationRepository) GetOperations() ([]domain.OperationRequest, error) {
	out := make([]domain.OperationRequest, len(r.Requests))
	copy(out, r.Requests)
	return out, nil
}

// NewDemoRepositories returns the built-in demo data: three customers with one account each
// (1001 Ana, 1002 Bruno, 1003 Carla), a transfer from Carla to Ana and a withdrawal by Bruno
func NewDemoRepositories() (*StaticCustomerRepository, *StaticOperationRepository) {
	customers := &StaticCustomerRepository{Seeds: []domain.CustomerSeed{
		{Name: "Ana", NationalID: "11111111111", OpeningBalance: decimal.NewFromInt(1500)},
		{Name: "Bruno", NationalID: "22222222222", OpeningBalance: decimal.NewFromInt(800)},
		{Name: "Carla", NationalID: "33333333333", OpeningBalance: decimal.NewFromInt(2500)},
	}}

	operations := &StaticOperationRepository{Requests: []domain.OperationRequest{
		{Type: domain.OpTransfer, Source: "1003", Destination: "1001", Amount: decimal.NewFromInt(300)},
		{Type: domain.OpWithdrawal, Source: "1002", Amount: decimal.NewFromInt(100)},
	}}

	return customers, operations
}

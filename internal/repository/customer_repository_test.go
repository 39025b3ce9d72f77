package repository_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/repository"
)

func TestCSVCustomerRepository_GetCustomerSeeds(t *testing.T) {
	path := writeCSV(t, "customers.csv", `National_ID, Name, Opening_Balance
# seed data for the demo
11111111111,Ana,1500
22222222222,Bruno,
33333333333,Carla,not-a-number
,Nobody,10
44444444444
55555555555,Eva,99.90
`)

	repo := repository.NewCSVCustomerRepository(path, nil)
	seeds, err := repo.GetCustomerSeeds()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(seeds) != 3 {
		t.Fatalf("Expected 3 valid rows, got %d: %+v", len(seeds), seeds)
	}

	if seeds[0].Name != "Ana" || seeds[0].NationalID != "11111111111" || !seeds[0].OpeningBalance.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Unexpected first seed: %+v", seeds[0])
	}

	if !seeds[1].OpeningBalance.IsZero() {
		t.Errorf("Expected an empty balance to default to zero, got %s", seeds[1].OpeningBalance)
	}

	if seeds[2].Name != "Eva" || !seeds[2].OpeningBalance.Equal(decimal.RequireFromString("99.90")) {
		t.Errorf("Unexpected last seed: %+v", seeds[2])
	}
}

func TestCSVCustomerRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return "does-not-exist.csv" },
			wantErr: "reading customers header",
		},
		{
			name:    "missing column",
			path:    func(t *testing.T) string { return writeCSV(t, "customers.csv", "name,opening_balance\nAna,10\n") },
			wantErr: "required field 'national_id' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.NewCSVCustomerRepository(tt.path(t), nil).GetCustomerSeeds()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing '%s', got %v", tt.wantErr, err)
			}
		})
	}
}

package repository

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/banking-ledger/internal/domain"
	"github.com/tirasundara/banking-ledger/pkg/fileutil"
)

var customerHeaderFields = []string{"name", "national_id", "opening_balance"}

// CSVCustomerRepository implements the CustomerSeedRepository interface for CSV files
type CSVCustomerRepository struct {
	FilePath string
	logger   *logrus.Logger
}

// NewCSVCustomerRepository creates a new CSVCustomerRepository. A nil logger discards warnings
func NewCSVCustomerRepository(filePath string, logger *logrus.Logger) *CSVCustomerRepository {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &CSVCustomerRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

// GetCustomerSeeds implements the CustomerSeedRepository interface.
// Rows with a missing name or national id, or an unparsable balance, are skipped with a warning
func (r *CSVCustomerRepository) GetCustomerSeeds() ([]domain.CustomerSeed, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading customers header: %w", err)
	}

	columnMap, err := createHeaderMap(header, customerHeaderFields)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}
	maxIndex := maxColumnIndex(columnMap)

	var seeds []domain.CustomerSeed
	rowProcessorFn := func(line int, row []string) error {
		if len(row) <= maxIndex {
			r.logger.Warnf("Skipping customer row %d: expected %d fields, got %d", line, maxIndex+1, len(row))
			return nil
		}

		name := strings.TrimSpace(row[columnMap["name"]])
		nationalID := strings.TrimSpace(row[columnMap["national_id"]])
		if name == "" || nationalID == "" {
			r.logger.Warnf("Skipping customer row %d: name and national_id are required", line)
			return nil
		}

		opening := decimal.Zero
		if raw := strings.TrimSpace(row[columnMap["opening_balance"]]); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				r.logger.Warnf("Skipping customer row %d: invalid opening balance: %v", line, err)
				return nil
			}
			opening = parsed
		}

		seeds = append(seeds, domain.CustomerSeed{
			Name:           name,
			NationalID:     nationalID,
			OpeningBalance: opening,
		})
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing customers: %w", err)
	}

	return seeds, nil
}

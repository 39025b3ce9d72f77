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

var operationHeaderFields = []string{"type", "source", "destination", "amount"}

// CSVOperationRepository implements the OperationRepository interface for CSV files
type CSVOperationRepository struct {
	FilePath string
	logger   *logrus.Logger
}

// NewCSVOperationRepository creates a new CSVOperationRepository. A nil logger discards warnings
func NewCSVOperationRepository(filePath string, logger *logrus.Logger) *CSVOperationRepository {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &CSVOperationRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

// GetOperations implements the OperationRepository interface.
// The type column is matched case-insensitively; malformed rows are skipped with a warning.
// Business rules such as positive amounts are left to the accounts
func (r *CSVOperationRepository) GetOperations() ([]domain.OperationRequest, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading operations header: %w", err)
	}

	columnMap, err := createHeaderMap(header, operationHeaderFields)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}
	maxIndex := maxColumnIndex(columnMap)

	var requests []domain.OperationRequest
	rowProcessorFn := func(line int, row []string) error {
		if len(row) <= maxIndex {
			r.logger.Warnf("Skipping operation row %d: expected %d fields, got %d", line, maxIndex+1, len(row))
			return nil
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[columnMap["amount"]]))
		if err != nil {
			r.logger.Warnf("Skipping operation row %d: invalid amount: %v", line, err)
			return nil
		}

		req := domain.OperationRequest{
			Type:        domain.OperationType(strings.ToLower(strings.TrimSpace(row[columnMap["type"]]))),
			Source:      strings.TrimSpace(row[columnMap["source"]]),
			Destination: strings.TrimSpace(row[columnMap["destination"]]),
			Amount:      amount,
		}

		if !validAddressing(req) {
			r.logger.Warnf("Skipping operation row %d: %s needs its account columns filled", line, req.Type)
			return nil
		}

		requests = append(requests, req)
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing operations: %w", err)
	}

	return requests, nil
}

// validAddressing reports whether the account columns a request type relies on are present.
// Unknown types pass so the bank can reject them in order
func validAddressing(req domain.OperationRequest) bool {
	switch req.Type {
	case domain.OpDeposit:
		return req.Destination != ""
	case domain.OpWithdrawal:
		return req.Source != ""
	case domain.OpTransfer:
		return req.Source != "" && req.Destination != ""
	default:
		return true
	}
}

package operation

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

// Failure pairs a failed operation with its error
type Failure struct {
	Operation string
	Err       error
}

// RunResult summarises a batch run
type RunResult struct {
	Executed int
	Failures []Failure
}

// Runner executes operations one after another
type Runner struct {
	ContinueOnError bool
	logger          *logrus.Logger
}

// NewRunner creates a Runner. A nil logger discards output
func NewRunner(continueOnError bool, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Runner{
		ContinueOnError: continueOnError,
		logger:          logger,
	}
}

// Run executes ops in order. It stops at the first failure unless ContinueOnError is set,
// in which case every failure is collected and returned joined
func (r *Runner) Run(ops ...domain.Operation) (RunResult, error) {
	var result RunResult
	var errs []error

	r.logger.Debugf("Running %d operations", len(ops))

	for i, op := range ops {
		if err := op.Execute(); err != nil {
			r.logger.WithError(err).Warnf("Operation %d failed: %s", i+1, op.Describe())

			result.Failures = append(result.Failures, Failure{Operation: op.Describe(), Err: err})
			errs = append(errs, fmt.Errorf("operation %d (%s): %w", i+1, op.Describe(), err))

			if !r.ContinueOnError {
				return result, errs[0]
			}
			continue
		}

		result.Executed++
	}

	return result, errors.Join(errs...)
}

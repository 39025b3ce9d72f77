package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tirasundara/banking-ledger/internal/config"
	"github.com/tirasundara/banking-ledger/internal/domain"
	"github.com/tirasundara/banking-ledger/internal/operation"
	"github.com/tirasundara/banking-ledger/internal/report"
	"github.com/tirasundara/banking-ledger/internal/repository"
	"github.com/tirasundara/banking-ledger/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid configuration: %v", err))
	}

	// Command-line flags, defaulting to the configured values
	var (
		customersFile   string
		operationsFile  string
		outputFormat    string
		outputFile      string
		statementNumber string
		prettyPrint     bool
		continueOnError bool
	)

	flag.StringVar(&customersFile, "customers", cfg.CustomersFile, "Path to customers CSV file (if empty, uses the built-in demo data)")
	flag.StringVar(&operationsFile, "operations", cfg.OperationsFile, "Path to operations CSV file")
	flag.StringVar(&outputFormat, "format", cfg.OutputFormat, "Output format: json or text")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.StringVar(&statementNumber, "statement", "", "Account number to print the statement for (defaults to the first account)")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")
	flag.BoolVar(&continueOnError, "continue-on-error", false, "Keep executing operations after a failure")

	flag.Parse()

	logger := cfg.NewLogger()
	if cfg.EnvFileErr != nil {
		logger.WithError(cfg.EnvFileErr).Debug(".env file not loaded")
	}

	if customersFile == "" && operationsFile != "" {
		exitWithError("An operations file requires a customers file")
	}

	formatter, err := report.NewFormatter(outputFormat, prettyPrint)
	if err != nil {
		exitWithError(err.Error())
	}

	customerRepo, operationRepo := buildRepositories(customersFile, operationsFile, logger)

	bank := service.NewBank(service.WithLogger(logger))
	runner := operation.NewRunner(continueOnError, logger)
	scenario := service.NewScenarioService(bank, customerRepo, operationRepo, runner, logger)

	result, runErr := scenario.Run(statementNumber)
	// A zero report means seeding or reporting failed, not an individual operation
	if runErr != nil && result.GeneratedAt.IsZero() {
		exitWithError(fmt.Sprintf("Run failed: %v", runErr))
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		outputFile = withExtension(outputFile, formatter.FileExtension())

		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
		logger.Infof("Report written to %s", outputFile)
	} else {
		fmt.Println(string(output))
	}

	if runErr != nil {
		logger.WithError(runErr).Errorf("%d operation(s) failed", len(result.Failures))
		os.Exit(2)
	}
}

// buildRepositories picks the CSV sources when a customers file is given, otherwise the demo data
func buildRepositories(customersFile, operationsFile string, logger *logrus.Logger) (domain.CustomerSeedRepository, domain.OperationRepository) {
	if customersFile == "" {
		logger.Info("No customers file given, using the built-in demo data")
		return repository.NewDemoRepositories()
	}

	customerRepo := repository.NewCSVCustomerRepository(customersFile, logger)
	if operationsFile == "" {
		return customerRepo, &repository.StaticOperationRepository{}
	}

	return customerRepo, repository.NewCSVOperationRepository(operationsFile, logger)
}

// withExtension adds ext to path when its file name has no extension
func withExtension(path, ext string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return fmt.Sprintf("%s.%s", path, ext)
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/tirasundara/banking-ledger/internal/domain"
)

const (
	moneyPlaces     = 2
	timestampFormat = time.RFC3339
)

// OutputFormatter defines the interface for formatting bank reports
type OutputFormatter interface {
	Format(report domain.BankReport) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats bank reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(report domain.BankReport) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// TextFormatter renders a bank report as a plain listing: one line per customer with its
// accounts, followed by the statement table and any failed operations
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(report domain.BankReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Customers and accounts:")
	for _, summary := range report.Customers {
		accounts := make([]string, 0, len(summary.Accounts))
		for _, account := range summary.Accounts {
			accounts = append(accounts, fmt.Sprintf("(%s, %s)", account.Number, account.Balance.StringFixed(moneyPlaces)))
		}

		c := summary.Customer
		fmt.Fprintf(&buf, "%d %s %s -> [%s]\n", c.ID, c.Name, c.NationalID, strings.Join(accounts, ", "))
	}

	if st := report.Statement; st != nil {
		fmt.Fprintf(&buf, "\nStatement for account %s (balance %s):\n", st.Number, st.Balance.StringFixed(moneyPlaces))

		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for _, entry := range st.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				st.Number,
				entry.Timestamp.Format(timestampFormat),
				entry.Kind,
				entry.Amount.StringFixed(moneyPlaces),
				entry.Description,
			)
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("writing statement: %w", err)
		}
	}

	if len(report.Failures) > 0 {
		fmt.Fprintln(&buf, "\nFailed operations:")
		for _, failure := range report.Failures {
			fmt.Fprintf(&buf, "- %s\n", failure)
		}
	}

	return buf.Bytes(), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint bool) (OutputFormatter, error) {
	switch strings.ToLower(name) {
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	case "text", "txt":
		return NewTextFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

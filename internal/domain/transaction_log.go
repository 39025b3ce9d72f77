package domain

// TransactionLog is the append-only history of one account.
// The zero value is an empty log ready for use
type TransactionLog struct {
	entries []TransactionRecord
}

// NewTransactionLog creates an empty TransactionLog
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Record appends entry to the log. Validating the entry is the caller's job
func (l *TransactionLog) Record(entry TransactionRecord) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the history in insertion order
func (l *TransactionLog) Entries() []TransactionRecord {
	out := make([]TransactionRecord, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries
func (l *TransactionLog) Len() int {
	return len(l.entries)
}

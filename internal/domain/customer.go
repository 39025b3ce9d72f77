package domain

// Customer identifies a person holding accounts at the bank.
// Values are compared with ==; nothing mutates a Customer after the bank creates it
type Customer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}

// CustomerAccounts pairs a registered customer with the accounts opened for them
type CustomerAccounts struct {
	Customer Customer
	Accounts []Account
}

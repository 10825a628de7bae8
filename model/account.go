package model

// Account is one ledger account as returned by the accounts collaborator.
// Balances are authoritative only immediately after a successful fetch.
type Account struct {
	ID            int     `json:"id"`
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
}

// MaskedNumber returns the display form of the account number. Only the
// last four characters are ever shown.
func (a Account) MaskedNumber() string {
	n := a.AccountNumber
	if len(n) > 4 {
		n = n[len(n)-4:]
	}
	return "**** **** " + n
}

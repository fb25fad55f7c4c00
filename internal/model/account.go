package model

// Account reports whether an address has opened an exchange user account.
// It is always structurally populated; absence of the on-chain resource is
// the expected negative case, not an error.
type Account struct {
	Address       string `json:"address"`
	HasAuxAccount bool   `json:"hasAuxAccount"`
}

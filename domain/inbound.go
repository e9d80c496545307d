package domain

// Inbound identifies where an update comes from and who sent it.
type Inbound struct {
	ChatID ChatID
	Caller Identity
}

package domain

type Format int

const (
	FormatPlain Format = iota
	FormatCode
	FormatBold
)

// Reply is an outbound message. Transcript, when set, is rendered after Text
// as a read-only list of messages.
type Reply struct {
	Text       string
	Format     Format
	Actions    []ActionButton
	Transcript []Message
}

package telegram

import (
	"html"
	"strings"
	"unicode/utf16"
	"voice-relay/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

// maxMessageUnits is Telegram's limit on the visible text of one message, in UTF-16 code units.
const maxMessageUnits = 4096

const (
	segmentSeparator = "\n\n"
	userLabel        = "User:"
	assistantLabel   = "Assistant:"
)

type segment struct {
	label  string
	text   string
	format domain.Format
}

// Render turns a reply into one or more HTML messages.
// Texts longer than the Telegram limit are split; actions go on the last message.
func Render(chatID domain.ChatID, reply domain.Reply) []tgbotapi.MessageConfig {
	segments := []segment{{text: reply.Text, format: reply.Format}}
	for _, message := range reply.Transcript {
		segments = append(segments, segment{label: roleLabel(message.Role), text: message.Content})
	}

	chunks := pack(lo.FlatMap(segments, func(s segment, _ int) []segment {
		return s.split(maxMessageUnits - s.labelLen())
	}))

	messages := lo.Map(chunks, func(chunk []segment, _ int) tgbotapi.MessageConfig {
		msg := tgbotapi.NewMessage(int64(chatID), strings.Join(lo.Map(chunk, func(s segment, _ int) string {
			return s.html()
		}), segmentSeparator))
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		return msg
	})
	if len(reply.Actions) > 0 && len(messages) > 0 {
		messages[len(messages)-1].ReplyMarkup = Keyboard(reply.Actions)
	}
	return messages
}

// Keyboard lays out one action per row.
func Keyboard(actions []domain.ActionButton) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(lo.Map(actions, func(a domain.ActionButton, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(a.Label, a.Action.Token()))
	})...)
}

func roleLabel(role domain.Role) string {
	if role == domain.RoleAssistant {
		return assistantLabel
	}
	return userLabel
}

// split cuts a segment into pieces of at most limit UTF-16 units without breaking a rune.
// Only the first piece keeps the label.
func (s segment) split(limit int) []segment {
	if utf16Len(s.text) <= limit {
		return []segment{s}
	}
	var pieces []segment
	var current strings.Builder
	size := 0
	flush := func() {
		piece := segment{text: current.String(), format: s.format}
		if len(pieces) == 0 {
			piece.label = s.label
		}
		pieces = append(pieces, piece)
		current.Reset()
		size = 0
	}
	for _, r := range s.text {
		width := runeUnits(r)
		if size+width > limit {
			flush()
		}
		current.WriteRune(r)
		size += width
	}
	if size > 0 {
		flush()
	}
	return pieces
}

func (s segment) labelLen() int {
	if s.label == "" {
		return 0
	}
	return utf16Len(s.label) + 1
}

func (s segment) visibleLen() int {
	return s.labelLen() + utf16Len(s.text)
}

// utf16Len is the length Telegram sees for text.
func utf16Len(text string) int {
	return lo.SumBy([]rune(text), runeUnits)
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func (s segment) html() string {
	text := html.EscapeString(s.text)
	switch s.format {
	case domain.FormatCode:
		text = "<code>" + text + "</code>"
	case domain.FormatBold:
		text = "<b>" + text + "</b>"
	}
	if s.label == "" {
		return text
	}
	return "<b>" + s.label + "</b> " + text
}

// pack groups consecutive segments into messages that stay under the limit.
func pack(segments []segment) [][]segment {
	var chunks [][]segment
	var current []segment
	size := 0
	separator := utf16Len(segmentSeparator)
	for _, s := range segments {
		next := s.visibleLen()
		if len(current) > 0 && size+separator+next > maxMessageUnits {
			chunks = append(chunks, current)
			current, size = nil, 0
		}
		if len(current) > 0 {
			size += separator
		}
		current = append(current, s)
		size += next
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

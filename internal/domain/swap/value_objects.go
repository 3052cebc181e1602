package swap

import "strings"

const MaxMessageLength = 500

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Message is the optional note attached to a proposal. Empty is allowed.
type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }
func (m Message) IsEmpty() bool  { return m.text == "" }

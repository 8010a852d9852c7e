package renderer

// MessageKind ranks a status message.
type MessageKind uint8

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
)

// Message is a transient status line notice.
type Message struct {
	Kind MessageKind
	Text string
}

// Info creates an informational message.
func Info(text string) Message {
	return Message{Kind: MessageInfo, Text: text}
}

// Warning creates a warning message.
func Warning(text string) Message {
	return Message{Kind: MessageWarning, Text: text}
}

// Error creates an error message.
func Error(text string) Message {
	return Message{Kind: MessageError, Text: text}
}

// style returns the background and foreground escapes for the kind.
func (m Message) style() (bg, fg string) {
	switch m.Kind {
	case MessageWarning:
		return bgRGB(230, 150, 0), fgRGB(255, 255, 255)
	case MessageError:
		return bgRGB(200, 0, 0), fgRGB(255, 255, 255)
	default:
		return bgRGB(184, 184, 184), fgRGB(32, 32, 32)
	}
}

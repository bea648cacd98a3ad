package spindle

type Message struct {
	source string
	text   string
	cause  error
}

func NewMessage(source, text string) *Message {
	return &Message{source: source, text: text}
}

func NewMessageWithCause(source, text string, cause error) *Message {
	return &Message{source: source, text: text, cause: cause}
}

func (m *Message) Source() string { return m.source }
func (m *Message) Text() string   { return m.text }
func (m *Message) Cause() error   { return m.cause }

func (m *Message) Sources() []string {
	if m.source == "" {
		return nil
	}
	return []string{m.source}
}

func (m *Message) String() string { return m.text }

func (m *Message) Accept(v ElementVisitor) any { return v.VisitMessage(m) }

func (*Message) isElement() {}

package domain

// ChatMessage is one turn of an AI conversation session.
type ChatMessage struct {
	Role    string
	Content string
}

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

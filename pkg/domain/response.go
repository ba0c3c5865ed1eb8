package domain

// Response is the outbound action fan-in type: services push these onto a
// channel and the telegram listener drains it. Exactly one of Text,
// StickerFileID or PhotoFileID is set.
type Response struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	StickerFileID    string
	PhotoFileID      string
}

package messaging

type SendToGameInput struct {
	// ChannelID is the Discord channel the game lives in
	ChannelID string

	// Content is the message text
	Content string
}

type SendToPlayerInput struct {
	// UserID is the Discord user to message
	UserID string

	// Content is the message text
	Content string
}

package telegram

// Client sends plain text messages to a Telegram chat. It keeps application
// code free of the bot library.
type Client interface {
	SendText(chatID int64, text string) error
}

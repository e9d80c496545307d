package runtime

// User-facing texts. Failure notices never carry upstream details.
const (
	StartGreeting = "Welcome! Send a voice or text message to talk with the assistant."
	NewGreeting   = "A new dialog has started. Waiting for a voice or text message."

	refusalNotice         = "Sorry, this bot only works in a specific group."
	waitNotice            = "One moment. Waiting for the assistant's answer..."
	failureNotice         = "Something went wrong while talking to the assistant. Please try again later."
	transcriptPrefix      = "Your request: "
	saveActionLabel       = "Save and close the conversation?"
	savedNotice           = "The conversation was saved and closed. You can start a new one."
	nothingToSaveNotice   = "There is nothing to save yet. Send a message first."
	conversationsTitle    = "Your conversations:"
	noConversationsNotice = "You have no saved conversations yet."
	notFoundNotice        = "This conversation is not in your list anymore. Send /conversations to refresh it."
	statusFormat          = "Hello admin. Active sessions: %d"
)

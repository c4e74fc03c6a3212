package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Producer Topics
	TopicTurnCompleted = "chat.turn.completed"
)

package producer

import (
	"chatbot-srv/internal/chatbot"
	pkgKafka "chatbot-srv/pkg/kafka"
	"chatbot-srv/pkg/log"
)

// Producer interface for chatbot domain
type Producer interface {
	chatbot.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new chatbot producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}

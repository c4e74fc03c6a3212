package httpserver

import (
	"context"

	"chatbot-srv/internal/chatbot"
	chatbotHTTP "chatbot-srv/internal/chatbot/delivery/http"
	chatbotProducer "chatbot-srv/internal/chatbot/delivery/kafka/producer"
	chatbotUsecase "chatbot-srv/internal/chatbot/usecase"
	"chatbot-srv/internal/conversation"
)

func (srv HTTPServer) setupChatbotDomain(ctx context.Context, convUC conversation.UseCase) (chatbot.UseCase, routeRegistrar) {
	opts := []chatbotUsecase.Option{
		chatbotUsecase.WithProduct(srv.productClient),
		chatbotUsecase.WithFileManager(srv.fileManager),
	}
	if srv.kafkaProducer != nil {
		opts = append(opts, chatbotUsecase.WithProducer(chatbotProducer.New(srv.l, srv.kafkaProducer)))
		srv.l.Infof(ctx, "Chat turn events enabled")
	}

	uc := chatbotUsecase.New(srv.l, srv.geminiClient, convUC, chatbot.Config{
		SystemPromptPath: srv.config.Chat.SystemPromptPath,
		CatalogMaxAge:    srv.config.Chat.FileCacheMaxAge(),
	}, opts...)

	handler := chatbotHTTP.New(srv.l, uc, srv.discord)

	srv.l.Infof(ctx, "Chatbot domain registered")
	return uc, handler
}

package ai

import (
	"fmt"
	"path/filepath"

	"chatbot-srv/config"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
)

// ConnectGemini creates the Gemini client used for generateContent and the File API.
func ConnectGemini(cfg config.GeminiConfig) (gemini.IGemini, error) {
	client, err := gemini.New(gemini.GeminiConfig{
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return client, nil
}

// ConnectFileManager creates the upload cache stored in the chat cache directory.
func ConnectFileManager(store gemini.FileStore, cfg config.ChatConfig, l log.Logger) filemanager.IFileManager {
	return filemanager.New(store, filepath.Join(cfg.CacheDir, filemanager.DefaultCacheFile), l)
}

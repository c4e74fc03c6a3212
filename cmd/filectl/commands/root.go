// Package commands implements the filectl CLI for Gemini File API uploads and local caches.
package commands

import (
	"chatbot-srv/config"
	configAI "chatbot-srv/config/ai"
	configProduct "chatbot-srv/config/product"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
	"chatbot-srv/pkg/product"

	"github.com/spf13/cobra"
)

// App holds the clients the commands operate on.
type App struct {
	Files   gemini.FileStore
	Cache   filemanager.IFileManager
	Product product.IProduct
}

// AppLoader builds the App. It runs only when a command executes, so --help works without config.
type AppLoader func() (*App, error)

// LoadApp builds the App from the service configuration.
func LoadApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	geminiClient, err := configAI.ConnectGemini(cfg.Gemini)
	if err != nil {
		return nil, err
	}
	return &App{
		Files:   geminiClient,
		Cache:   configAI.ConnectFileManager(geminiClient, cfg.Chat, logger),
		Product: configProduct.Connect(cfg.Product, cfg.Chat.CacheDir),
	}, nil
}

// NewRootCmd creates the root command with every subcommand registered.
func NewRootCmd(load AppLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filectl",
		Short: "Manage Gemini File API uploads and local caches",
		Long: `filectl inspects and cleans up the files the chatbot uploads to the Gemini File API.

Examples:
  filectl list
  filectl list --local
  filectl delete files/abc-123
  filectl delete-all --yes
  filectl clear-cache`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newListCmd(load),
		newDeleteCmd(load),
		newDeleteAllCmd(load),
		newClearCacheCmd(load),
	)

	return rootCmd
}

package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Aaqilyousuf/documind-cli/internal/api"
	"github.com/Aaqilyousuf/documind-cli/internal/broadcast"
	"github.com/Aaqilyousuf/documind-cli/internal/identity"
)

var (
	cfgFile string
	cfg     *Config
	ident   *identity.Provider
	events  *broadcast.Channel
)

var rootCmd = &cobra.Command{
	Use:   "documind",
	Short: "Upload documents and chat with them from the terminal",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/documind/config.json)")
}

func initConfig() {
	_ = godotenv.Load()

	var err error
	path := cfgFile
	if path == "" {
		path, err = GetConfigPath()
		if err != nil {
			fmt.Println("Error getting config path:", err)
			os.Exit(1)
		}
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if url := os.Getenv("DOCUMIND_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}

	stateDir := filepath.Dir(path)
	ident = identity.NewProvider(stateDir)
	events = broadcast.NewChannel(stateDir)
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func GetConfig() *Config {
	return cfg
}

func SaveConfigGlobal() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return err
		}
	}
	return SaveConfig(path, cfg)
}

func newAPI() *api.Client {
	return api.NewClient(cfg.ServerURL)
}

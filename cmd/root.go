package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/optbank/cmd/account"
	"github.com/hance08/optbank/internal/app"
	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/constants"
	"github.com/hance08/optbank/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlagFromArgs(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "optbank converts account balances through a law-abiding Optional pipeline",
		Long: `optbank looks up an account, extracts its balance and converts it to the
reference currency. Every stage is chained through an Optional value, and the
left-identity and associativity laws are checked against nullable variants
that break them.`,
		SilenceErrors: true,
	}

	// Parsed early in Execute; registered here so cobra accepts it.
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", cfgFile, "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application.Service))

	rootCmd.AddCommand(NewConvertCmd(application.Service))
	rootCmd.AddCommand(NewQuoteCmd(application.Service))
	rootCmd.AddCommand(NewLawsCmd(application.Service))
	rootCmd.AddCommand(NewInfoCmd(application.Service))

	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsCancelled(err) {
			errhandler.HandleError(err)
		}

		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		cleanup()
		os.Exit(1)
	}
}

// configFlagFromArgs reads --config ahead of cobra, because the config is
// needed to build the services the commands are constructed with.
func configFlagFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

func initConfig() error {
	cfg = config.NewDefault()

	viper.SetDefault("defaults.apply_fallback", cfg.Defaults.ApplyFallback)
	viper.SetDefault("defaults.precision", cfg.Defaults.Precision)
	viper.SetDefault("log.level", cfg.Log.Level)
	viper.SetDefault("store.use_fixtures", cfg.Store.UseFixtures)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

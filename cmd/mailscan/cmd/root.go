package cmd

import (
	"log/slog"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-mailparse/internal/log"
	"github.com/zostay/go-mailparse/message"
)

// Configuration keys. Each is also a persistent flag and may be set in the
// config file or as a MAILSCAN_* environment variable.
const (
	keyLogFormat       = "log-format"
	keyLogLevel        = "log-level"
	keyChunkSize       = "chunk-size"
	keyMaxHeaderLength = "max-header-length"
	keyNoColor         = "no-color"
)

var (
	cfgFile string
	cfgErr  error // only set when --config names a file that cannot be read
	logger  = log.Def
)

var rootCmd = &cobra.Command{
	Use:               "mailscan",
	Short:             "Tools for inspecting and round-tripping message headers",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mailscan.yaml)")
	flags.String(keyLogFormat, log.FormatConsole, "log format: console, dev, or none")
	flags.String(keyLogLevel, "info", "log level: debug, info, warn, or error")
	flags.Int(keyChunkSize, message.DefaultChunkSize, "bytes to read at a time while looking for the end of the header")
	flags.Int(keyMaxHeaderLength, message.DefaultMaxHeaderLength, "largest header to accept, 0 for no limit")
	flags.Bool(keyNoColor, false, "disable colored output")

	for _, key := range []string{keyLogFormat, keyLogLevel, keyChunkSize, keyMaxHeaderLength, keyNoColor} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".mailscan")
	}

	viper.SetEnvPrefix("mailscan")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		cfgErr = err
	}
}

// setup configures logging and color once flags and config have been read.
func setup(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	lvl, err := log.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	logger, err = log.New(cmd.ErrOrStderr(), viper.GetString(keyLogFormat), lvl)
	if err != nil {
		return err
	}

	if viper.GetBool(keyNoColor) {
		color.NoColor = true
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	return nil
}

// parseOptions returns the message.Parse options selected by configuration.
func parseOptions() []message.ParseOption {
	return []message.ParseOption{
		message.WithChunkSize(viper.GetInt(keyChunkSize)),
		message.WithMaxHeaderLength(viper.GetInt(keyMaxHeaderLength)),
		message.WithLogger(logger.With(slog.String("component", "parser"))),
	}
}

// Execute runs the mailscan command.
func Execute() error {
	return rootCmd.Execute()
}

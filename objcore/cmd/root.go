// Package cmd provides the command-line interface for objcore.
package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarchlab/objcore/config"
	"github.com/sarchlab/objcore/naming"
	"github.com/spf13/cobra"
)

var (
	maxNameLength int
	envFiles      []string
	verbose       bool

	logger = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "objcore",
	Short: "objcore CLI tool can inspect long names and hook dispatch.",
	Long: `objcore CLI tool can inspect long names and hook dispatch. ` +
		`It resolves and shortens long names, builds ownership chains ` +
		`and shows the order in which hook listeners run.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxNameLength, "max-name-length", -1,
		"Maximum long name length, 0 for unlimited. "+
			"Overrides "+config.EnvMaxNameLength+".")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file",
		[]string{".env"}, "Dotenv files to read the configuration from.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug information.")
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func newAuthority() (*naming.Authority, error) {
	c, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	if maxNameLength >= 0 {
		err = naming.ValidateMaxNameLength(maxNameLength)
		if err != nil {
			return nil, err
		}

		c.MaxNameLength = maxNameLength
	}

	a := c.NewAuthority()
	logger.Debug().
		Str("authority", a.ID()).
		Int("maxNameLength", a.MaxNameLength()).
		Msg("naming authority created")

	return a, nil
}

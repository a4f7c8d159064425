package cmd

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imishinist/tplgen/internal/version"
)

// ErrUsage is returned when no template file is given. It is reported by
// exit status alone.
var ErrUsage = errors.New("usage: tplgen <template-file> [name=value ...]")

var rootCmd = NewRootCmd()

// NewRootCmd builds the tplgen command and binds its flags to viper.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tplgen [flags] <template-file> [name=value ...]",
		Short: "Render a text template with named parameters",
		Long: `Render a text template file, replacing {name} placeholders with values
given as name=value arguments, and print the result to standard output.
Use {{ and }} for literal braces.`,
		Example: `  # Render with parameters from the command line
  tplgen greeting.txt name=World

  # Layer parameters from files; command line values win
  tplgen --from-file defaults.yaml --from-file prod.toml app.conf.tpl port=8080

  # List the parameters a template uses
  tplgen --list greeting.txt`,
		Version:       version.Version,
		Args:          templateArgs,
		RunE:          render,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags end at the template path so values like "x=-1" pass through.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringArray("from-file", []string{}, "Load parameters from file (JSON/YAML/TOML, can be specified multiple times)")
	cmd.Flags().String("params-file", "", "Default parameters file, loaded before --from-file (overrides TPLGEN_PARAMS_FILE)")
	cmd.Flags().Bool("prompt", false, "Ask for missing parameters when stdin is a terminal")
	cmd.Flags().Bool("list", false, "Print the parameter names used by the template and exit")
	cmd.Flags().BoolP("verbose", "v", false, "Write debug logs to standard error")
	viper.BindPFlag("params_file", cmd.Flags().Lookup("params-file"))
	viper.BindPFlag("prompt", cmd.Flags().Lookup("prompt"))
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	return cmd
}

func Execute() error {
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrUsage) {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic(err))
	}
	return err
}

// diagnostic is the one-line message printed for err: the error text with
// its first letter upper-cased.
func diagnostic(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("TPLGEN")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("params_file", "")
	viper.SetDefault("prompt", false)
	viper.SetDefault("verbose", false)
}

func templateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	return nil
}

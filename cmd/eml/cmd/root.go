package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "eml",
		Short: "Inspect and extract the contents of email message files",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config carrying your own email identities")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadMessage parses the message file named by the first argument.
func loadMessage(args []string) (*eml.Message, error) {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read %q: %w", args[0], err)
	}

	m, err := eml.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %q: %w", args[0], err)
	}
	return m, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kindCmd = &cobra.Command{
	Use:   "kind message",
	Short: "Say whether a message was sent by you or received",
	Long: "Say whether a message was sent by you or received. With a " +
		"config listing your identities the From addresses are compared " +
		"against them; without one the presence of a Received header " +
		"decides.",
	Args: cobra.ExactArgs(1),
	RunE: RunKind,
}

func init() {
	rootCmd.AddCommand(kindCmd)
}

func RunKind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := loadMessage(args)
	if err != nil {
		return err
	}

	fmt.Println(m.Kind(cfg.Identities...))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var headersCmd = &cobra.Command{
	Use:   "headers message",
	Short: "Print the decoded header fields of a message",
	Args:  cobra.ExactArgs(1),
	RunE:  RunHeaders,
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

func RunHeaders(cmd *cobra.Command, args []string) error {
	m, err := loadMessage(args)
	if err != nil {
		return err
	}

	for _, f := range m.Root().Header().Fields() {
		fmt.Printf("%s: %s\n", f.Name(), f.DecodedBody())
	}
	return nil
}

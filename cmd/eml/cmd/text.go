package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text message",
	Short: "Print the plain text body of a message",
	Long: "Print the plain text body of a message. A message with only an " +
		"HTML body has the HTML reduced to its text content.",
	Args: cobra.ExactArgs(1),
	RunE: RunText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func RunText(cmd *cobra.Command, args []string) error {
	m, err := loadMessage(args)
	if err != nil {
		return err
	}

	fmt.Println(m.BodyText())
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/walk"
)

var partsCmd = &cobra.Command{
	Use:   "parts message",
	Short: "Print the MIME part tree of a message",
	Args:  cobra.ExactArgs(1),
	RunE:  RunParts,
}

func init() {
	rootCmd.AddCommand(partsCmd)
}

func RunParts(cmd *cobra.Command, args []string) error {
	msgFile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = msgFile.Close() }()

	m, err := message.Parse(msgFile)
	if err != nil {
		return err
	}

	return walk.AndProcess(
		func(part message.Part, parents []message.Part) error {
			mt, err := part.GetHeader().GetMediaType()
			if err != nil {
				mt = "text/plain"
			}

			indent := strings.Repeat("  ", len(parents))
			if fn, err := part.GetHeader().GetFilename(); err == nil {
				fmt.Printf("%s%s (%s)\n", indent, mt, fn)
			} else {
				fmt.Printf("%s%s\n", indent, mt)
			}
			return nil
		},
		m)
}

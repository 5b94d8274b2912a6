package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	saveImages string
	dataURLs   bool

	htmlCmd = &cobra.Command{
		Use:   "html message",
		Short: "Print the HTML body of a message",
		Long: "Print the HTML body of a message. A message with only a " +
			"plain text body has the text wrapped in minimal HTML. Inline " +
			"image references may be resolved to data URLs or to files " +
			"saved in a directory.",
		Args: cobra.ExactArgs(1),
		RunE: RunHTML,
	}
)

func init() {
	htmlCmd.Flags().StringVar(&saveImages, "save-images", "",
		"directory to save inline images into, rewriting their references")
	htmlCmd.Flags().BoolVar(&dataURLs, "data-urls", false,
		"rewrite inline image references into data URLs")
	rootCmd.AddCommand(htmlCmd)
}

func RunHTML(cmd *cobra.Command, args []string) error {
	m, err := loadMessage(args)
	if err != nil {
		return err
	}

	if saveImages == "" && !dataURLs {
		fmt.Println(m.BodyHTML())
		return nil
	}

	body, err := m.BodyHTMLWithInlineImages(saveImages, dataURLs)
	if err != nil {
		return err
	}

	fmt.Println(body)
	return nil
}

package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments message dir",
	Short: "Extract the attachments of a message into a directory",
	Args:  cobra.ExactArgs(2),
	RunE:  RunAttachments,
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
}

func RunAttachments(cmd *cobra.Command, args []string) error {
	m, err := loadMessage(args)
	if err != nil {
		return err
	}

	dir := args[1]
	as := m.Attachments()
	if len(as) == 0 {
		fmt.Println("no attachments")
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	taken := make(map[string]bool, len(as))
	for i, a := range as {
		name := a.Filename
		if name == "" {
			name = fmt.Sprintf("attachment-%d%s", i+1, extFor(a.ContentType))
		}
		name = uniqueName(dir, filepath.Base(name), taken)

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, a.Content, 0o644); err != nil {
			return err
		}
		taken[name] = true

		fmt.Printf("%s (%s, %d bytes)\n", path, a.ContentType, a.Filesize)
	}
	return nil
}

func extFor(ct string) string {
	if exts, _ := mime.ExtensionsByType(ct); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, found := strings.Cut(ct, "/"); found && sub != "" {
		return "." + sub
	}
	return ""
}

func uniqueName(dir, name string, taken map[string]bool) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	try := name
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, try)); err != nil && !taken[try] {
			return try
		}
		try = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
}

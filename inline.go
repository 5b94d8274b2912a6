package eml

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// cidRef matches src="cid:ID" and src='cid:ID' attributes in an HTML
// body.
var cidRef = regexp.MustCompile(`(?i)src=(?:"cid:([^"]*)"|'cid:([^']*)')`)

// BodyHTMLWithInlineImages returns the HTML body with its "cid:" image
// references resolved. With useDataURLs set, each reference to a known
// inline image becomes a data: URL embedding the image bytes. Otherwise,
// when saveDir is non-empty, the image bytes are written to files under
// saveDir (created if absent) and the references become the paths of
// those files. References to content-ids with no matching inline image
// are left unmodified.
//
// A failed file write is reported to the caller; references already
// resolved keep their substitutions and files already written stay on
// disk.
func (m *Message) BodyHTMLWithInlineImages(saveDir string, useDataURLs bool) (string, error) {
	body := m.BodyHTML()
	if body == "" || (!useDataURLs && saveDir == "") {
		return body, nil
	}

	images := m.InlineImages()
	if len(images) == 0 {
		return body, nil
	}

	// when a content-id repeats, the first occurrence wins
	byCid := make(map[string]*InlineImage, len(images))
	for i := range images {
		if _, seen := byCid[images[i].ContentID]; seen {
			continue
		}
		byCid[images[i].ContentID] = &images[i]
	}

	in := &inliner{
		saveDir:     saveDir,
		useDataURLs: useDataURLs,
		taken:       make(map[string]bool, len(images)),
		resolved:    make(map[string]string, len(images)),
	}

	var firstErr error
	out := cidRef.ReplaceAllStringFunc(body, func(match string) string {
		sub := cidRef.FindStringSubmatch(match)
		cid := sub[1]
		if cid == "" {
			cid = sub[2]
		}

		img, known := byCid[cid]
		if !known {
			return match
		}

		url, err := in.resolve(img)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return `src="` + url + `"`
	})

	return out, firstErr
}

// inliner tracks the state of one BodyHTMLWithInlineImages call: names
// already claimed in the save directory and the substitution already
// chosen for each content-id, so an image referenced twice is written
// once.
type inliner struct {
	saveDir     string
	useDataURLs bool
	madeDir     bool
	taken       map[string]bool
	resolved    map[string]string
}

func (in *inliner) resolve(img *InlineImage) (string, error) {
	if url, done := in.resolved[img.ContentID]; done {
		return url, nil
	}

	if in.useDataURLs {
		url := "data:" + img.ContentType + ";base64," +
			base64.StdEncoding.EncodeToString(img.Content)
		in.resolved[img.ContentID] = url
		return url, nil
	}

	if !in.madeDir {
		if err := os.MkdirAll(in.saveDir, 0o755); err != nil {
			return "", err
		}
		in.madeDir = true
	}

	name := img.Filename
	if name == "" {
		name = img.ContentID + extensionFor(img.ContentType)
	}
	// declared names are not trusted as paths
	name = filepath.Base(name)
	name = in.uniquify(name)

	path := filepath.Join(in.saveDir, name)
	if err := os.WriteFile(path, img.Content, 0o644); err != nil {
		return "", err
	}
	in.taken[name] = true

	url := filepath.ToSlash(path)
	in.resolved[img.ContentID] = url
	return url, nil
}

// uniquify appends a numeric suffix before the extension until the name
// collides with neither a name claimed this call nor a file already in
// the save directory.
func (in *inliner) uniquify(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	try := name
	for n := 1; in.taken[try] || fileExists(filepath.Join(in.saveDir, try)); n++ {
		try = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
	return try
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// extensionFor guesses a file extension for a media type, falling back
// to the subtype itself when the type is not in the system table.
func extensionFor(ct string) string {
	if exts, _ := mime.ExtensionsByType(ct); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, found := strings.Cut(ct, "/"); found && sub != "" {
		return "." + sub
	}
	return ""
}

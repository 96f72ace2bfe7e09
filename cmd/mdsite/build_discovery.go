package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// PageToBuild is one Markdown source and its HTML destination.
type PageToBuild struct {
	InputPath  string
	OutputPath string
	Name       string // path relative to the content directory
}

// isMarkdown reports whether path has a .md or .markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// discoverPages finds every Markdown file under contentDir and maps
// contentDir/a/b.md to outputDir/a/b.html. Hidden files and directories
// are skipped.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	var pages []PageToBuild
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != contentDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{
			InputPath:  path,
			OutputPath: resolveOutputPath(rel, outputDir),
			Name:       filepath.ToSlash(rel),
		})
		return nil
	})
	return pages, err
}

// resolveOutputPath maps a content-relative Markdown path to its HTML path.
func resolveOutputPath(rel, outputDir string) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outputDir, base+".html")
}

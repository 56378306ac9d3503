// Package output assembles the generated source file and writes it.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const Extension = ".cs"

type Document struct {
	Imports   []string
	Namespace string
	Body      string
}

// Assemble emits the using directives, the file-scoped namespace and the body.
// Imports are deduplicated in first-seen order.
func Assemble(doc Document) string {
	var b strings.Builder
	seen := make(map[string]bool, len(doc.Imports))
	for _, imp := range doc.Imports {
		imp = strings.TrimSpace(imp)
		if imp == "" || seen[imp] {
			continue
		}
		seen[imp] = true
		fmt.Fprintf(&b, "using %s;\n", imp)
	}
	if len(seen) > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "namespace %s;\n\n", doc.Namespace)
	b.WriteString(doc.Body)
	return b.String()
}

// FilePath decides where Save writes: {path}/{name}.cs when path is an
// existing directory or ends in a separator, path itself otherwise.
func FilePath(path, name string) string {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return filepath.Join(path, name+Extension)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, name+Extension)
	}
	return path
}

// Save writes content and returns the path it wrote to.
func Save(path, name, content string) (string, error) {
	filePath := FilePath(path, name)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("error writing output file: %w", err)
	}
	return filePath, nil
}

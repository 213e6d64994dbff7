package report

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/goreg/internal/model"
)

// ResolveDir expresses target relative to the directory holding base. When
// base does not end in a named element ("/", ".", "..") it is used as the
// directory itself. The computation is lexical only. With urlPrefix set the
// relative path is resolved as a reference against the prefix URL.
func ResolveDir(base, target string, urlPrefix *url.URL) (string, error) {
	rel, err := relativeTo(baseDir(base), target)
	if err != nil {
		return "", err
	}

	if urlPrefix == nil {
		return rel, nil
	}

	return urlPrefix.ResolveReference(&url.URL{Path: filepath.ToSlash(rel)}).String(), nil
}

func baseDir(base string) string {
	switch last := filepath.Base(base); last {
	case ".", "..", string(filepath.Separator):
		return base
	default:
		return filepath.Dir(strings.TrimRight(base, string(filepath.Separator)))
	}
}

func relativeTo(dir, target string) (string, error) {
	if filepath.IsAbs(target) && !filepath.IsAbs(dir) {
		return filepath.Clean(target), nil
	}

	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return "", fmt.Errorf("%w: %s relative to %s: %w", m.ErrPathResolution, target, dir, err)
	}

	return rel, nil
}

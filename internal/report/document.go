package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"maps"

	"github.com/Masterminds/sprig/v3"

	m "github.com/mouse-blink/goreg/internal/model"
)

//go:embed template/report.html
var templateFS embed.FS

var documentTemplate = template.Must(
	template.New("report.html").Funcs(newFuncMap()).ParseFS(templateFS, "template/report.html"),
)

const (
	statusSuccess = "success"
	statusDanger  = "danger"
)

type documentItem struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
	*m.DiffDetail
}

type ximgdiffConfig struct {
	Enabled   bool   `json:"enabled"`
	WorkerURL string `json:"workerUrl"`
}

// document is the data model the report UI reads from window.__reg__.
// diffImageExtention keeps the key spelling the UI bundle expects.
type document struct {
	Type               string                  `json:"type"`
	HasNew             bool                    `json:"hasNew"`
	NewItems           []documentItem          `json:"newItems"`
	HasDeleted         bool                    `json:"hasDeleted"`
	DeletedItems       []documentItem          `json:"deletedItems"`
	HasPassed          bool                    `json:"hasPassed"`
	PassedItems        []documentItem          `json:"passedItems"`
	HasFailed          bool                    `json:"hasFailed"`
	FailedItems        []documentItem          `json:"failedItems"`
	ActualDir          string                  `json:"actualDir"`
	ExpectedDir        string                  `json:"expectedDir"`
	DiffDir            string                  `json:"diffDir"`
	DiffImageExtension string                  `json:"diffImageExtention"`
	XimgdiffConfig     ximgdiffConfig          `json:"ximgdiffConfig"`
	DiffDetails        map[m.Path]m.DiffDetail `json:"diffDetails"`
}

func newDocument(input m.ReportInput) (document, error) {
	doc := document{
		Type:               statusSuccess,
		HasNew:             !input.New.Empty(),
		NewItems:           documentItems(input.New, nil),
		HasDeleted:         !input.Deleted.Empty(),
		DeletedItems:       documentItems(input.Deleted, nil),
		HasPassed:          !input.Passed.Empty(),
		PassedItems:        documentItems(input.Passed, input.Details),
		HasFailed:          !input.Failed.Empty(),
		FailedItems:        documentItems(input.Failed, input.Details),
		DiffImageExtension: m.DiffImageExtension,
		DiffDetails:        make(map[m.Path]m.DiffDetail, len(input.Details)),
	}

	if doc.HasFailed {
		doc.Type = statusDanger
	}

	maps.Copy(doc.DiffDetails, input.Details)

	var err error

	if doc.ActualDir, err = resolveForDocument(input, input.ActualDir); err != nil {
		return document{}, err
	}

	if doc.ExpectedDir, err = resolveForDocument(input, input.ExpectedDir); err != nil {
		return document{}, err
	}

	if doc.DiffDir, err = resolveForDocument(input, input.DiffDir); err != nil {
		return document{}, err
	}

	return doc, nil
}

func documentItems(paths m.PathSet, details map[m.Path]m.DiffDetail) []documentItem {
	items := make([]documentItem, 0, paths.Len())

	for _, p := range paths.Items() {
		item := documentItem{Raw: string(p), Encoded: EncodePath(string(p))}
		if d, ok := details[p]; ok {
			item.DiffDetail = &d
		}

		items = append(items, item)
	}

	return items
}

func renderDocument(doc document) ([]byte, error) {
	var buf bytes.Buffer

	data := map[string]any{
		"Report":  doc,
		"Favicon": favicon(doc),
	}

	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrTemplateRender, err)
	}

	return buf.Bytes(), nil
}

func favicon(doc document) string {
	color, mark := "#4CAF50", "&#10003;"
	if doc.HasFailed || doc.HasNew || doc.HasDeleted {
		color, mark = "#F44336", "&#10007;"
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">`+
		`<circle cx="8" cy="8" r="7" fill="%s" stroke="#fff" stroke-width="1"/>`+
		`<text x="8" y="12" text-anchor="middle" fill="white" font-family="Arial" font-size="10" font-weight="bold">%s</text>`+
		`</svg>`, color, mark)
}

func newFuncMap() template.FuncMap {
	fm := sprig.HtmlFuncMap()

	extra := map[string]any{
		"encodePath": EncodePath,
		"diffImage": func(encoded string) string {
			return trimExt(encoded) + "." + m.DiffImageExtension
		},
	}

	maps.Copy(fm, extra)

	return fm
}

func trimExt(p string) string {
	for i := len(p) - 1; i >= 0 && p[i] != '/'; i-- {
		if p[i] == '.' {
			return p[:i]
		}
	}

	return p
}

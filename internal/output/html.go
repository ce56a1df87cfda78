package output

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter renders the markdown report to a standalone HTML page
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Settlement Valuation</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
{{.}}
</body>
</html>
`))

func (h HTMLFormatter) Format(reports []*Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(reports)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := markdown.Convert(md, &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	// goldmark drops raw HTML unless configured as unsafe
	if err := htmlPage.Execute(&page, template.HTML(body.String())); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}

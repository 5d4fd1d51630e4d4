package explanation

import (
	"html/template"
	"strings"
)

// pageTemplate is the shell around a rendered analysis fragment. The body
// is injected as template.HTML: the markdown pipeline already escapes
// every user- and model-supplied string it embeds.
var pageTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; color: #1f2430; }
main { max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
h1 { font-size: 1.6rem; }
.analysis-section { background: #fff; border-radius: 8px; padding: 1rem 1.5rem; margin: 1rem 0; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.analysis-section h2 { margin-top: 0; border-bottom: 2px solid #e3e6ec; padding-bottom: .4rem; }
.inline-code { font-family: ui-monospace, monospace; background: #edeff3; border-radius: 4px; padding: .1rem .3rem; font-size: .92em; }
.code-block { font-family: ui-monospace, monospace; background: #14161c; color: #e8eaf0; border-radius: 6px; padding: .8rem 1rem; margin: .8rem 0; white-space: pre-wrap; overflow-x: auto; }
pre.code-block { white-space: pre; }
pre.code-block code { background: none; padding: 0; }
.quiz-question { border: 1px solid #d9dde5; border-radius: 6px; margin: .8rem 0; padding: .5rem .8rem; background: #fafbfc; }
.quiz-question summary { cursor: pointer; font-weight: 600; }
.resources-list { padding-left: 1.2rem; }
.resources-list li { margin: .5rem 0; }
.diagram { text-align: center; margin: 1rem 0; }
.diagram img { max-width: 100%; }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
{{.Body}}
</main>
</body>
</html>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

// RenderPage wraps a sanitized HTML fragment in the page shell.
func RenderPage(title, body string) (string, error) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, pageData{Title: title, Body: template.HTML(body)}); err != nil {
		return "", err
	}
	return b.String(), nil
}

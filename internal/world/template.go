package world

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for traversal message templates.
var templateFuncs = sprig.TxtFuncMap()

// TraversalContext carries the data available to exit message templates.
// Templates access fields via {{ .Actor }}, {{ .Exit }}, {{ .Destination }}.
type TraversalContext struct {
	Actor       string
	Exit        string
	Destination string
}

func expandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// RenderSuccess expands the mover-facing success message.
func (e *Exit) RenderSuccess(ctx TraversalContext) (string, error) {
	return expandTemplate(e.SuccMsg, ctx)
}

// RenderOtherSuccess expands the message shown to everyone else on success.
func (e *Exit) RenderOtherSuccess(ctx TraversalContext) (string, error) {
	return expandTemplate(e.OSuccMsg, ctx)
}

// RenderFail expands the mover-facing failure message.
func (e *Exit) RenderFail(ctx TraversalContext) (string, error) {
	return expandTemplate(e.FailMsg, ctx)
}

// RenderOtherFail expands the message shown to everyone else on failure.
func (e *Exit) RenderOtherFail(ctx TraversalContext) (string, error) {
	return expandTemplate(e.OFailMsg, ctx)
}

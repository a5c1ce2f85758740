package documents

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
)

// TemplateRenderer renders billing documents through html/template and
// stores the output on local disk. It implements billing.DocumentRenderer.
type TemplateRenderer struct {
	billTmpl   *template.Template
	letterTmpl *template.Template
	storage    *LocalStorage
}

// NewTemplateRenderer creates a renderer with the built-in templates
func NewTemplateRenderer(storage *LocalStorage) (*TemplateRenderer, error) {
	return NewTemplateRendererWithTemplates(storage, defaultBillTemplate, defaultLetterTemplate)
}

// NewTemplateRendererWithTemplates creates a renderer with caller-supplied
// template sources, e.g. society-specific letterheads.
func NewTemplateRendererWithTemplates(storage *LocalStorage, billSource, letterSource string) (*TemplateRenderer, error) {
	funcs := templateFuncs()

	billTmpl, err := template.New("bill").Funcs(funcs).Parse(billSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bill template: %w", err)
	}
	letterTmpl, err := template.New("letter").Funcs(funcs).Parse(letterSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse letter template: %w", err)
	}

	return &TemplateRenderer{
		billTmpl:   billTmpl,
		letterTmpl: letterTmpl,
		storage:    storage,
	}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatMoney": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"formatDate": func(t time.Time) string {
			return t.Format("02-01-2006")
		},
	}
}

type billTemplateData struct {
	Bill    *billing.Bill
	Project *society.Project
	Unit    *society.Unit
}

type letterTemplateData struct {
	Letter  *billing.Letter
	Project *society.Project
	Unit    *society.Unit
}

// RenderBill renders the bill to an HTML file and returns its path
func (r *TemplateRenderer) RenderBill(ctx context.Context, bill *billing.Bill, project *society.Project, unit *society.Unit) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := billTemplateData{Bill: bill, Project: project, Unit: unit}
	if err := r.billTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render bill: %w", err)
	}

	filename := fmt.Sprintf("bill-%s-%04d%02d.html", unit.UnitNumber, bill.BillYear, bill.BillMonth)
	return r.storage.Save(filename, buf.Bytes())
}

// RenderLetter renders the letter to an HTML file and returns its path
func (r *TemplateRenderer) RenderLetter(ctx context.Context, letter *billing.Letter, project *society.Project, unit *society.Unit) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := letterTemplateData{Letter: letter, Project: project, Unit: unit}
	if err := r.letterTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render letter: %w", err)
	}

	filename := fmt.Sprintf("letter-%s-%s.html", unit.UnitNumber, letter.FinancialYear)
	return r.storage.Save(filename, buf.Bytes())
}

var _ billing.DocumentRenderer = (*TemplateRenderer)(nil)

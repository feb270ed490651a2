package server

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/calculator"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates every page is parsed together with.
var sharedTemplates = []string{"templates/layout.html", "templates/partials.html"}

// Page templates in addition to the calculator templates named by the catalog.
var standaloneTemplates = []string{"index", "category"}

type page struct {
	tmpl *template.Template
}

func loadPages() (map[string]*page, error) {
	base, err := template.ParseFS(templateFiles, sharedTemplates...)
	if err != nil {
		return nil, err
	}

	names := append([]string(nil), standaloneTemplates...)
	seen := make(map[string]bool)
	for _, calc := range catalog.Calculators() {
		if !seen[calc.Template] {
			seen[calc.Template] = true
			names = append(names, calc.Template)
		}
	}

	pages := make(map[string]*page, len(names))
	for _, name := range names {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		tmpl, err := clone.ParseFS(templateFiles, "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = &page{tmpl: tmpl}
	}
	return pages, nil
}

type navSection struct {
	catalog.Category
	Calculators []catalog.Calculator
}

type pageData struct {
	Title       string
	Path        string
	Nav         []navSection
	Category    *catalog.Category
	Calculators []catalog.Calculator
	Calculator  *catalog.Calculator
	Form        url.Values
	Result      catalog.View
	Table       catalog.Table
	Error       string
	Ads         config.AdsConfig
	Version     string
}

// AdParams is the widget configuration passed to the ad script.
func (p pageData) AdParams() map[string]interface{} {
	params := map[string]interface{}{
		"id":       p.Ads.PartnerID,
		"template": p.Ads.Template,
		"width":    p.Ads.Width,
		"height":   p.Ads.Height,
	}
	if p.Ads.TrackingCode != "" {
		params["trackingCode"] = p.Ads.TrackingCode
	}
	return params
}

func (h *handler) newPageData(r *http.Request, title string) pageData {
	nav := make([]navSection, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		nav = append(nav, navSection{Category: c, Calculators: catalog.InCategory(c.Key)})
	}
	return pageData{
		Title:   title,
		Path:    r.URL.Path,
		Nav:     nav,
		Ads:     h.ads,
		Version: h.version,
	}
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	data := h.newPageData(r, "")
	h.render(w, "index", data, "server.handleIndex")
}

func (h *handler) handleCategory(category catalog.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		data := h.newPageData(r, category.Title)
		data.Category = &category
		data.Calculators = catalog.InCategory(category.Key)
		h.render(w, "category", data, "server.handleCategory")
	}
}

func (h *handler) handleCalculator(calc catalog.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "server.handleCalculator"
		data := h.newPageData(r, calc.Title)
		data.Calculator = &calc

		switch {
		case r.Method == http.MethodGet:
		case r.Method == http.MethodPost && calc.Implemented():
			if status, err := h.parseForm(w, r); err != nil {
				h.logger.Warn("failed to read calculator form",
					zap.String("op", op),
					zap.String("calculator", calc.Name),
					zap.Error(err),
				)
				http.Error(w, http.StatusText(status), status)
				return
			}
			data.Form = r.PostForm
			h.compute(calc, &data)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		h.render(w, calc.Template, data, op)
	}
}

func (h *handler) compute(calc catalog.Calculator, data *pageData) {
	const op = "server.compute"
	view, err := calc.Compute(data.Form)
	if err != nil {
		if errors.Is(err, calculator.ErrValidation) {
			h.logValidation(op, calc.Name, err)
		} else {
			h.logger.Error("calculator failed",
				zap.String("op", op),
				zap.String("calculator", calc.Name),
				zap.Error(err),
			)
		}
		data.Error = calculator.ErrValidation.Error()
		return
	}

	data.Result = view
	if table, ok := view.(catalog.Table); ok {
		data.Table = table
	}
}

func (h *handler) render(w http.ResponseWriter, name string, data pageData, op string) {
	p, ok := h.pages[name]
	if !ok {
		h.logger.Error("missing page template",
			zap.String("op", op),
			zap.String("template", name),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

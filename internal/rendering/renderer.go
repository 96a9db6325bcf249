package rendering

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/letter-service/internal/sanitize"
	"github.com/jonathan/letter-service/internal/types"
)

// SupportedTemplates is the fixed allow-list of letter templates. It is
// enumerated at construction and not user-extensible at runtime.
var SupportedTemplates = []string{
	"surat_tugas",
	"lembar_persetujuan",
	"surat_dinas",
	"surat_edaran",
	"surat_pemberitahuan",
}

// IsSupported reports whether id is in the template allow-list.
func IsSupported(id string) bool {
	for _, t := range SupportedTemplates {
		if t == id {
			return true
		}
	}
	return false
}

// Config holds renderer construction parameters.
type Config struct {
	TemplatesDir string
	OutputDir    string
	StaticDir    string
	Engine       Engine
	Logger       *zap.Logger
}

// Renderer renders canonical letter requests into PDF bytes and persists them
// to the output directory. The parsed template set is built once here and
// shared read-only across all render calls, so concurrent use needs no
// locking.
type Renderer struct {
	templatesDir string
	outputDir    string
	staticDir    string
	templates    *template.Template
	engine       Engine
	logger       *zap.Logger
}

// New creates a Renderer, ensures the output directory exists, and parses all
// HTML templates found in the templates directory. A supported template whose
// file is absent at construction surfaces as TemplateMissingError at render
// time, not here.
func New(cfg Config) (*Renderer, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, &RenderError{Message: "failed to create output directory", Cause: err}
	}

	tmpl := template.New("letters").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
		"add1":  func(i int) int { return i + 1 },
	})

	files, err := filepath.Glob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		return nil, &TemplateError{Message: "failed to list templates", Cause: err}
	}
	if len(files) > 0 {
		tmpl, err = tmpl.ParseFiles(files...)
		if err != nil {
			return nil, &TemplateError{Message: "failed to parse templates", Cause: err}
		}
	}

	return &Renderer{
		templatesDir: cfg.TemplatesDir,
		outputDir:    cfg.OutputDir,
		staticDir:    cfg.StaticDir,
		templates:    tmpl,
		engine:       cfg.Engine,
		logger:       cfg.Logger,
	}, nil
}

// OutputDir returns the directory generated PDFs are written to.
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

// Render produces PDF bytes for the given canonical letter request.
func (r *Renderer) Render(ctx context.Context, req types.LetterRequest) ([]byte, error) {
	if !IsSupported(req.TemplateType) {
		return nil, &UnknownTemplateError{Name: req.TemplateType}
	}

	tmpl := r.templates.Lookup(req.TemplateType + ".html")
	if tmpl == nil {
		return nil, &TemplateMissingError{Name: req.TemplateType + ".html", Dir: r.templatesDir}
	}

	data := r.buildContext(req)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &RenderError{Message: "failed to execute template", Cause: err}
	}

	pdf, err := r.engine.PDF(ctx, buf.String())
	if err != nil {
		return nil, &RenderError{Message: "pdf conversion failed", Cause: err}
	}

	return pdf, nil
}

// Save composes the size guard and the filename sanitizer, then writes the
// bytes to the output directory using only the sanitized basename. No
// caller-controlled directory component is ever honored.
func (r *Renderer) Save(pdf []byte, filename string) (string, error) {
	if err := sanitize.CheckSize(pdf); err != nil {
		return "", err
	}

	safe, err := sanitize.Filename(filename)
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.outputDir, safe)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", &RenderError{Message: "failed to write pdf", Cause: err}
	}

	return path, nil
}

// buildContext flattens the request's content map into the top-level template
// context while keeping the nested "content" key, so template authors can
// reference fields either way. Canonical letter fields are written after the
// content keys: on a name collision the canonical field wins.
func (r *Renderer) buildContext(req types.LetterRequest) map[string]any {
	data := make(map[string]any, len(req.Content)+8)
	for k, v := range req.Content {
		data[k] = v
	}

	data["content"] = req.Content
	data["template_type"] = req.TemplateType
	data["nomor_surat"] = req.NomorSurat
	data["perihal"] = req.Perihal
	data["tanggal_surat"] = req.TanggalSurat
	data["tempat_surat"] = req.TempatSurat
	data["school_info"] = req.SchoolInfo
	data["penandatangan"] = req.Penandatangan

	if logo := r.resolveLogo(req.SchoolInfo.LogoURL); logo != "" {
		// Containment was verified above; mark the file URL trusted so
		// html/template does not strip the non-HTTP scheme.
		data["logo_path"] = template.URL("file://" + logo)
	}

	return data
}

// resolveLogo maps a logo reference to a file inside the static assets
// directory. Containment is checked on the canonicalized path, not by string
// prefix. Any failure (missing file, resolves outside the boundary, not a
// regular file) omits the logo rather than failing the render: the logo is a
// convenience and must never read files outside the sanctioned directory.
func (r *Renderer) resolveLogo(ref string) string {
	if ref == "" {
		return ""
	}

	staticRoot, err := filepath.EvalSymlinks(r.staticDir)
	if err != nil {
		return ""
	}

	// The reference may be absolute or relative to the static directory.
	for _, candidate := range []string{ref, filepath.Join(r.staticDir, ref)} {
		resolved, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			continue
		}

		info, err := os.Stat(resolved)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		rel, err := filepath.Rel(staticRoot, resolved)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			r.logger.Warn("logo resolves outside static directory, omitting",
				zap.String("ref", ref))
			continue
		}

		return resolved
	}

	return ""
}

package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/five82/internboard/internal/cards"
)

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}).Parse(pageTemplate))

type pageData struct {
	Title string
	cards.Page
	Loading bool
	Failed  bool
	Empty   bool
}

// WriteHTML renders p as a standalone HTML document.
func WriteHTML(w io.Writer, p cards.Page) error {
	data := pageData{
		Title:   "Internship Board",
		Page:    p,
		Loading: p.Status == cards.StatusLoading,
		Failed:  p.Status == cards.StatusError,
		Empty:   p.Status == cards.StatusEmpty,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #f7fafc; color: #1a202c; margin: 0; }
header { padding: 24px; background: #2d3748; color: #fff; }
.stats span { margin-right: 16px; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 16px; padding: 24px; }
.internship-card { background: #fff; border-radius: 8px; padding: 16px; cursor: pointer; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.card-header { display: flex; gap: 12px; align-items: center; }
.company-logo { width: 48px; height: 48px; border-radius: 6px; object-fit: contain; }
.card-title { margin: 0; font-size: 1.05rem; }
.card-company { margin: 2px 0 0; color: #4a5568; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 10px; font-size: .8rem; margin: 8px 4px 0 0; background: #edf2f7; }
.badge-wfh { background: #c6f6d5; }
.badge-stipend { background: #fefcbf; }
.skill-tag { display: inline-block; padding: 2px 6px; margin: 4px 4px 0 0; border: 1px solid #cbd5e0; border-radius: 4px; font-size: .75rem; }
.card-footer { display: flex; justify-content: space-between; align-items: center; margin-top: 12px; }
.stat-item { display: inline-block; margin-right: 10px; color: #718096; font-size: .85rem; }
.apply-btn { background: #3182ce; color: #fff; border: 0; border-radius: 6px; padding: 6px 14px; cursor: pointer; }
.state { padding: 48px; text-align: center; color: #4a5568; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<div class="stats">
<span id="totalCount">{{comma .TotalCount}}</span> total
<span id="lastUpdated">Updated {{if .LastUpdated}}{{.LastUpdated}}{{else}}N/A{{end}}</span>
{{- if .ShowResultsInfo}}
<span id="resultsInfo">Showing <strong id="resultsCount">{{.ResultsCount}}</strong> internships</span>
{{- end}}
</div>
</header>
{{- if .Loading}}
<div id="loadingState" class="state">Loading internships...</div>
{{- else if .Failed}}
<div id="errorState" class="state">Failed to load internships. Please try again later.</div>
{{- else if .Empty}}
<div id="emptyState" class="state">No internships match your filters.</div>
{{- else}}
<main id="internshipsGrid" class="grid">
{{- range .Cards}}
<div class="internship-card" onclick="window.open({{.URL}}, '_blank')">
  <div class="card-header">
    {{- if .Logo.URL}}
    <img src="{{.Logo.URL}}" alt="{{.Company}}" class="company-logo" onerror="this.onerror=null; this.src='data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22%3E%3Crect width=%22100%22 height=%22100%22 fill=%22%23e2e8f0%22/%3E%3C/svg%3E'">
    {{- else}}
    <svg class="company-logo company-logo-placeholder" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#e2e8f0"/><text x="50" y="50" font-family="Arial" font-size="40" fill="#4a5568" text-anchor="middle" dominant-baseline="middle">{{.Logo.Glyph}}</text></svg>
    {{- end}}
    <div class="card-title-section">
      <h3 class="card-title">{{.Title}}</h3>
      <p class="card-company">{{.Company}}</p>
    </div>
  </div>
  <div class="card-badges">
    <span class="badge badge-type">{{.TypeLabel}}</span>
    {{- if .WorkFromHome}}
    <span class="badge badge-wfh">WFH</span>
    {{- end}}
    {{- if .Stipend}}
    <span class="badge badge-stipend">{{.Stipend}}</span>
    {{- end}}
  </div>
  <div class="card-details">
    {{- if .Location}}
    <div class="detail-item detail-location">{{.Location}}</div>
    {{- end}}
    {{- if .Duration}}
    <div class="detail-item detail-duration">{{.Duration}}</div>
    {{- end}}
    {{- if .Deadline}}
    <div class="detail-item detail-deadline"><strong>Deadline:</strong> {{.Deadline}}</div>
    {{- end}}
  </div>
  {{- if .Skills}}
  <div class="skills-list">
    {{- range .Skills}}
    <span class="skill-tag">{{.}}</span>
    {{- end}}
  </div>
  {{- end}}
  <div class="card-footer">
    <div class="card-stats">
      {{- if .Views}}
      <div class="stat-item stat-views">{{.Views}} views</div>
      {{- end}}
      {{- if .Registrations}}
      <div class="stat-item stat-registrations">{{.Registrations}} applied</div>
      {{- end}}
    </div>
    <button class="apply-btn" onclick="event.stopPropagation(); window.open({{.URL}}, '_blank');">Apply</button>
  </div>
</div>
{{- end}}
</main>
{{- end}}
</body>
</html>
`

package report

import "html/template"

var pageTemplate = template.Must(template.New("gapdash-report").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --light: #F1F5F9;
      --border: #E2E8F0;
    }
    body { background-color: var(--light); }
    .card { border: 1px solid var(--border); }
    .table thead th { white-space: nowrap; }
    .table thead th a { color: inherit; text-decoration: none; }
    .sort-icon { font-size: 0.8rem; margin-left: 0.25rem; color: #94A3B8; }
    .sort-icon.active { color: #3B82F6; }
    .badge-green { background-color: #DCFCE7; color: #166534; }
    .badge-yellow { background-color: #FEF9C3; color: #854D0E; }
    .badge-orange { background-color: #FFEDD5; color: #9A3412; }
    .badge-red { background-color: #FEE2E2; color: #991B1B; }
    .bar { height: 0.5rem; border-radius: 9999px; background-color: #E5E7EB; }
    .bar > div { height: 100%; border-radius: 9999px; background-color: #3B82F6; }
    .swatch { display: inline-block; width: 0.75rem; height: 0.75rem; border-radius: 2px; margin-right: 0.25rem; }
    .chart svg { max-width: 100%; height: auto; }
  </style>
</head>
<body>
<div class="container py-4">
  <h1 class="text-center mb-1">{{ .Title }}</h1>
  <p class="text-center text-muted small mb-4">Generated {{ .Generated }}</p>

  <ul class="nav nav-pills justify-content-center mb-4">
    {{- range .Tabs }}
    <li class="nav-item">
      {{- if $.Linked }}
      <a class="nav-link{{ if .Active }} active{{ end }}" href="{{ .Href }}">{{ .Label }}</a>
      {{- else }}
      <button type="button" class="nav-link{{ if .Active }} active{{ end }}" data-view="{{ .View }}">{{ .Label }}</button>
      {{- end }}
    </li>
    {{- end }}
  </ul>

  {{- range .Panels }}
  <section class="view-panel" data-view="{{ .View }}"{{ if not .Active }} hidden{{ end }}>
    <div class="card shadow-sm mb-4"><div class="card-body">
      <h2 class="h4">Task-Level Data ({{ .Title }})</h2>
      <div class="table-responsive">
      <table class="table table-sm table-striped table-bordered">
        <thead><tr>
          {{- range .TaskHeaders }}
          <th>{{ if .Href }}<a href="{{ .Href }}">{{ .Label }}<span class="sort-icon{{ if .Active }} active{{ end }}">{{ .Indicator }}</span></a>{{ else }}{{ .Label }}<span class="sort-icon{{ if .Active }} active{{ end }}">{{ .Indicator }}</span>{{ end }}</th>
          {{- end }}
        </tr></thead>
        <tbody>
          {{- range .TaskRows }}
          <tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>
          {{- end }}
        </tbody>
      </table>
      </div>
      <p class="text-muted small mb-0">Total records: {{ len .TaskRows }}</p>
    </div></div>

    <div class="card shadow-sm mb-4"><div class="card-body">
      <h2 class="h4">Cancer-Grouped Data ({{ .Title }})</h2>
      <p class="text-muted small">Total Cancer Types: {{ len .GroupRows }}</p>
      <div class="table-responsive">
      <table class="table table-sm table-striped table-bordered">
        <thead><tr>
          {{- range .GroupHeaders }}
          <th>{{ if .Href }}<a href="{{ .Href }}">{{ .Label }}<span class="sort-icon{{ if .Active }} active{{ end }}">{{ .Indicator }}</span></a>{{ else }}{{ .Label }}<span class="sort-icon{{ if .Active }} active{{ end }}">{{ .Indicator }}</span>{{ end }}</th>
          {{- end }}
        </tr></thead>
        <tbody>
          {{- range .GroupRows }}
          <tr>{{ range .Cells }}<td>{{ . }}</td>{{ end }}<td><span class="badge rounded-pill badge-{{ .Tier }}">{{ .Badge }}</span></td></tr>
          {{- end }}
        </tbody>
      </table>
      </div>
    </div></div>

    <div class="card shadow-sm mb-4"><div class="card-body">
      <h2 class="h4">Pattern Distribution by Cancer Type</h2>
      <div class="d-flex flex-wrap align-items-center gap-2 mb-3">
        <label class="small fw-semibold">Cancer Type:</label>
        {{- if $.Linked }}
        {{- range .Options }}
        <a class="btn btn-sm {{ if .Active }}btn-primary{{ else }}btn-outline-secondary{{ end }}" href="{{ .Href }}">{{ .Label }}</a>
        {{- end }}
        {{- else }}
        <select class="form-select form-select-sm w-auto cancer-select">
          {{- range .Options }}
          <option value="{{ .Value }}"{{ if .Active }} selected{{ end }}>{{ .Label }}</option>
          {{- end }}
        </select>
        {{- end }}
      </div>
      {{- range .Dists }}
      <div class="dist" data-filter="{{ .Filter }}"{{ if not .Active }} hidden{{ end }}>
        <p class="text-muted small">Total Tasks: {{ .Total }}</p>
        {{- if .Chart }}
        <div class="chart text-center mb-3">{{ .Chart }}</div>
        {{- else }}
        <div class="text-center text-muted py-5">No data available for selected cancer type</div>
        {{- end }}
        <h3 class="h6">Pattern Distribution Summary{{ if ne .Filter "all" }} <span class="text-muted fw-normal">({{ .Label }})</span>{{ end }}</h3>
        <table class="table table-sm">
          <thead><tr><th>Pattern</th><th>Count</th><th>Percentage</th><th>Visual</th></tr></thead>
          <tbody>
            {{- range .Rows }}
            <tr>
              <td><span class="swatch" style="background-color: {{ .Color }}"></span>{{ .Label }}</td>
              <td>{{ .Count }}</td>
              <td>{{ .Percent }}</td>
              <td style="min-width: 8rem"><div class="bar"><div style="width: {{ .Width }}%"></div></div></td>
            </tr>
            {{- end }}
          </tbody>
        </table>
      </div>
      {{- end }}
    </div></div>
  </section>
  {{- end }}
</div>
{{- if not .Linked }}
<script>
  const summary = {{ .SummaryJSON }};
  document.querySelectorAll('button[data-view]').forEach(btn => {
    btn.addEventListener('click', () => {
      document.querySelectorAll('button[data-view]').forEach(b => b.classList.toggle('active', b === btn));
      document.querySelectorAll('.view-panel').forEach(p => { p.hidden = p.dataset.view !== btn.dataset.view; });
      document.title = '{{ .Title }} (' + summary[btn.dataset.view] + ' records)';
    });
  });
  document.querySelectorAll('.cancer-select').forEach(sel => {
    sel.addEventListener('change', () => {
      sel.closest('.view-panel').querySelectorAll('.dist').forEach(d => { d.hidden = d.dataset.filter !== sel.value; });
    });
  });
</script>
{{- end }}
</body>
</html>
`

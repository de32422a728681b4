package server

import "html/template"

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Error loading data</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"></head>
<body class="bg-light">
<div class="container text-center py-5">
  <div class="display-4 mb-3">⚠️</div>
  <div class="h4 text-danger mb-3">Error loading data</div>
  <div class="text-muted mb-4">{{ . }}</div>
  <form method="post" action="/reload"><button type="submit" class="btn btn-primary">Retry</button></form>
</div>
</body>
</html>
`))

var loadingPage = template.Must(template.New("loading").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><meta http-equiv="refresh" content="2"><title>Loading</title></head>
<body><p>Loading cancer analysis data...</p></body>
</html>
`))

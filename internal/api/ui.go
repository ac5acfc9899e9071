package api

import (
	"html/template"
	"net/http"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]any{
		"PageSize": s.cfg.DefaultPageSize,
	}); err != nil {
		s.log.Error("render index", "error", err)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>annotext</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
section { margin-bottom: 1.5rem; }
#preview { white-space: pre-wrap; border: 1px solid #ccc; padding: 1rem; min-height: 6rem; }
mark.ann { background: #8ef; padding: 0 .1em; }
.ann-label { font-size: .7em; font-weight: bold; margin-left: .3em; vertical-align: super; }
#message { color: #b00; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: .2rem .6rem; }
</style>
</head>
<body>
<h1>annotext</h1>

<section>
<form id="upload">
<input type="file" name="file" accept=".txt,.md,.markdown,.csv,.html,.htm,.pdf,.docx" required>
<input type="number" name="page_size" value="{{.PageSize}}" min="1" title="characters per page">
<button type="submit">Upload</button>
</form>
<p id="docmeta"></p>
</section>

<section>
<label>Page <input type="number" id="page" value="0" min="0"></label>
<span id="pagecount"></span>
<div id="preview"></div>
</section>

<section>
<form id="annotate">
<label>Start <input type="number" name="start" min="0" required></label>
<label>End <input type="number" name="end" min="0" required></label>
<label>Label <input type="text" name="label" value="PERSON" required></label>
<button type="submit">Add Annotation</button>
</form>
<p id="message"></p>
<table id="annotations"></table>
</section>

<section>
<a href="/api/export" download>Download annotations as JSON</a> |
<a href="/api/export?full=true" download>Download full export</a>
</section>

<script>
const msg = t => document.getElementById('message').textContent = t || '';

async function refresh() {
  const idx = +document.getElementById('page').value || 0;
  const res = await fetch('/api/pages/' + idx);
  if (!res.ok) { document.getElementById('preview').textContent = ''; return; }
  const page = await res.json();
  document.getElementById('preview').innerHTML = page.html;
  document.getElementById('page').value = page.index;
  document.getElementById('pagecount').textContent = 'of ' + page.total +
    ' (chars ' + page.start + '–' + page.end + ')';
  const list = await (await fetch('/api/annotations')).json();
  const rows = list.annotations.map((a, i) =>
    '<tr><td>' + a.start + '</td><td>' + a.end + '</td><td>' + a.label +
    '</td><td><button data-i="' + i + '">remove</button></td></tr>');
  document.getElementById('annotations').innerHTML =
    rows.length ? '<tr><th>start</th><th>end</th><th>label</th><th></th></tr>' + rows.join('') : '';
}

document.getElementById('upload').addEventListener('submit', async e => {
  e.preventDefault();
  const res = await fetch('/api/document', { method: 'POST', body: new FormData(e.target) });
  const body = await res.json();
  if (!res.ok) { msg(body.error); return; }
  msg('');
  document.getElementById('docmeta').textContent =
    body.filename + ': ' + body.length + ' characters, ' + body.pages + ' pages';
  document.getElementById('page').value = 0;
  refresh();
});

document.getElementById('annotate').addEventListener('submit', async e => {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch('/api/annotations', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ start: +f.get('start'), end: +f.get('end'), label: f.get('label') }),
  });
  if (!res.ok) {
    const body = await res.json();
    msg(body.error || 'validation failed');
    return;
  }
  msg('');
  refresh();
});

document.getElementById('annotations').addEventListener('click', async e => {
  if (e.target.dataset.i === undefined) return;
  await fetch('/api/annotations/' + e.target.dataset.i, { method: 'DELETE' });
  refresh();
});

document.getElementById('page').addEventListener('change', refresh);
</script>
</body>
</html>
`))

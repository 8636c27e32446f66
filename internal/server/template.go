package server

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Rec.Name}} · stylebook</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #f4f4f5; color: #18181b; }
.layout { display: grid; grid-template-columns: 240px 1fr 320px; min-height: 100vh; }
.nav, .info { padding: 16px; overflow-y: auto; background: #fff; }
.nav h2 { font-size: 12px; text-transform: uppercase; letter-spacing: .08em; color: #71717a; }
.nav a { display: block; padding: 4px 8px; color: inherit; text-decoration: none; border-radius: 4px; }
.nav a.active { background: #18181b; color: #fff; }
.stage { padding: 24px; display: flex; flex-direction: column; align-items: center; gap: 16px; }
.preview { position: relative; overflow: hidden; color: var(--text-primary); font-family: var(--font-body); }
.preview.view-app { width: 390px; min-height: 760px; border-radius: 44px; border: 10px solid #111; }
.preview.view-website { width: 100%; max-width: 1100px; min-height: 640px; border-radius: 8px; }
.preview h1, .preview h2, .preview h3 { font-family: var(--font-display); }
.preview .card, .preview input, .preview button { border-radius: var(--radius); box-shadow: var(--shadow); }
.preview .card { background: var(--bg-secondary); border: 1px solid var(--border); padding: 16px; margin: 12px 16px; }
.preview input { background: var(--bg-tertiary); border: 1px solid var(--border); color: var(--text-primary); padding: 10px 12px; width: calc(100% - 56px); margin: 0 16px; }
.preview button.primary { background: var(--accent); color: var(--bg-primary); border: 0; padding: 10px 18px; }
.preview .muted { color: var(--text-secondary); }
.preview .jp { font-family: var(--font-japanese); }
.overlay { position: absolute; inset: 0; pointer-events: none; }
.overlay-scanlines { background: repeating-linear-gradient(0deg, rgba(0,0,0,.15) 0 1px, transparent 1px 3px); }
.overlay-grid { background-image: linear-gradient(var(--border) 1px, transparent 1px), linear-gradient(90deg, var(--border) 1px, transparent 1px); background-size: 24px 24px; opacity: .4; }
.overlay-noise, .overlay-grain { opacity: .08; background: repeating-radial-gradient(circle, #000 0 1px, transparent 1px 2px); }
.deco { position: absolute; pointer-events: none; color: var(--accent); opacity: .35; font-size: 48px; }
.swatches { display: flex; gap: 4px; }
.swatch { width: 24px; height: 24px; border-radius: 4px; border: 1px solid #e4e4e7; }
.issue { color: #b91c1c; }
.guide { max-width: 1100px; width: 100%; background: #fff; padding: 16px 24px; border-radius: 8px; }
.intro { position: fixed; inset: 0; background: rgba(24,24,27,.92); color: #fff; display: flex; align-items: center; justify-content: center; z-index: 10; }
.intro form { max-width: 520px; text-align: center; }
</style>
</head>
<body>
{{- define "preview"}}
<div class="preview view-{{.State.View}} style-{{.Rec.ID}}" style="{{.Vars}}" data-style="{{.Rec.ID}}" data-view="{{.State.View}}">
<div class="preview-container" style="{{.Background}}">
{{- range .Overlays}}
<div class="overlay overlay-{{.}}"></div>
{{- end}}
{{- range $i, $d := .Decorations}}
<span class="deco deco-{{$d.Kind}} {{$d.Class}}" aria-hidden="true">{{$d.Glyph}}</span>
{{- end}}
{{- if eq (print .State.View) "website"}}
<header class="site-nav"><strong>{{.Rec.Name}}</strong> <span class="muted">Work · Studio · Journal · Contact</span></header>
<section class="hero">
<h1>Design that sets the tone.</h1>
<p class="muted">{{.Rec.Description}}</p>
<button class="primary">Get started</button>
</section>
<section class="features">
<div class="card"><h3>Consistent</h3><p class="muted">One palette, every surface.</p></div>
<div class="card"><h3>Accessible</h3><p class="muted">Contrast checked against WCAG AA.</p></div>
<div class="card"><h3>Portable</h3><p class="muted">Export to CSS, SwiftUI or a prompt.</p></div>
</section>
<section class="signup">
<h2>Stay in the loop</h2>
<input type="email" placeholder="you@example.com">
<button class="primary">Subscribe</button>
</section>
<footer class="muted">© Studio {{.Rec.Name}}</footer>
{{- else}}
<header class="app-header"><span class="logo-mark jp">語</span> <strong class="jp">日本語</strong> <span class="muted">Quick Guide</span></header>
<input type="text" placeholder="Search phrases...">
<nav class="tabs"><button class="primary">Restaurant</button> <span class="muted">Shopping · Conversation · Counters</span></nav>
<section class="card">
<h3>Japanese Typography</h3>
<p class="jp">あいうえお かきくけこ</p>
<p class="jp">アイウエオ カキクケコ</p>
<p class="jp">日本語 漢字 勉強</p>
</section>
<section class="card phrase">
<p class="jp">いらっしゃいませ</p>
<p class="muted">Irasshaimase · Welcome to the store</p>
</section>
<section class="card phrase">
<p class="jp">何名様ですか？</p>
<p class="muted">Nanmei-sama desu ka? · How many people?</p>
</section>
{{- end}}
</div>
</div>
{{- end}}
{{- if .State.PreviewOnly}}
{{template "preview" .}}
{{- else}}
{{- if .ShowIntro}}
<div class="intro" id="intro">
<form method="post" action="/intro/dismiss">
<input type="hidden" name="style" value="{{.Rec.ID}}">
<p>{{.StyleCount}} Design Styles</p>
<h1>Design Styles Explorer</h1>
<p>Preview each style on a phone app and a marketing site, then export CSS variables, SwiftUI colors or an AI prompt.</p>
<label><input type="checkbox" name="forever" value="true"> Don't show this again</label>
<p><button type="submit">View designs</button></p>
</form>
</div>
{{- end}}
<div class="layout">
<nav class="nav">
{{- range .Nav}}
<h2>{{.Name}}</h2>
{{- range .Items}}
<a href="{{.Link}}" data-style="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a>
{{- end}}
{{- end}}
</nav>
<main class="stage">
<div class="toolbar">
<a class="toggle-view" href="{{.ToggleLink}}">Switch to {{.State.View.Toggle.Label}}</a> ·
<a class="preview-link" href="{{.PreviewLink}}">Preview link</a> ·
<a href="/api/styles/{{.Rec.ID}}/markdown">Download markdown</a> ·
<a href="/api/styles/{{.Rec.ID}}/prompt?view={{.State.View}}">Prompt</a> ·
<a href="/api/styles/{{.Rec.ID}}/swift?platform=ios">SwiftUI</a> ·
<a href="/api/skills.zip">Skills</a>
</div>
{{template "preview" .}}
<article class="guide">{{.Guide}}</article>
</main>
<aside class="info">
<h2 class="style-name">{{.Rec.Name}}</h2>
<p>{{.Rec.Description}}</p>
{{- range .Swatches}}
<h3>{{.Name}}</h3>
<div class="swatches">
{{- range .Colors}}
<span class="swatch" title="{{.Value}}" style="{{.Style}}"></span>
{{- end}}
</div>
{{- end}}
<h3>Typography</h3>
<p>Display: {{.Summary.DisplayFont}}<br>Body: {{.Summary.BodyFont}}</p>
<h3>Properties</h3>
<p>Radius: {{.Summary.Radius}}<br>Shadow: {{.Summary.Shadow}}{{if .Summary.Gradient}}<br>Gradient: yes{{end}}</p>
<h3>Compliance</h3>
<p class="status">{{.Report.Status}}</p>
<ul>
{{- range .Report.Issues}}
<li class="issue issue-{{.Kind}}">{{.Message}}</li>
{{- end}}
</ul>
</aside>
</div>
{{- end}}
</body>
</html>
`

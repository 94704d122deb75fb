package preview

import "html/template"

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Pitch Perfect — Preview</title>
<style>
  body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; background: #111; color: #eee; }
  header { padding: 12px 24px; background: #1b1b1b; display: flex; justify-content: space-between; align-items: center; }
  header h1 { font-size: 16px; margin: 0; font-weight: 600; }
  main { display: flex; gap: 24px; padding: 24px; align-items: flex-start; }
  #slides { flex: 3; display: flex; flex-direction: column; gap: 24px; }
  .slide { aspect-ratio: 16 / 9; border-radius: 8px; padding: 36px 48px; box-sizing: border-box; overflow: hidden; position: relative; }
  .slide.current { outline: 3px solid #6cf; }
  .slide .num { position: absolute; top: 10px; right: 14px; font-size: 12px; opacity: 0.6; }
  .slide h2 { margin: 0 0 18px; font-size: 32px; }
  .slide .content { font-size: 18px; line-height: 1.5; }
  .slide .notes { position: absolute; bottom: 10px; left: 14px; font-size: 11px; opacity: 0.55; max-width: 70%; }
  aside { flex: 1; background: #1b1b1b; border-radius: 8px; padding: 16px; max-height: 85vh; overflow-y: auto; }
  aside h2 { font-size: 14px; margin: 0 0 12px; }
  .log-entry { font-size: 12px; margin-bottom: 10px; border-left: 3px solid #444; padding-left: 8px; white-space: pre-wrap; word-break: break-word; }
  .log-entry.user { border-color: #6cf; }
  .log-entry.ai { border-color: #8e8; }
  .log-entry.system { border-color: #e86; }
  .log-entry .who { font-weight: 700; margin-right: 6px; text-transform: uppercase; font-size: 10px; }
  .empty { padding: 60px; text-align: center; opacity: 0.6; }
</style>
</head>
<body>
<header>
  <h1>Pitch Perfect</h1>
  <span>{{.Count}} slide{{if ne .Count 1}}s{{end}}</span>
</header>
<main>
  <div id="slides">
    {{if not .Slides}}<div class="empty">The deck is empty. Generate slides with the wizard.</div>{{end}}
    {{range .Slides}}
    <section class="slide{{if .Current}} current{{end}}" style="background: {{.Background}}; color: {{.TextColor}};">
      <span class="num">{{.Index}} · {{.Theme}}</span>
      <h2 style="color: {{.AccentColor}};">{{.Title}}</h2>
      <div class="content">{{.ContentHTML}}</div>
      {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
    </section>
    {{end}}
  </div>
  <aside>
    <h2>Session log</h2>
    <div id="log"></div>
  </aside>
</main>
<script>
  const logEl = document.getElementById("log");
  function addEntry(e) {
    const div = document.createElement("div");
    div.className = "log-entry " + e.role;
    const who = document.createElement("span");
    who.className = "who";
    who.textContent = e.role;
    div.appendChild(who);
    div.appendChild(document.createTextNode(e.content));
    logEl.appendChild(div);
    logEl.scrollTop = logEl.scrollHeight;
  }
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/log");
  ws.onmessage = (ev) => addEntry(JSON.parse(ev.data));
</script>
</body>
</html>
`

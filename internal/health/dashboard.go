package health

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RenderDashboardHTML returns the status page served on GET /.
func RenderDashboardHTML(health CollectResult) string {
	payload := map[string]interface{}{
		"status":       health.Status,
		"runtime":      health.Runtime,
		"traffic":      health.Traffic,
		"dependencies": health.Dependencies,
	}
	b, _ := json.Marshal(payload)
	jsonStr := string(b)
	// Escape for embedding in a JS template literal.
	jsonStr = strings.ReplaceAll(jsonStr, "\\", "\\\\")
	jsonStr = strings.ReplaceAll(jsonStr, "`", "\\`")
	jsonStr = strings.ReplaceAll(jsonStr, "$", "\\$")

	headline := "All Systems Operational"
	if health.Status != "ok" {
		headline = "System Issues Detected"
	}
	avgTime := fmt.Sprint(health.Traffic.AvgResponseTime)

	return `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>FuelEU Compliance · API Status</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    :root { --navy: #0B3C5D; --sea: #1D7874; --bg: #F4F7F9; --muted: #64748b; --red: #EF4444; }
    * { box-sizing: border-box; }
    body { background: var(--bg); color: var(--navy); font-family: system-ui, sans-serif; margin: 0; padding: 48px 20px; display: flex; justify-content: center; }
    .wrap { width: 100%; max-width: 960px; }
    h1 { font-size: clamp(28px, 4vw, 44px); letter-spacing: -1px; margin: 0 0 6px; }
    .sub { color: var(--muted); font-weight: 600; margin-bottom: 28px; }
    .card { background: #fff; border: 1px solid rgba(0,0,0,0.06); border-radius: 18px; padding: 28px; margin-bottom: 18px; box-shadow: 0 10px 40px -20px rgba(11,60,93,0.25); }
    .grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 18px; }
    .label { text-transform: uppercase; font-size: 11px; font-weight: 800; letter-spacing: 1.5px; color: var(--muted); margin-bottom: 14px; }
    .big { font-size: 34px; font-weight: 900; margin-bottom: 10px; }
    .row { display: flex; justify-content: space-between; padding: 6px 0; font-size: 14px; font-weight: 600; border-bottom: 1px solid rgba(0,0,0,0.04); }
    .row:last-child { border-bottom: none; }
    .pill { padding: 3px 10px; border-radius: 8px; font-size: 11px; font-weight: 800; }
    .ok { background: rgba(29,120,116,0.1); color: var(--sea); }
    .err { background: rgba(239,68,68,0.1); color: var(--red); }
    .links { color: var(--muted); font-size: 13px; font-weight: 600; }
    .links a { color: var(--sea); margin-right: 14px; }
    @media (max-width: 760px) { .grid { grid-template-columns: 1fr; } }
  </style>
</head>
<body>
  <div class="wrap">
    <h1 id="headline">` + headline + `</h1>
    <div class="sub">Compliance ledger and pooling API · live monitoring</div>
    <div class="card">
      <div class="grid">
        <div>
          <div class="label">Traffic</div>
          <div class="big" id="total-req">` + fmt.Sprint(health.Traffic.TotalRequests) + `</div>
          <div class="row"><span>Successful</span><span id="success-count">` + fmt.Sprint(health.Traffic.SuccessCount) + `</span></div>
          <div class="row"><span>Failed</span><span id="failed-count">` + fmt.Sprint(health.Traffic.FailedCount) + `</span></div>
          <div class="row"><span>Success Rate</span><span id="success-rate">` + health.Traffic.SuccessRate + `%</span></div>
          <div class="row"><span>Avg Latency</span><span id="avg-time">` + avgTime + `ms</span></div>
        </div>
        <div>
          <div class="label">Runtime</div>
          <div class="big" id="uptime">--</div>
          <div class="row"><span>Heap Used</span><span id="mem-heap">` + fmt.Sprint(health.Runtime.Memory.HeapUsed) + ` MB</span></div>
          <div class="row"><span>Memory</span><span>` + fmt.Sprint(health.Runtime.Memory.RSS) + ` MB</span></div>
          <div class="row"><span>Platform</span><span>` + health.Runtime.Platform + `</span></div>
          <div class="row"><span>Go</span><span>` + health.Runtime.GoVersion + `</span></div>
        </div>
        <div>
          <div class="label">Dependencies</div>
          <div class="row"><span>Database</span><span id="pill-db" class="pill ok"><span id="ping-db">-- ms</span></span></div>
          <div class="row"><span>Redis</span><span id="pill-redis" class="pill ok"><span id="ping-redis">-- ms</span></span></div>
        </div>
      </div>
    </div>
    <div class="links">
      <a href="/health/json">/health/json</a>
      <a href="/health/errors">/health/errors</a>
      <a href="/metrics">/metrics</a>
      <span id="time-display"></span>
    </div>
  </div>
  <script>
    const fmtUptime = (s) => { const d = Math.floor(s / 86400); const h = Math.floor((s % 86400) / 3600); const m = Math.floor((s % 3600) / 60); return d > 0 ? d + 'd ' + h + 'h ' + m + 'm' : h + 'h ' + m + 'm'; };
    const updateUI = (d) => {
      document.getElementById('time-display').innerText = new Date().toLocaleTimeString();
      document.getElementById('total-req').innerText = d.traffic.totalRequests;
      document.getElementById('success-count').innerText = d.traffic.successCount;
      document.getElementById('failed-count').innerText = d.traffic.failedCount;
      document.getElementById('success-rate').innerText = d.traffic.successRate + '%';
      document.getElementById('avg-time').innerText = d.traffic.avgResponseTime + 'ms';
      document.getElementById('uptime').innerText = fmtUptime(d.runtime.uptimeSeconds);
      document.getElementById('mem-heap').innerText = d.runtime.memory.heapUsed + ' MB';
      const setP = (id, s, p) => { const pill = document.getElementById('pill-' + id); pill.className = 'pill ' + (s === 'connected' ? 'ok' : 'err'); document.getElementById('ping-' + id).innerText = (p != null ? p : '?') + ' ms'; };
      setP('db', d.dependencies.database.status, d.dependencies.database.pingMs);
      setP('redis', d.dependencies.redis.status, d.dependencies.redis.pingMs);
      document.getElementById('headline').innerText = d.status === 'ok' ? 'All Systems Operational' : 'System Issues Detected';
    };
    updateUI(JSON.parse(` + "`" + jsonStr + "`" + `));
    setInterval(async () => { try { const r = await fetch('/health/json'); updateUI(await r.json()); } catch (e) {} }, 15000);
  </script>
</body>
</html>`
}

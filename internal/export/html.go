package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"io"
	"os"
)

// playerTemplate is a self-contained document: every frame is embedded
// as a data URI and a small script drives playback.
var playerTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1em; }
img { display: block; border: 1px solid #ccc; }
.controls { margin-top: 0.5em; }
.controls input[type=range] { width: 320px; vertical-align: middle; }
</style>
</head>
<body>
<img id="frame" src="{{index .Frames 0}}" alt="{{.Title}}">
<div class="controls">
<button id="toggle">Pause</button>
<input id="scrub" type="range" min="0" max="{{.LastFrame}}" value="0">
<span id="counter">0 / {{.LastFrame}}</span>
</div>
<script>
var frames = [{{range .Frames}}"{{.}}",{{end}}];
var img = document.getElementById("frame");
var scrub = document.getElementById("scrub");
var counter = document.getElementById("counter");
var toggle = document.getElementById("toggle");
var i = 0;
var playing = true;
function show(n) {
  i = n % frames.length;
  img.src = frames[i];
  scrub.value = i;
  counter.textContent = i + " / " + (frames.length - 1);
}
var timer = setInterval(function() { if (playing) show(i + 1); }, {{.IntervalMs}});
toggle.addEventListener("click", function() {
  playing = !playing;
  toggle.textContent = playing ? "Pause" : "Play";
});
scrub.addEventListener("input", function() {
  playing = false;
  toggle.textContent = "Play";
  show(parseInt(scrub.value, 10));
});
</script>
</body>
</html>
`))

type playerData struct {
	Title      string
	Frames     []template.URL
	LastFrame  int
	IntervalMs int
}

// HTML writes an interactive animation document: embedded PNG frames
// with play/pause and scrubbing controls.
func HTML(w io.Writer, frames []image.Image, fps int, title string, progress Progress) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	data := playerData{
		Title:      title,
		Frames:     make([]template.URL, 0, len(frames)),
		LastFrame:  len(frames) - 1,
		IntervalMs: 1000 / fps,
	}
	if data.IntervalMs < 1 {
		data.IntervalMs = 1
	}
	var buf bytes.Buffer
	for i, frame := range frames {
		buf.Reset()
		if err := png.Encode(&buf, frame); err != nil {
			return err
		}
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
		data.Frames = append(data.Frames, template.URL(uri))
		if progress != nil {
			progress(i, len(frames))
		}
	}

	return playerTemplate.Execute(w, data)
}

// WriteHTML writes the interactive document to a file.
func WriteHTML(path string, frames []image.Image, fps int, title string, progress Progress) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := HTML(f, frames, fps, title, progress); err != nil {
		return err
	}
	return f.Close()
}

// Package ebitenhost runs a heartbutton.Button in an [Ebitengine] window.
//
// [Host] implements ebiten.Game: it centers the button, turns mouse and
// touch input into pointer samples, advances the animation once per tick
// and draws the button with the ebiten vector package. The button frame is
// cached offscreen and re-rendered only after the button requests a redraw.
//
// For scripted runs, [Host] accepts injected pointer events and a JSON
// [TestRunner] that can click, set state, wait, check expectations and take
// screenshots:
//
//	{"steps": [
//		{"action": "click"},
//		{"action": "wait", "frames": 30},
//		{"action": "expect", "checked": true, "phase": "idle"},
//		{"action": "screenshot", "label": "checked"}
//	]}
//
// Window and button settings can come from a TOML file ([LoadFileConfig]),
// optionally hot-reloaded with [Host.WatchConfig].
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

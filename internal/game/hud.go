package game

import (
	"fmt"

	"gravityshift/internal/run"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Theme colors, dark with an indigo accent
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 220)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorWin           = rl.NewColor(120, 220, 140, 255)
	colorLoss          = rl.NewColor(240, 100, 100, 255)
)

// HUD draws the run counters and the game-over panel with raygui.
type HUD struct {
	FontPath string
	FontSize float32

	font rl.Font
	log  *zap.Logger
}

func NewHUD(log *zap.Logger) *HUD {
	if log == nil {
		log = zap.NewNop()
	}
	return &HUD{
		FontPath: "assets/fonts/Outfit-Regular.ttf",
		FontSize: 22,
		log:      log.Named("hud"),
	}
}

// Init loads the font and applies the theme. Needs an open window.
func (h *HUD) Init() {
	if h.FontPath != "" && rl.FileExists(h.FontPath) {
		h.font = rl.LoadFontEx(h.FontPath, 48, nil)
		if h.font.Texture.ID > 0 {
			rl.SetTextureFilter(h.font.Texture, rl.FilterBilinear)
			gui.SetFont(h.font)
		} else {
			h.log.Warn("failed to load font", zap.String("path", h.FontPath))
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize(h.FontSize))
}

// Draw renders the counters and, once the run has ended, the game-over
// panel. It reports whether the quit button was pressed.
func (h *HUD) Draw(p run.Progress, inputEnabled bool) bool {
	rl.DrawRectangleRounded(rl.Rectangle{X: 10, Y: 10, Width: 280, Height: 74}, 0.2, 6, colorBgPanel)
	gui.Label(rl.Rectangle{X: 22, Y: 16, Width: 260, Height: 30}, CollectedText(p))
	gui.Label(rl.Rectangle{X: 22, Y: 48, Width: 260, Height: 30}, TimerText(p))

	if !inputEnabled && !p.Ended {
		gui.Label(rl.Rectangle{X: 22, Y: 90, Width: 260, Height: 24}, "Input disabled")
	}
	if !p.Ended {
		return false
	}

	w := float32(rl.GetScreenWidth())
	ht := float32(rl.GetScreenHeight())
	panel := rl.Rectangle{X: w/2 - 200, Y: ht/2 - 80, Width: 400, Height: 160}
	rl.DrawRectangle(0, 0, int32(w), int32(ht), rl.Fade(colorBgDark, 0.5))
	gui.Panel(panel, "")

	msg := p.Message
	size := h.FontSize * 1.6
	width := h.measure(msg, size)
	h.text(msg, panel.X+(panel.Width-width)/2, panel.Y+36, size, outcomeColor(p.Outcome))

	return gui.Button(rl.Rectangle{X: panel.X + 140, Y: panel.Y + 100, Width: 120, Height: 36}, "Quit")
}

// DrawDebug lists debug lines under the counters.
func (h *HUD) DrawDebug(lines []string) {
	y := float32(120)
	for _, line := range lines {
		h.text(line, 16, y, 16, rl.Lime)
		y += 20
	}
	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
}

// text draws with the loaded font, falling back to the default one.
func (h *HUD) text(s string, x, y, size float32, color rl.Color) {
	if h.font.Texture.ID > 0 {
		rl.DrawTextEx(h.font, s, rl.Vector2{X: x, Y: y}, size, 0, color)
	} else {
		rl.DrawText(s, int32(x), int32(y), int32(size), color)
	}
}

func (h *HUD) measure(s string, size float32) float32 {
	if h.font.Texture.ID > 0 {
		return rl.MeasureTextEx(h.font, s, size, 0).X
	}
	return float32(rl.MeasureText(s, int32(size)))
}

// textSize converts a point size to the raygui TEXT_SIZE property.
func textSize(size float32) gui.PropertyValue {
	if size < 1 {
		return 1
	}
	return gui.PropertyValue(size + 0.5)
}

func CollectedText(p run.Progress) string {
	return fmt.Sprintf("Collected Cubes: %d / %d", p.Collected, p.Target)
}

func TimerText(p run.Progress) string {
	return "Time: " + p.Clock
}

func outcomeColor(o run.Outcome) rl.Color {
	switch o {
	case run.OutcomeWin:
		return colorWin
	case run.OutcomeLoss:
		return colorLoss
	}
	return colorTextPrimary
}

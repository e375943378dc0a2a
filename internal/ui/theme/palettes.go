package theme

import "github.com/charmbracelet/lipgloss"

// palette is a table-driven Theme. Each slot holds {light, dark}.
type palette struct {
	primary, secondary, accent             [2]string
	err, warning, success, info            [2]string
	text, textMuted, textEmphasized        [2]string
	bg, bgSecondary, bgDarker              [2]string
	borderNormal, borderFocused, borderDim [2]string
}

func adaptive(pair [2]string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: pair[0], Dark: pair[1]}
}

func (p palette) Primary() lipgloss.AdaptiveColor        { return adaptive(p.primary) }
func (p palette) Secondary() lipgloss.AdaptiveColor      { return adaptive(p.secondary) }
func (p palette) Accent() lipgloss.AdaptiveColor         { return adaptive(p.accent) }
func (p palette) Error() lipgloss.AdaptiveColor          { return adaptive(p.err) }
func (p palette) Warning() lipgloss.AdaptiveColor        { return adaptive(p.warning) }
func (p palette) Success() lipgloss.AdaptiveColor        { return adaptive(p.success) }
func (p palette) Info() lipgloss.AdaptiveColor           { return adaptive(p.info) }
func (p palette) Text() lipgloss.AdaptiveColor           { return adaptive(p.text) }
func (p palette) TextMuted() lipgloss.AdaptiveColor      { return adaptive(p.textMuted) }
func (p palette) TextEmphasized() lipgloss.AdaptiveColor { return adaptive(p.textEmphasized) }
func (p palette) Background() lipgloss.AdaptiveColor     { return adaptive(p.bg) }
func (p palette) BackgroundSecondary() lipgloss.AdaptiveColor {
	return adaptive(p.bgSecondary)
}
func (p palette) BackgroundDarker() lipgloss.AdaptiveColor { return adaptive(p.bgDarker) }
func (p palette) BorderNormal() lipgloss.AdaptiveColor     { return adaptive(p.borderNormal) }
func (p palette) BorderFocused() lipgloss.AdaptiveColor    { return adaptive(p.borderFocused) }
func (p palette) BorderDim() lipgloss.AdaptiveColor        { return adaptive(p.borderDim) }

// Registration order matters: tokyonight is registered first and is
// therefore the default until SetTheme is called.
var builtin = []struct {
	name string
	p    palette
}{
	{"tokyonight", palette{
		primary: [2]string{"#2e7de9", "#82aaff"}, secondary: [2]string{"#9854f1", "#c099ff"}, accent: [2]string{"#b15c00", "#ff966c"},
		err: [2]string{"#f52a65", "#ff757f"}, warning: [2]string{"#b15c00", "#ff966c"}, success: [2]string{"#587539", "#c3e88d"}, info: [2]string{"#0db9d7", "#7dcfff"},
		text: [2]string{"#3760bf", "#c8d3f5"}, textMuted: [2]string{"#848cb5", "#636da6"}, textEmphasized: [2]string{"#8c6c3e", "#ffc777"},
		bg: [2]string{"#e1e2e7", "#222436"}, bgSecondary: [2]string{"#c8c9ce", "#2f334d"}, bgDarker: [2]string{"#d5d6db", "#1e2030"},
		borderNormal: [2]string{"#a8aecb", "#3b4261"}, borderFocused: [2]string{"#2e7de9", "#82aaff"}, borderDim: [2]string{"#c8c9ce", "#292e42"},
	}},
	{"dracula", palette{
		primary: [2]string{"#7e57c2", "#bd93f9"}, secondary: [2]string{"#0097a7", "#8be9fd"}, accent: [2]string{"#f9a825", "#f1fa8c"},
		err: [2]string{"#d32f2f", "#ff5555"}, warning: [2]string{"#ef6c00", "#ffb86c"}, success: [2]string{"#388e3c", "#50fa7b"}, info: [2]string{"#1976d2", "#8be9fd"},
		text: [2]string{"#212121", "#f8f8f2"}, textMuted: [2]string{"#757575", "#6272a4"}, textEmphasized: [2]string{"#000000", "#f8f8f2"},
		bg: [2]string{"#ffffff", "#282a36"}, bgSecondary: [2]string{"#e0e0e0", "#44475a"}, bgDarker: [2]string{"#bdbdbd", "#1e1f29"},
		borderNormal: [2]string{"#bdbdbd", "#6272a4"}, borderFocused: [2]string{"#7e57c2", "#bd93f9"}, borderDim: [2]string{"#e0e0e0", "#44475a"},
	}},
	{"nord", palette{
		primary: [2]string{"#5E81AC", "#88C0D0"}, secondary: [2]string{"#81A1C1", "#81A1C1"}, accent: [2]string{"#8FBCBB", "#8FBCBB"},
		err: [2]string{"#BF616A", "#BF616A"}, warning: [2]string{"#D08770", "#D08770"}, success: [2]string{"#A3BE8C", "#A3BE8C"}, info: [2]string{"#5E81AC", "#88C0D0"},
		text: [2]string{"#2E3440", "#ECEFF4"}, textMuted: [2]string{"#3B4252", "#8B95A7"}, textEmphasized: [2]string{"#000000", "#ECEFF4"},
		bg: [2]string{"#ECEFF4", "#2E3440"}, bgSecondary: [2]string{"#E5E9F0", "#3B4252"}, bgDarker: [2]string{"#D8DEE9", "#434C5E"},
		borderNormal: [2]string{"#4C566A", "#434C5E"}, borderFocused: [2]string{"#434C5E", "#4C566A"}, borderDim: [2]string{"#4C566A", "#434C5E"},
	}},
	{"solarized", palette{
		primary: [2]string{"#268bd2", "#268bd2"}, secondary: [2]string{"#6c71c4", "#6c71c4"}, accent: [2]string{"#2aa198", "#2aa198"},
		err: [2]string{"#dc322f", "#dc322f"}, warning: [2]string{"#b58900", "#b58900"}, success: [2]string{"#859900", "#859900"}, info: [2]string{"#cb4b16", "#cb4b16"},
		text: [2]string{"#657b83", "#839496"}, textMuted: [2]string{"#93a1a1", "#586e75"}, textEmphasized: [2]string{"#000000", "#839496"},
		bg: [2]string{"#fdf6e3", "#002b36"}, bgSecondary: [2]string{"#eee8d5", "#073642"}, bgDarker: [2]string{"#eee8d5", "#073642"},
		borderNormal: [2]string{"#eee8d5", "#073642"}, borderFocused: [2]string{"#93a1a1", "#586e75"}, borderDim: [2]string{"#eee8d5", "#073642"},
	}},
	{"gruvbox", palette{
		primary: [2]string{"#076678", "#83a598"}, secondary: [2]string{"#8f3f71", "#d3869b"}, accent: [2]string{"#b57614", "#fabd2f"},
		err: [2]string{"#9d0006", "#fb4934"}, warning: [2]string{"#af3a03", "#fe8019"}, success: [2]string{"#79740e", "#b8bb26"}, info: [2]string{"#076678", "#83a598"},
		text: [2]string{"#3c3836", "#ebdbb2"}, textMuted: [2]string{"#7c6f64", "#a89984"}, textEmphasized: [2]string{"#b57614", "#fabd2f"},
		bg: [2]string{"#fbf1c7", "#282828"}, bgSecondary: [2]string{"#ebdbb2", "#504945"}, bgDarker: [2]string{"#d5c4a1", "#1d2021"},
		borderNormal: [2]string{"#bdae93", "#504945"}, borderFocused: [2]string{"#076678", "#83a598"}, borderDim: [2]string{"#d5c4a1", "#3c3836"},
	}},
}

func init() {
	for _, t := range builtin {
		RegisterTheme(t.name, t.p)
	}
}

package output

import (
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// colorRx matches a color tag, optionally escaped with a leading backslash
var colorRx = regexp.MustCompile(`\\?\[(BOLD|UNDERLINE|RED|GREEN|YELLOW|NOTICE|/RESET)\]`)

var colors = map[string]color.Attribute{
	"BOLD":      color.Bold,
	"UNDERLINE": color.Underline,
	"RED":       color.FgRed,
	"GREEN":     color.FgGreen,
	"YELLOW":    color.FgYellow,
	"NOTICE":    color.FgHiBlack,
}

// writeColorized will replace `[COLORNAME]foo[/RESET]` with shell colors, or strip color tags if stripColors=true.
// Escaped tags, `\[COLORNAME]`, are written as the literal tag.
func writeColorized(value string, writer io.Writer, stripColors bool) (int, error) {
	var active *color.Color
	var b strings.Builder

	emit := func(segment string) {
		if segment == "" {
			return
		}
		if active != nil && !stripColors {
			segment = active.Sprint(segment)
		}
		b.WriteString(segment)
	}

	pos := 0
	for _, match := range colorRx.FindAllStringSubmatchIndex(value, -1) {
		start, end, groupStart, groupEnd := match[0], match[1], match[2], match[3]
		emit(value[pos:start])
		pos = end

		if value[start] == '\\' {
			emit(value[start+1 : end])
			continue
		}

		name := value[groupStart:groupEnd]
		if name == "/RESET" {
			active = nil
			continue
		}
		active = color.New(colors[name])
		// Colors were asked for explicitly, so the tty detection of fatih/color does not apply
		active.EnableColor()
	}
	emit(value[pos:])

	return io.WriteString(writer, b.String())
}

// StripColorCodes strips color tags from the given string
func StripColorCodes(value string) string {
	return colorRx.ReplaceAllStringFunc(value, func(tag string) string {
		if tag[0] == '\\' {
			return tag[1:]
		}
		return ""
	})
}

// EscapeColorCodes escapes the color tags in value, so that text which did not come from our own messages, such as
// a program name typed by the user, is printed verbatim.
func EscapeColorCodes(value string) string {
	return colorRx.ReplaceAllStringFunc(value, func(tag string) string {
		return `\` + tag
	})
}

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// glyphs is a three-row font for the clock digits.
var glyphs = map[rune][3]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {" ━┓", "  ┃", " ━┻"},
	'2': {"┏━┓", "┏━┛", "┗━━"},
	'3': {"┏━┓", " ━┫", "┗━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━━", "┗━┓", "┗━┛"},
	'6': {"┏━━", "┣━┓", "┗━┛"},
	'7': {"━━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "┗━┛"},
	':': {"•", " ", "•"},
}

// bigText renders s in the clock font, one string per row. Characters
// without a glyph are dropped.
func bigText(s string) [3]string {
	var rows [3][]string
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	var out [3]string
	for i := range rows {
		out[i] = strings.Join(rows[i], " ")
	}
	return out
}

// clockWidth is the rendered width of any MM:SS value.
var clockWidth = ansi.StringWidth(bigText("00:00")[0])

// Package banner renders the application title banner.
package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/relctl/relctl/shared/ansi"
	"golang.org/x/term"
)

const bannerColorEnv = "RELCTL_BANNER_COLOR"

var bannerColors = map[string]string{
	"orange": "\x1b[38;2;255;153;0m",
	"green":  "\x1b[38;2;30;215;96m",
	"blue":   "\x1b[38;2;24;119;242m",
	"red":    "\x1b[38;2;229;9;20m",
}

const bannerColorDefault = "orange"

var titleLines = []string{
	" ██████╗  ███████╗ ██╗      ██████╗ ████████╗ ██╗     ",
	" ██╔══██╗ ██╔════╝ ██║     ██╔════╝ ╚══██╔══╝ ██║     ",
	" ██████╔╝ █████╗   ██║     ██║         ██║    ██║     ",
	" ██╔══██╗ ██╔══╝   ██║     ██║         ██║    ██║     ",
	" ██║  ██║ ███████╗ ███████╗╚██████╗    ██║    ███████╗",
	" ╚═╝  ╚═╝ ╚══════╝ ╚══════╝ ╚═════╝    ╚═╝    ╚══════╝",
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if width > len(line) {
			pad = (width - len(line)) / 2
		}

		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}

		fmt.Println(line)
	}
}

func bannerColor() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(bannerColorEnv)))
	if color, ok := bannerColors[raw]; ok {
		return color
	}
	return bannerColors[bannerColorDefault]
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(bannerColor())
	printCenteredLines(titleLines, width)
	fmt.Print("\x1b[0m")
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const bannerWidth = 56

// PrintBanner writes a boxed title to stdout
func PrintBanner(title string) {
	writeBanner(os.Stdout, title, bannerWidth)
}

// writeBanner boxes title, widening the box when the title does not fit.
func writeBanner(w io.Writer, title string, width int) {
	inner := width - 2
	if n := utf8.RuneCountInString(title) + 2; n > inner {
		inner = n
	}

	edge := strings.Repeat("═", inner)
	fmt.Fprintf(w, "╔%s╗\n", edge)
	fmt.Fprintf(w, "║%s║\n", centered(title, inner))
	fmt.Fprintf(w, "╚%s╝\n", edge)
}

func centered(text string, width int) string {
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
}

package display

import (
	"fmt"
	"io"

	"github.com/backmassage/kebab-rename/internal/term"
)

// PrintBanner writes the ASCII art banner to w; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	term.Magenta.Fprint(w, ` _  __    _         _
| |/ /___| |__  __ _| |__   _ _ ___ _ _  __ _ _ __  ___
| ' </ -_) '_ \/ _`+"`"+` | '_ \ | '_/ -_) ' \/ _`+"`"+` | '  \/ -_)
|_|\_\___|_.__/\__,_|_.__/ |_| \___|_||_\__,_|_|_|_\___|
`)
	fmt.Fprintln(w)
}

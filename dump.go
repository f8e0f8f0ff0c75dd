package stablevec

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DumpPalette holds the colors used by Dump.
type DumpPalette struct {
	OK       *color.Color // consistent element cell
	Broken   *color.Color // back-reference does not match its slot
	Sentinel *color.Color // end sentinel
}

func makeDefaultPalette() DumpPalette {
	return DumpPalette{
		OK:       color.New(color.FgGreen),
		Broken:   color.New(color.FgRed, color.Bold),
		Sentinel: color.New(color.FgBlue),
	}
}

// Dump writes one line per index slot of v to w (for debugging purposes):
//
//	slot  back-reference  value
//
// Output is colored if w is a terminal.
func Dump[T any](v *Vector[T], w io.Writer) {
	FdumpPalette(v, w, makeDefaultPalette(), isTerminal(w))
}

// FdumpPalette is Dump with explicit colors. If colored is false, no escape
// sequences are written.
func FdumpPalette[T any](v *Vector[T], w io.Writer, palette DumpPalette, colored bool) {
	v.init()
	for _, c := range []*color.Color{palette.OK, palette.Broken, palette.Sentinel} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	fmt.Fprintf(w, "stable vector, %d elements, index capacity %d\n", v.Len(), cap(v.idx.cells))
	for i, c := range v.idx.cells {
		switch {
		case c.pos != i:
			tracer().Errorf("stablevec dump: cell at slot %d refers back to slot %d", i, c.pos)
			palette.Broken.Fprintf(w, "%6d  %6d  %v  <-- inconsistent\n", i, c.pos, c.value)
		case c.sentinel:
			palette.Sentinel.Fprintf(w, "%6d  %6d  end\n", i, c.pos)
		default:
			palette.OK.Fprintf(w, "%6d  %6d  %v\n", i, c.pos, c.value)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

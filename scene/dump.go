package scene

import (
	"fmt"
	"io"
	"strings"
)

// Writes the graphic tree, one graphic per line, indented by depth.
func Dump(w io.Writer, g Graphic) {
	dump(w, g, 0)
}

func DumpLayer(w io.Writer, l *Layer) {
	fmt.Fprintf(w, "layer bounds=%v scale=%v,%v\n", l.bounds, l.scaleX, l.scaleY)
	for _, g := range l.groups {
		dump(w, g, 1)
	}
}

func dump(w io.Writer, g Graphic, depth int) {
	pad := strings.Repeat("\t", depth)
	hidden := ""
	if !g.Embed().Visible() {
		hidden = " hidden"
	}
	switch t := g.(type) {
	case *Group:
		fmt.Fprintf(w, "%sgroup%s bounds=%v\n", pad, hidden, t.Bounds())
		for _, c := range t.children {
			dump(w, c, depth+1)
		}
	case *Shape:
		mode := "stroke"
		if t.filled {
			mode = "fill"
		}
		fmt.Fprintf(w, "%sshape%s %s bounds=%v\n", pad, hidden, mode, t.Bounds())
	case *Text:
		fmt.Fprintf(w, "%stext%s %q bounds=%v\n", pad, hidden, t.str, t.Bounds())
	default:
		fmt.Fprintf(w, "%s%T%s bounds=%v\n", pad, g, hidden, g.Bounds())
	}
}

// Table tests kept in txtar archives: each case is a pair of files, name.in and name.out.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type Archive struct {
	Filename string // for errors
	Tar      *txtar.Archive
	lines    []int // line of each file header in the source
}

func ReadArchive(filename string) (*Archive, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseArchive(src, filename), nil
}

func ParseArchive(src []byte, filename string) *Archive {
	ar := &Archive{Filename: filename, Tar: txtar.Parse(src)}
	line := bytes.Count(ar.Tar.Comment, []byte("\n")) + 1
	for _, f := range ar.Tar.Files {
		ar.lines = append(ar.lines, line)
		line += 1 + bytes.Count(f.Data, []byte("\n"))
	}
	return ar
}

// Runs fn as a subtest for every name.in file that has a matching name.out. Stops at the first failing case.
func (ar *Archive) RunPairs(t *testing.T, fn func(t *testing.T, in, out []byte) error) {
	t.Helper()
	files := map[string]*txtar.File{}
	for i := range ar.Tar.Files {
		f := &ar.Tar.Files[i]
		if _, ok := files[f.Name]; ok {
			t.Fatalf("%v: file already defined: %v", ar.Filename, f.Name)
		}
		files[f.Name] = f
	}

	for i, f := range ar.Tar.Files {
		if path.Ext(f.Name) != ".in" {
			continue
		}
		name := strings.TrimSuffix(f.Name, ".in")
		out, ok := files[name+".out"]
		if !ok {
			t.Logf("warning: missing %v.out", name)
			continue
		}
		ok = t.Run(name, func(t2 *testing.T) {
			if err := fn(t2, f.Data, out.Data); err != nil {
				t2.Fatalf("%s:%d: %v", ar.Filename, ar.lines[i], err)
			}
		})
		if !ok {
			break
		}
	}
}

//----------

// Compares line by line, ignoring blank lines and surrounding spaces.
func CompareLines(got, want string) error {
	g, w := trimmedLines(got), trimmedLines(want)
	for i := 0; i < max(len(g), len(w)); i++ {
		var a, b string
		if i < len(g) {
			a = g[i]
		}
		if i < len(w) {
			b = w[i]
		}
		if a != b {
			return fmt.Errorf("line %d: got %q, want %q\ngot:\n%v", i+1, a, b, strings.Join(g, "\n"))
		}
	}
	return nil
}

func trimmedLines(s string) []string {
	u := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			u = append(u, l)
		}
	}
	return u
}

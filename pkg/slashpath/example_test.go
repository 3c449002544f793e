package slashpath_test

import (
	"errors"
	"fmt"

	"github.com/MacroPower/slashpath/pkg/slashpath"
)

func ExampleConverter_ToSlash() {
	s, err := slashpath.Windows.ToSlash(`C:\Users\gopher\notes.txt`)
	if err != nil {
		panic(err)
	}

	fmt.Println(s)

	s, _ = slashpath.Windows.ToSlash(`\\server\share\docs`)
	fmt.Println(s)
	// Output:
	// C:/Users/gopher/notes.txt
	// \\server\share/docs
}

func ExampleConverter_FromSlash() {
	fmt.Println(slashpath.Windows.FromSlash("foo/bar/piyo.txt"))
	fmt.Println(slashpath.Unix.FromSlash("foo/bar/piyo.txt"))
	fmt.Println(slashpath.Unix.FromBackslash(`foo\bar\piyo.txt`))
	// Output:
	// foo\bar\piyo.txt
	// foo/bar/piyo.txt
	// foo/bar/piyo.txt
}

func ExampleConverter_ToSlashLossy() {
	p := "docs/\xffreport.txt"

	_, err := slashpath.Unix.ToSlash(p)
	fmt.Println(errors.Is(err, slashpath.ErrEncoding))
	fmt.Println(slashpath.Unix.ToSlashLossy(p))
	// Output:
	// true
	// docs/�report.txt
}

func ExampleConverter_FromSlashCow() {
	fmt.Println(slashpath.Windows.FromSlashCow("piyo.txt").Kind())
	fmt.Println(slashpath.Windows.FromSlashCow("foo/piyo.txt").Kind())
	// Output:
	// borrowed
	// owned
}

func ExampleConverter_Components() {
	for _, c := range slashpath.Windows.Components(`C:\foo\..\bar`) {
		fmt.Printf("%s %q\n", c.Kind, c.Text)
	}
	// Output:
	// prefix "C:"
	// root_dir "\\"
	// normal "foo"
	// parent_dir ".."
	// normal "bar"
}

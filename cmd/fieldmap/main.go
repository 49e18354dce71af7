package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/fieldmap/mapdef"
	"github.com/reoring/fieldmap/xcontent"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fieldmap CLI\n\nUsage:\n  fieldmap validate -f mapping.json\n  fieldmap diff -old current.json -new update.json [-apply]\n\nNotes:\n  - Mapping files may be JSON or YAML (.yaml/.yml).\n  - diff exits 1 when the merge reports conflicts.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "mapping definition file")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	mapping, err := loadMapping(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	for _, name := range mapping.SortedNames() {
		w := xcontent.NewMapWriter()
		mapping[name].ToXContent(w)
		out, err := w.MarshalJSON()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	}
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	var oldFile, newFile string
	var apply bool
	fs.StringVar(&oldFile, "old", "", "current mapping definition file")
	fs.StringVar(&newFile, "new", "", "updated mapping definition file")
	fs.BoolVar(&apply, "apply", false, "apply allowed deltas instead of simulating")
	_ = fs.Parse(args)
	if oldFile == "" || newFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	existing, err := loadMapping(oldFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	incoming, err := loadMapping(newFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	mc := mapdef.MergeMappings(existing, incoming, !apply)
	for _, c := range mc.Conflicts() {
		fmt.Println(c)
	}
	if mc.HasConflicts() {
		os.Exit(1)
	}
	fmt.Println("no conflicts")
}

func loadMapping(file string) (mapdef.Mapping, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return mapdef.ParseYAML(data, nil)
	default:
		return mapdef.Parse(data, nil)
	}
}

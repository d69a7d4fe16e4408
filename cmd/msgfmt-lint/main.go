package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-msgfmt/pkg/catalog"
)

type violation struct {
	dir     string
	locale  string
	message string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-ref locale] [dirs...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint message catalog directories against a reference locale.\n")
		flag.PrintDefaults()
	}
	refLocale := flag.String("ref", "en", "reference locale every other locale is checked against")
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"catalog"}
	}

	var violations []violation
	for _, dir := range dirs {
		linted, err := lintDir(dir, *refLocale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", dir, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) == 0 {
		fmt.Println("catalogs are consistent")
		return
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].dir != violations[j].dir {
			return violations[i].dir < violations[j].dir
		}
		if violations[i].locale != violations[j].locale {
			return violations[i].locale < violations[j].locale
		}
		return violations[i].message < violations[j].message
	})
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s: locale %s: %s\n", v.dir, v.locale, v.message)
	}
	os.Exit(1)
}

func lintDir(dir, refLocale string) ([]violation, error) {
	table, err := catalog.Load(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	ref := table.Strings(refLocale)
	if ref == nil {
		return nil, fmt.Errorf("reference locale %s is not defined", refLocale)
	}

	var violations []violation
	for _, locale := range table.Locales() {
		strings := table.Strings(locale)

		for id, text := range strings {
			if text == "" {
				violations = append(violations, violation{dir, locale, fmt.Sprintf("string %d is empty", id)})
			}
			if _, ok := ref[id]; !ok {
				violations = append(violations, violation{dir, locale, fmt.Sprintf("string %d is not defined in the reference locale", id)})
			}
		}
		for id := range ref {
			if _, ok := strings[id]; !ok {
				violations = append(violations, violation{dir, locale, fmt.Sprintf("string %d is missing", id)})
			}
		}
	}
	return violations, nil
}

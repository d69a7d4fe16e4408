package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-msgfmt/pkg/catalog"
	"github.com/goliatone/go-msgfmt/pkg/params"
	"github.com/goliatone/go-msgfmt/pkg/render"
)

func main() {
	dir := flag.String("dir", "catalog", "catalog directory to load")
	rendererName := flag.String("renderer", "verbatim", "renderer to preview with")
	flag.Parse()

	table, err := catalog.Load(os.DirFS(*dir))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	locales := table.Locales()
	if len(locales) == 0 {
		log.Fatalf("no catalog documents found under %s", *dir)
	}

	registry := render.NewRegistry()
	registry.MustRegister("verbatim", render.Verbatim())
	registry.MustRegister("annotated", render.Annotated())
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(registry.List(), ", "))
	}

	locale, err := pickLocale(locales)
	if err != nil {
		log.Fatal(err)
	}
	id, err := pickString(table, locale)
	if err != nil {
		log.Fatal(err)
	}
	pack, err := collectArguments()
	if err != nil {
		log.Fatal(err)
	}

	out, err := render.GetString(table, renderer, locale, id, pack.List())
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println(out)
}

func pickLocale(locales []string) (string, error) {
	if len(locales) == 1 {
		return locales[0], nil
	}
	var locale string
	prompt := &survey.Select{
		Message: "Locale:",
		Options: locales,
	}
	if err := survey.AskOne(prompt, &locale); err != nil {
		return "", err
	}
	return locale, nil
}

func pickString(table *catalog.Table, locale string) (catalog.StringID, error) {
	entries := table.Strings(locale)
	ids := make([]catalog.StringID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	options := make([]string, len(ids))
	for i, id := range ids {
		options[i] = fmt.Sprintf("%d: %s", id, entries[id])
	}

	var index int
	prompt := &survey.Select{
		Message: "Template:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, err
	}
	return ids[index], nil
}

func collectArguments() (*params.Pack, error) {
	var raw string
	prompt := &survey.Input{
		Message: "Arguments:",
		Help:    "comma separated integers, blank for none",
	}
	if err := survey.AskOne(prompt, &raw); err != nil {
		return nil, err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return params.NewPack(0), nil
	}

	fields := strings.Split(raw, ",")
	pack := params.NewPack(len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		pack.SetInt64(i, v)
	}
	return pack, nil
}

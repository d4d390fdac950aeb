package main

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// loadTranslations parses the embedded catalog for lang.
func loadTranslations(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

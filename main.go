package main

import (
	"embed"

	"github.com/jeandeaual/go-locale"
	"github.com/robinmordasiewicz/xc-manifest/cmd"
	"github.com/robinmordasiewicz/xc-manifest/internal/i18n"
)

//go:embed locales/*.json
var localeFS embed.FS

func main() {
	i18n.Init(localeFS, getLocale())

	cmd.Execute()
}

// getLocale detects the system locale, falling back to en-US
func getLocale() string {
	userLocale, err := locale.GetLocale()
	if err != nil || userLocale == "" {
		return "en-US"
	}
	return userLocale
}

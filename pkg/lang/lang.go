// Package lang holds the translated strings shown around widgets (stat trends,
// chart placeholders, period names) for every supported locale.
package lang

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Fallback is used when a locale or key is missing.
const Fallback = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	loadOnce sync.Once
	tables   map[string]map[string]string
	tags     []language.Tag
	names    []string
	matcher  language.Matcher
	loadErr  error
)

func load() {
	loadOnce.Do(func() {
		tables = make(map[string]map[string]string)

		entries, err := fs.ReadDir(localeFS, "locales")
		if err != nil {
			loadErr = err
			return
		}
		for _, e := range entries {
			locale := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				loadErr = err
				return
			}
			var raw map[string]any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				loadErr = fmt.Errorf("locale %s: %w", locale, err)
				return
			}
			flat := make(map[string]string)
			flatten("", raw, flat)
			tables[locale] = flat
		}

		// The fallback goes first so the matcher prefers it on ties.
		names = make([]string, 0, len(tables))
		for locale := range tables {
			if locale != Fallback {
				names = append(names, locale)
			}
		}
		sort.Strings(names)
		names = append([]string{Fallback}, names...)

		tags = make([]language.Tag, len(names))
		for i, n := range names {
			tags[i] = language.Make(n)
		}
		matcher = language.NewMatcher(tags)
	})
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Locales returns the supported locales, fallback first.
func Locales() []string {
	load()
	return append([]string(nil), names...)
}

// Match picks the best supported locale for an Accept-Language header or a
// locale string such as "ar-EG". Unsupported input yields Fallback.
func Match(accept string) string {
	load()
	if loadErr != nil || accept == "" {
		return Fallback
	}
	_, idx, conf := matcher.Match(parse(accept)...)
	if conf == language.No {
		return Fallback
	}
	return names[idx]
}

func parse(accept string) []language.Tag {
	parsed, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(parsed) == 0 {
		return []language.Tag{language.Make(accept)}
	}
	return parsed
}

// Lookup returns the string for a dotted key such as "stats.increase".
// Keys missing in locale are looked up in Fallback.
func Lookup(locale, key string) (string, bool) {
	load()
	if s, ok := tables[locale][key]; ok {
		return s, true
	}
	s, ok := tables[Fallback][key]
	return s, ok
}

// T is Lookup that returns the key itself when nothing matches.
func T(locale, key string) string {
	if s, ok := Lookup(locale, key); ok {
		return s
	}
	return key
}

// Table returns a copy of every string of a locale, keyed by dotted path.
// Missing keys are filled from Fallback.
func Table(locale string) (map[string]string, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	own, ok := tables[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	out := make(map[string]string, len(tables[Fallback]))
	for k, v := range tables[Fallback] {
		out[k] = v
	}
	for k, v := range own {
		out[k] = v
	}
	return out, nil
}

// Direction returns "rtl" for right-to-left scripts and "ltr" otherwise.
func Direction(locale string) string {
	base, _ := language.Make(locale).Base()
	switch base.String() {
	case "ar", "he", "fa", "ur":
		return "rtl"
	}
	return "ltr"
}

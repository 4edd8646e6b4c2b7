// Package docs embeds the widget documentation and offers a small search over it.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/panels/internal/fuzzy"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page is one documentation page.
type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Result is a search hit.
type Result struct {
	Page
	Score int `json:"score"`
}

var (
	loadOnce sync.Once
	pages    []Page
	bySlug   map[string]int
)

func load() {
	loadOnce.Do(func() {
		bySlug = make(map[string]int)
		entries, _ := fs.ReadDir(pagesFS, "pages")
		for _, e := range entries {
			data, err := pagesFS.ReadFile("pages/" + e.Name())
			if err != nil {
				continue
			}
			slug := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
			body := string(data)
			bySlug[slug] = len(pages)
			pages = append(pages, Page{Slug: slug, Title: title(body, slug), Body: body})
		}
	})
}

func title(body, fallback string) string {
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		if line := sc.Text(); strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

// Pages returns every page sorted by slug.
func Pages() []Page {
	load()
	return append([]Page(nil), pages...)
}

// Get returns the page with the given slug.
func Get(slug string) (Page, error) {
	load()
	i, ok := bySlug[slug]
	if !ok {
		if s, ok := fuzzy.Closest(slug, slugs(), 3); ok {
			return Page{}, fmt.Errorf("page %q not found (did you mean %q?)", slug, s)
		}
		return Page{}, fmt.Errorf("page %q not found", slug)
	}
	return pages[i], nil
}

func slugs() []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Slug
	}
	return out
}

// Search ranks pages against query. Every query term found in a title scores 10,
// every occurrence in a body scores 1, and a title word within two edits of a
// term scores 3. Pages that score nothing are dropped.
func Search(query string) []Result {
	load()
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []Result
	for _, p := range pages {
		lowerTitle := strings.ToLower(p.Title)
		lowerBody := strings.ToLower(p.Body)
		titleWords := strings.Fields(lowerTitle)

		score := 0
		for _, term := range terms {
			if strings.Contains(lowerTitle, term) {
				score += 10
			} else if _, ok := fuzzy.Closest(term, titleWords, 2); ok && len(term) > 3 {
				score += 3
			}
			score += strings.Count(lowerBody, term)
		}
		if score > 0 {
			results = append(results, Result{Page: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

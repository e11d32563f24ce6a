package web

import (
	"io/fs"
	"strings"
	"testing"

	"golang.org/x/net/html"

	webfs "github.com/justestif/moodtunes/web"
)

// loadTemplates loads the embedded production templates.
func loadTemplates(t *testing.T) *Templates {
	t.Helper()

	sub, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		t.Fatalf("fs.Sub() error = %v", err)
	}
	templates, err := NewTemplates(sub)
	if err != nil {
		t.Fatalf("NewTemplates() error = %v", err)
	}
	return templates
}

// renderedCard is what a song card shows on the page.
type renderedCard struct {
	VideoID   string
	Title     string
	Thumbnail string
	PlayerURL string
}

// parsePage parses a rendered HTML page.
func parsePage(t *testing.T, body string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

// findAllByClass returns every element carrying class, in document order.
func findAllByClass(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// findByClass returns the first element carrying class, or nil.
func findByClass(n *html.Node, class string) *html.Node {
	if all := findAllByClass(n, class); len(all) > 0 {
		return all[0]
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// songCards extracts every rendered song card.
func songCards(doc *html.Node) []renderedCard {
	var cards []renderedCard
	for _, li := range findAllByClass(doc, "song-card") {
		card := renderedCard{
			VideoID: attr(li, "data-video-id"),
			Title:   text(findByClass(li, "song-title")),
		}
		if img := findByClass(li, "thumbnail"); img != nil {
			card.Thumbnail = attr(img, "src")
		}
		if player := findByClass(li, "player"); player != nil {
			card.PlayerURL = attr(player, "src")
		}
		cards = append(cards, card)
	}
	return cards
}

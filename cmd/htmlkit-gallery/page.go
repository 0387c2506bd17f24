package main

import (
	"slices"

	"github.com/loseth/htmlkit"
	"github.com/loseth/htmlkit/markup"
	"github.com/loseth/htmlkit/theme"
)

// release feeds the changelog accordion.
type release struct {
	version string
	notes   string
}

var releases = []release{
	{version: "v1.2.0", notes: "- `Collect` builds accordions from any sequence\n- Theme files accept `open-foreground`\n"},
	{version: "v1.1.0", notes: "- Markdown section bodies\n- Flush and plain style variants\n"},
	{version: "v1.0.0", notes: "- First stable release\n"},
}

// galleryPage composes the whole demo page. Each demo builds its
// accordion from scratch, so the sections double as value-semantics
// examples: nothing is shared, nothing is mutated.
func galleryPage(th theme.Theme) markup.Node {
	head := markup.Element("head",
		markup.Element("meta").Attr("charset", "utf-8"),
		markup.Element("title", markup.Text("htmlkit gallery")),
		markup.Element("link").Attr("rel", "stylesheet").Attr("href", "/static/gallery.css"),
	)
	body := markup.Element("body",
		markup.Element("h1", markup.Text("htmlkit gallery")),
		demo("Defaults", "One open section at a time; the second starts expanded.",
			faq()),
		demo("Theme: "+th.Name, "Loaded from YAML and applied without touching the base value.",
			th.Apply(faq())),
		demo("Flush, custom colors", "Style variant plus header color modifiers.",
			faq().Style(htmlkit.StyleFlush).
				HeaderBackground(htmlkit.MustHex("#1e293b"), htmlkit.MustHex("#0f172a")).
				HeaderForeground(htmlkit.MustHex("#e2e8f0")).
				BorderColor(htmlkit.MustHex("#334155"))),
		demo("Open all", "Sections toggle independently.",
			htmlkit.New(
				htmlkit.NewItem("First", markup.Text("Stays open on its own.")).Open(true),
				htmlkit.NewItem("Second", markup.Text("So does this one.")).Open(true),
				htmlkit.NewItem("Third", markup.Text("Closed until clicked.")),
			).OpenMode(htmlkit.OpenAll)),
		demo("Changelog", "Markdown bodies collected from a release list.",
			changelog()),
	)
	return markup.Fragment(
		markup.Raw("<!DOCTYPE html>"),
		markup.Element("html", head, body).Attr("lang", "en"),
	)
}

func faq() htmlkit.Accordion {
	return htmlkit.New(
		htmlkit.NewItem("Shipping", markup.Element("p", markup.Text("Orders leave the warehouse within 3-5 business days."))),
		htmlkit.NewItem("Returns", markup.Element("p", markup.Text("Returns are accepted within 30 days of delivery."))).Open(true),
		htmlkit.NewItem("Support", markup.Element("p", markup.Text("Reach us any time at support@example.com."))),
	)
}

func changelog() htmlkit.Accordion {
	return htmlkit.Collect(slices.Values(releases), func(r release) htmlkit.Section {
		return htmlkit.NewItem(r.version, markdownBody(r.notes))
	})
}

// markdownBody falls back to the raw source as text when conversion
// fails; a demo page prefers degraded output over a dropped section.
func markdownBody(source string) markup.Node {
	n, err := htmlkit.Markdown(source)
	if err != nil {
		return markup.Text(source)
	}
	return n
}

func demo(title, caption string, acc htmlkit.Accordion) markup.Node {
	return markup.Element("article",
		markup.Element("h2", markup.Text(title)),
		markup.Element("p", markup.Text(caption)).Class("caption"),
		acc.Render(),
	).Class("demo")
}

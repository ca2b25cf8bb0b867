package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML visits <head> and <body> of an HTML parse tree, collects the
// embedded <style> elements and parses each into a stylesheet. Elements
// whose content the CSS grammar rejects are skipped.
func FromHTML(htmldoc *html.Node) []*StyleSheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	sheets = append(sheets, extractStyles(body)...)
	return sheets
}

func extractStyles(h *html.Node) []*StyleSheet {
	if h == nil {
		return nil
	}
	var sheets []*StyleSheet
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			sheet, err := Parse(ch.FirstChild.Data)
			if err != nil {
				tracer().Infof("skipping unparsable <style> element: %v", err)
			} else {
				sheets = append(sheets, sheet)
			}
		}
		ch = ch.NextSibling
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}

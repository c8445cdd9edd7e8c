package extract

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/identigen/internal/model"
	"golang.org/x/net/html"
)

// ErrUnexpectedDocument is returned when the profile page lacks the expected elements
var ErrUnexpectedDocument = errors.New("unexpected document shape")

// Selectors for the generator's profile page
const (
	addressSelector = "div.address"
	nameSelector    = "h3"
	adrSelector     = "div.adr"
	fieldSelector   = "dl.dl-horizontal"
)

// IdentityExtractor extracts a synthetic identity from a profile page
type IdentityExtractor struct {
	ssn *SSNRewriter
}

// NewIdentityExtractor creates an extractor. A nil rng uses a generator
// seeded from process entropy.
func NewIdentityExtractor(rng *rand.Rand) *IdentityExtractor {
	return &IdentityExtractor{
		ssn: NewSSNRewriter(rng),
	}
}

// Extract parses htmlContent into a Record
func (e *IdentityExtractor) Extract(htmlContent string) (*model.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	section := doc.Find(addressSelector).First()
	if section.Length() == 0 {
		return nil, fmt.Errorf("%w: no %s element", ErrUnexpectedDocument, addressSelector)
	}

	heading := section.Find(nameSelector).First()
	if heading.Length() == 0 {
		return nil, fmt.Errorf("%w: no %s inside %s", ErrUnexpectedDocument, nameSelector, addressSelector)
	}

	adr := section.Find(adrSelector).First()
	if adr.Length() == 0 {
		return nil, fmt.Errorf("%w: no %s inside %s", ErrUnexpectedDocument, adrSelector, addressSelector)
	}

	record := &model.Record{
		Name:    textNodes(heading, ""),
		Address: collapseWhitespace(textNodes(adr, " ")),
	}

	var fieldErr error
	doc.Find(fieldSelector).EachWithBreak(func(_ int, dl *goquery.Selection) bool {
		dt := dl.Find("dt").First()
		dd := dl.Find("dd").First()
		if dt.Length() == 0 || dd.Length() == 0 {
			return true
		}

		label := textNodes(dt, "")
		value := RemoveUnwantedPhrases(textNodes(dd, " "))

		if strings.EqualFold(label, "ssn") {
			rewritten, err := e.ssn.Rewrite(value)
			if err != nil {
				fieldErr = err
				return false
			}
			value = rewritten
		}

		record.Fields = append(record.Fields, model.LabeledField{
			Label: label,
			Value: value,
		})
		return true
	})
	if fieldErr != nil {
		return nil, fieldErr
	}

	return record, nil
}

// textNodes joins the trimmed, non-empty text nodes under sel with sep
func textNodes(sel *goquery.Selection, sep string) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		// Script and style bodies are never part of the visible value
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}

	return strings.Join(parts, sep)
}

// collapseWhitespace turns newlines and whitespace runs into single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package wikitext

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Page is one `<page>` element of a dump block.
type Page struct {
	ID       uint32
	HasID    bool // False when the page carried no direct <id> child.
	Title    string
	Redirect string
	Text     string
}

type pageField int

const (
	fieldNone pageField = iota
	fieldTitle
	fieldID
	fieldText
)

// ParsePages streams the XML in r and invokes fn once per completed page, in
// document order.
//
// A block is a fragment of the full dump: it holds a run of sibling <page>
// elements and the final block also carries the closing </mediawiki> tag, so
// tokens are read without start/end balancing outside of pages.  Only the <id>
// which is a direct child of <page> is taken as the page id; revision and
// contributor ids nested deeper are ignored.
func ParsePages(r io.Reader, fn func(page *Page) error) error {
	var (
		d     = xml.NewDecoder(r)
		page  *Page
		depth int
		field pageField
		id    strings.Builder
		text  strings.Builder
		title strings.Builder
	)

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("parsing pages: %s", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if page == nil {
				if t.Name.Local == "page" {
					page = &Page{}
					depth = 0
					field = fieldNone
					id.Reset()
					text.Reset()
					title.Reset()
				}
				continue
			}
			depth++
			switch t.Name.Local {
			case "title":
				if depth == 1 {
					field = fieldTitle
				}
			case "id":
				if depth == 1 && !page.HasID {
					field = fieldID
				}
			case "text":
				field = fieldText
			case "redirect":
				if depth == 1 {
					for _, attr := range t.Attr {
						if attr.Name.Local == "title" {
							page.Redirect = attr.Value
						}
					}
				}
			}

		case xml.EndElement:
			if page == nil {
				continue
			}
			if depth == 0 {
				if t.Name.Local != "page" {
					return fmt.Errorf("parsing pages: unexpected </%v> closing <page>", t.Name.Local)
				}
				page.Title = title.String()
				page.Text = text.String()
				if err := fn(page); err != nil {
					return err
				}
				page = nil
				continue
			}
			if field == fieldID {
				v := strings.TrimSpace(id.String())
				n, err := strconv.ParseUint(v, 10, 32)
				if err != nil {
					return fmt.Errorf("parsing page id %q: %s", v, err)
				}
				page.ID = uint32(n)
				page.HasID = true
			}
			field = fieldNone
			depth--

		case xml.CharData:
			if page == nil {
				continue
			}
			switch field {
			case fieldTitle:
				title.Write(t)
			case fieldID:
				id.Write(t)
			case fieldText:
				text.Write(t)
			}
		}
	}

	if page != nil {
		return fmt.Errorf("parsing pages: unterminated <page> (title=%q)", title.String())
	}
	return nil
}

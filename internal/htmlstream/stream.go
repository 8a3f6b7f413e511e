// Package htmlstream turns an HTML document into a flat, forward-only
// sequence of structural events. Extractors pull events one at a time
// and keep their boundary state in plain struct fields, so record
// detection stays explicit and testable without any DOM in memory.
package htmlstream

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Kind identifies the type of a structural event.
type Kind int

const (
	StartTag Kind = iota
	EndTag
	Text
)

// Event is a single structural event: an element opening with its
// attributes, a chunk of character data, or an element closing.
type Event struct {
	Kind  Kind
	Tag   string
	Attrs []html.Attribute
	Text  string
}

// Attr returns the value of the named attribute, or "" when absent.
// Missing attributes degrade to empty values rather than erroring
// because upstream markup is not contractually stable.
func (e Event) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether the event's class attribute contains the
// given class name.
func (e Event) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// Void elements never carry content and the tokenizer emits no end tag
// for them, so the stream synthesizes one to keep depth tracking
// uniform for consumers.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Stream produces a finite sequence of events from one HTML document.
// It consumes its reader as it goes and is not restartable.
type Stream struct {
	z       *html.Tokenizer
	pending []Event
	done    bool
}

// New returns a Stream reading from r.
func New(r io.Reader) *Stream {
	return &Stream{z: html.NewTokenizer(r)}
}

// Next returns the next event. ok is false once the document is
// exhausted. Tokenizer errors end the stream silently: malformed
// markup degrades instead of failing the whole extraction.
func (s *Stream) Next() (ev Event, ok bool) {
	if len(s.pending) > 0 {
		ev = s.pending[0]
		s.pending = s.pending[1:]
		return ev, true
	}
	for !s.done {
		switch s.z.Next() {
		case html.ErrorToken:
			s.done = true
		case html.StartTagToken:
			tag, attrs := s.tagAndAttrs()
			if voidElements[tag] {
				s.pending = append(s.pending, Event{Kind: EndTag, Tag: tag})
			}
			return Event{Kind: StartTag, Tag: tag, Attrs: attrs}, true
		case html.SelfClosingTagToken:
			tag, attrs := s.tagAndAttrs()
			s.pending = append(s.pending, Event{Kind: EndTag, Tag: tag})
			return Event{Kind: StartTag, Tag: tag, Attrs: attrs}, true
		case html.EndTagToken:
			tag, _ := s.tagAndAttrs()
			return Event{Kind: EndTag, Tag: tag}, true
		case html.TextToken:
			return Event{Kind: Text, Text: string(s.z.Text())}, true
		default:
			// Comments, doctypes and CDATA carry no structure.
		}
	}
	return Event{}, false
}

func (s *Stream) tagAndAttrs() (string, []html.Attribute) {
	name, hasAttr := s.z.TagName()
	tag := string(name)
	if !hasAttr {
		return tag, nil
	}
	var attrs []html.Attribute
	for {
		key, val, more := s.z.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
		if !more {
			break
		}
	}
	return tag, attrs
}

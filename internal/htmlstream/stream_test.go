package htmlstream

import (
	"strings"
	"testing"
)

func collect(t *testing.T, doc string) []Event {
	t.Helper()
	s := New(strings.NewReader(doc))
	var events []Event
	for {
		ev, ok := s.Next()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return events
}

func TestStreamEventOrder(t *testing.T) {
	events := collect(t, `<div class="card"><a href="/x.html">Hello</a></div>`)

	want := []struct {
		kind Kind
		tag  string
		text string
	}{
		{StartTag, "div", ""},
		{StartTag, "a", ""},
		{Text, "", "Hello"},
		{EndTag, "a", ""},
		{EndTag, "div", ""},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		if events[i].Kind != w.kind || events[i].Tag != w.tag || events[i].Text != w.text {
			t.Errorf("event %d = %+v, want %+v", i, events[i], w)
		}
	}
}

func TestStreamVoidElementsGetSyntheticEndTags(t *testing.T) {
	events := collect(t, `<div><img src="a.jpg"><br/></div>`)

	var kinds []string
	for _, ev := range events {
		switch ev.Kind {
		case StartTag:
			kinds = append(kinds, "start:"+ev.Tag)
		case EndTag:
			kinds = append(kinds, "end:"+ev.Tag)
		}
	}
	want := []string{"start:div", "start:img", "end:img", "start:br", "end:br", "end:div"}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestStreamSkipsComments(t *testing.T) {
	events := collect(t, `<p>one<!-- split -->two</p>`)

	var texts []string
	for _, ev := range events {
		if ev.Kind == Text {
			texts = append(texts, ev.Text)
		}
	}
	// The comment splits the paragraph into two separate text events.
	if len(texts) != 2 || texts[0] != "one" || texts[1] != "two" {
		t.Errorf("got text events %q, want [one two]", texts)
	}
}

func TestStreamToleratesTruncatedMarkup(t *testing.T) {
	events := collect(t, `<div><a href="/x`)
	// No panic and no error surface, just whatever could be read.
	for _, ev := range events {
		if ev.Kind == StartTag && ev.Tag == "div" {
			return
		}
	}
	t.Error("expected at least the opening div event")
}

func TestEventAttrHelpers(t *testing.T) {
	events := collect(t, `<a class="page-link  active" data-page="3" href="">x</a>`)
	anchor := events[0]
	if got := anchor.Attr("data-page"); got != "3" {
		t.Errorf("Attr(data-page) = %q, want 3", got)
	}
	if got := anchor.Attr("missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}
	if !anchor.HasClass("active") {
		t.Error("expected HasClass(active) to be true")
	}
	if anchor.HasClass("act") {
		t.Error("substring must not count as a class match")
	}
}

func TestStreamIsFinite(t *testing.T) {
	s := New(strings.NewReader("<p>done</p>"))
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	// Further calls after exhaustion keep reporting done.
	if _, ok := s.Next(); ok {
		t.Error("stream restarted after exhaustion")
	}
}

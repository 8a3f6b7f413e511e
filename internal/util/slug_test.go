package util

import "testing"

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Overlord Novel", "Overlord"},
		{"Mushoku  Tensei \n Novel", "Mushoku Tensei"},
		{"  Solo   Leveling  ", "Solo Leveling"},
		{"NovelNovel", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanTitle(c.in); got != c.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Mushoku Tensei WN", "mushoku-tensei-wn"},
		{"Re:Zero - Starting Life", "re-zero-starting-life"},
		{"  Overlord!  ", "overlord"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugFromURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://readlightnovels.net/mushoku-tensei-wn.html", "mushoku-tensei-wn"},
		{"/overlord-ln.html", "overlord-ln"},
		{"https://readlightnovels.net/latest", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := SlugFromURL(c.in); got != c.want {
			t.Errorf("SlugFromURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLastPathSegment(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://readlightnovels.net/novel-author/fuse", "fuse"},
		{"https://readlightnovels.net/wuxia/", "wuxia"},
		{"/completed", "completed"},
		{"fuse", "fuse"},
	}
	for _, c := range cases {
		if got := LastPathSegment(c.in); got != c.want {
			t.Errorf("LastPathSegment(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

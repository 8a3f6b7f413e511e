package models

// Genre is a tag from the site's fixed genre vocabulary.
type Genre string

// Genres is the closed vocabulary of genre tags the site uses. It is
// both an inbound filter (unknown query values are rejected by the API
// layer) and an outbound one (scraped tags outside the list are
// dropped). Tags are the trailing path segments of the site's genre
// listing URLs.
var Genres = []Genre{
	"action",
	"adult",
	"adventure",
	"chinese",
	"comedy",
	"drama",
	"ecchi",
	"fantasy",
	"game",
	"gender-bender",
	"harem",
	"historical",
	"horror",
	"isekai",
	"josei",
	"martial-arts",
	"mature",
	"mecha",
	"misc",
	"mystery",
	"psychological",
	"reincarnation",
	"romance",
	"school-life",
	"sci-fi",
	"seinen",
	"shoujo",
	"shoujo-ai",
	"shounen",
	"shounen-ai",
	"slice-of-life",
	"smut",
	"sports",
	"supernatural",
	"tragedy",
	"urban",
	"wuxia",
	"xianxia",
	"xuanhuan",
	"yaoi",
	"yuri",
}

var genreSet = func() map[Genre]struct{} {
	set := make(map[Genre]struct{}, len(Genres))
	for _, g := range Genres {
		set[g] = struct{}{}
	}
	return set
}()

// IsGenre reports whether s is part of the genre vocabulary.
func IsGenre(s string) bool {
	_, ok := genreSet[Genre(s)]
	return ok
}

package recommend

import "strings"

// Tag is a derived menu attribute. Tags are never stored; they are computed
// per item from its name and only ever tested for membership.
type Tag string

const (
	TagSharing  Tag = "Sharing"
	TagRame     Tag = "Rame"
	TagKeluarga Tag = "Keluarga"
	TagSnack    Tag = "Snack"
	TagBerat    Tag = "Berat"
	TagKuah     Tag = "Kuah"
	TagHangat   Tag = "Hangat"
	TagDingin   Tag = "Dingin"
	TagPedas    Tag = "Pedas"
)

type lexiconEntry struct {
	keyword string
	tags    []Tag
}

// lexicon maps menu-name keywords to attribute tags. Order matters: TagsFor
// accumulates matches in this order. The "es " keyword keeps its trailing
// space so "es teh" matches but "espresso" does not.
var lexicon = []lexiconEntry{
	{"paket", []Tag{TagSharing, TagRame, TagKeluarga}},
	{"bucket", []Tag{TagSharing, TagRame, TagSnack, TagKeluarga}},
	{"platter", []Tag{TagSharing, TagRame, TagKeluarga}},
	{"gurame", []Tag{TagSharing, TagBerat, TagKeluarga}},
	{"pizza", []Tag{TagSharing, TagRame, TagKeluarga}},
	{"tumpeng", []Tag{TagSharing, TagRame, TagKeluarga}},
	{"martabak", []Tag{TagSharing, TagSnack}},
	{"sate kambing", []Tag{TagSharing, TagBerat}},
	{"sop", []Tag{TagKuah, TagHangat}},
	{"soto", []Tag{TagKuah, TagHangat}},
	{"rawon", []Tag{TagKuah, TagHangat}},
	{"bakso", []Tag{TagKuah, TagHangat}},
	{"godog", []Tag{TagKuah, TagHangat}},
	{"seblak", []Tag{TagKuah, TagHangat, TagPedas}},
	{"ramen", []Tag{TagKuah, TagHangat}},
	{"sayur asem", []Tag{TagKuah, TagHangat}},
	{"capcay", []Tag{TagKuah, TagHangat}},
	{"es ", []Tag{TagDingin}},
	{"jus", []Tag{TagDingin}},
	{"soda", []Tag{TagDingin}},
	{"tea cold", []Tag{TagDingin}},
	{"milkshake", []Tag{TagDingin}},
	{"cola", []Tag{TagDingin}},
	{"sprite", []Tag{TagDingin}},
	{"air mineral", []Tag{TagDingin}},
	{"kopi", []Tag{TagHangat}},
	{"wedang", []Tag{TagHangat}},
	{"hot", []Tag{TagHangat}},
	{"tarik", []Tag{TagHangat}},
	{"tubruk", []Tag{TagHangat}},
	{"bandrek", []Tag{TagHangat}},
}

// TagsFor classifies a menu item by case-insensitive substring match of its
// name against every lexicon keyword. A name matching several keywords
// accumulates tags from all of them; the result may repeat a tag and is not
// deduplicated. Callers only test membership, so repeats are harmless.
func TagsFor(name string) []Tag {
	lower := strings.ToLower(name)
	var tags []Tag
	for _, entry := range lexicon {
		if strings.Contains(lower, entry.keyword) {
			tags = append(tags, entry.tags...)
		}
	}
	return tags
}

// HasTag reports whether want appears in tags.
func HasTag(tags []Tag, want Tag) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

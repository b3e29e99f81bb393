package recommend

import "testing"

func TestTagsForCaseInsensitive(t *testing.T) {
	upper := TagsFor("KOPI TUBRUK")
	lower := TagsFor("kopi tubruk")

	if len(upper) == 0 {
		t.Fatal("expected tags for KOPI TUBRUK")
	}
	if len(upper) != len(lower) {
		t.Errorf("case changed the result: %v vs %v", upper, lower)
	}
	if !HasTag(upper, TagHangat) {
		t.Errorf("expected Hangat in %v", upper)
	}
}

func TestTagsForAccumulatesAcrossKeywords(t *testing.T) {
	// "paket gurame bakar" matches both "paket" and "gurame".
	tags := TagsFor("Paket Gurame Bakar")

	if !HasTag(tags, TagRame) {
		t.Errorf("expected Rame from paket keyword, got %v", tags)
	}
	if !HasTag(tags, TagBerat) {
		t.Errorf("expected Berat from gurame keyword, got %v", tags)
	}
	// paket contributes Sharing and gurame contributes Sharing again;
	// the repeat is kept, not deduplicated.
	count := 0
	for _, tag := range tags {
		if tag == TagSharing {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected Sharing twice, got %d times in %v", count, tags)
	}
}

func TestTagsForSubstringNotWholeWord(t *testing.T) {
	// "hot" matches inside "Hotdog" too; substring semantics are intended.
	if !HasTag(TagsFor("Hotdog Jumbo"), TagHangat) {
		t.Error("expected substring match on 'hot'")
	}
}

func TestTagsForTrailingSpaceKeyword(t *testing.T) {
	if !HasTag(TagsFor("Es Teh Manis"), TagDingin) {
		t.Error("expected Dingin for 'Es Teh Manis'")
	}
	// "espresso" contains "es" but not "es " followed by a space.
	if HasTag(TagsFor("Espresso"), TagDingin) {
		t.Error("espresso must not match the 'es ' keyword")
	}
}

func TestTagsForNoMatch(t *testing.T) {
	if tags := TagsFor("Nasi Putih"); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

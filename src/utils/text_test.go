package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsArabic(t *testing.T) {
	assert.True(t, ContainsArabic("ما هي البيانات المتاحة؟"))
	assert.True(t, ContainsArabic("mixed نص text"))
	assert.False(t, ContainsArabic("plain english"))
	assert.False(t, ContainsArabic(""))
}

func TestHighlightPreservesCasing(t *testing.T) {
	assert.Equal(t, "<mark>Imagery</mark> program", Highlight("Imagery program", "imagery"))
	assert.Equal(t, "new <mark>map</mark> and old <mark>Map</mark>", Highlight("new map and old Map", "map"))
	assert.Equal(t, "no hit here", Highlight("no hit here", "satellite"))
	assert.Equal(t, "untouched", Highlight("untouched", ""))
}

func TestHighlightMultibyteCaseFolds(t *testing.T) {
	// İ (2 bytes) lowercases to i (1 byte); the mark span must still cover
	// whole characters.
	assert.Equal(t, "<mark>İmagery</mark> data", Highlight("İmagery data", "imagery"))
	assert.Equal(t, "خرائط <mark>الرياض</mark>", Highlight("خرائط الرياض", "الرياض"))
}

func TestTruncateIsRuneSafe(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	assert.Equal(t, "خريطة...", Truncate("خريطة الرياض", 5))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "site_map.pdf", SanitizeFilename("site map.pdf"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
}

func TestFileURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/static/requests/a.pdf", FileURL("http://localhost:8080/", "requests/a.pdf"))
	assert.Equal(t, "", FileURL("http://localhost:8080", ""))
	assert.Equal(t, "http://localhost:8080/static/requests/site%20map.pdf", FileURL("http://localhost:8080", "requests/site map.pdf"))
}

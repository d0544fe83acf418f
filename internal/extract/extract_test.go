package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSlideDeck = `<!DOCTYPE html>
<html>
<head>
<style>.slide { display: none; }
.slide.active { display: block; }</style>
</head>
<body>
<!-- Slide 1: Intro -->
<div class="slide active">
  <h1>Welcome</h1>
  <img src="./data/logo.png">
</div>

<!-- Slide 2: End -->
<div class="slide">
  <p>Thanks</p>
  <img src="../data/end.png">
</div>

<div class="navigation">
  <button>next</button>
</div>
</body>
</html>`

func TestStyles_ReturnsFirstStyleBlockVerbatim(t *testing.T) {
	src := []byte("<html><head><style>a { color: red; }</style><style>b {}</style></head></html>")
	assert.Equal(t, "a { color: red; }", Styles(src))
}

func TestStyles_EmptyWhenAbsent(t *testing.T) {
	assert.Equal(t, "", Styles([]byte("<html><body><p>no styles</p></body></html>")))
	assert.Equal(t, "", Styles([]byte("<style></style>")))
}

func TestShowSlides(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "short rule",
			in:   ".slide { display: none; }",
			want: ".slide { display: block; }",
		},
		{
			name: "deck rule",
			in:   ".slide { width: 100%; height: 100vh; display: none; padding: 40px; }",
			want: ".slide { width: 100%; height: 100vh; display: block; padding: 40px; }",
		},
		{
			name: "other rules untouched",
			in:   ".hidden { display: none; }\n.slide { display: none; }\n.slide.active { display: block; }",
			want: ".hidden { display: none; }\n.slide { display: block; }\n.slide.active { display: block; }",
		},
		{
			name: "spacing differs so rule stays hidden",
			in:   ".slide{display:none;}",
			want: ".slide{display:none;}",
		},
		{
			name: "slide-number is a different class",
			in:   ".slide-number { display: none; }",
			want: ".slide-number { display: none; }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowSlides(tt.in))
		})
	}
}

func TestNormalizeAssetPaths(t *testing.T) {
	body := `<img src="./data/a.png"><img src="../data/b.png"><img src="data/c.png"><img src="../../data/d.png">`
	got := NormalizeAssetPaths(body, "data")
	assert.Contains(t, got, `src="data/a.png"`)
	assert.Contains(t, got, `src="data/b.png"`)
	assert.Contains(t, got, `src="data/c.png"`)
	assert.NotContains(t, got, "./data/")
	assert.NotContains(t, got, "../data/")
}

func TestNormalizeAssetPaths_CustomDir(t *testing.T) {
	got := NormalizeAssetPaths(`<img src="../assets/x.svg"> ./data/y.png`, "/assets/")
	assert.Equal(t, `<img src="assets/x.svg"> ./data/y.png`, got)
	assert.Equal(t, "./data/z", NormalizeAssetPaths("./data/z", ""))
}

func TestTreeExtractor_TwoSlides(t *testing.T) {
	slides := TreeExtractor{}.Extract([]byte(twoSlideDeck))
	require.Len(t, slides, 2)

	assert.Equal(t, 1, slides[0].Ordinal)
	assert.Equal(t, "1", slides[0].Label)
	assert.Equal(t, "Intro", slides[0].Marker)
	assert.Contains(t, slides[0].Body, "<h1>Welcome</h1>")
	assert.NotContains(t, slides[0].Body, "Thanks")

	assert.Equal(t, 2, slides[1].Ordinal)
	assert.Equal(t, "End", slides[1].Marker)
	assert.Contains(t, slides[1].Body, "<p>Thanks</p>")
	assert.NotContains(t, slides[1].Body, "navigation")
}

func TestTreeExtractor_NestedContainers(t *testing.T) {
	src := `<!-- Slide 1: Grid -->
<div class="slide">
  <div class="row"><div class="col">left</div><div class="col">right</div></div>
  <p>after the row</p>
</div>
<!-- Slide 2: Next -->
<div class="slide"><p>two</p></div>`
	slides := TreeExtractor{}.Extract([]byte(src))
	require.Len(t, slides, 2)
	assert.Contains(t, slides[0].Body, "right</div></div>")
	assert.Contains(t, slides[0].Body, "<p>after the row</p>")
	assert.Equal(t, "<p>two</p>", slides[1].Body)
}

func TestTreeExtractor_BodyIsVerbatim(t *testing.T) {
	src := "<!-- Slide 7: Raw -->\n<div class=\"slide\"><P CLASS=X>a &amp; b</P><script>if (a < b) {}</script></div>"
	slides := TreeExtractor{}.Extract([]byte(src))
	require.Len(t, slides, 1)
	assert.Equal(t, "7", slides[0].Label)
	assert.Equal(t, `<P CLASS=X>a &amp; b</P><script>if (a < b) {}</script>`, slides[0].Body)
}

func TestTreeExtractor_IgnoresUnmatchedMarkers(t *testing.T) {
	src := `<!-- Slide 1: Orphan -->
<p>not a container</p>
<!-- just a comment -->
<div class="slide">no marker</div>
<!-- Slide 2: Wrong class -->
<div class="other">x</div>
<!-- Slide 3: Kept -->
<section class="slide title"><h2>kept</h2></section>`
	slides := TreeExtractor{}.Extract([]byte(src))
	require.Len(t, slides, 1)
	assert.Equal(t, 1, slides[0].Ordinal)
	assert.Equal(t, "3", slides[0].Label)
	assert.Equal(t, "<h2>kept</h2>", slides[0].Body)
}

func TestTreeExtractor_UnterminatedContainerRunsToEnd(t *testing.T) {
	slides := TreeExtractor{}.Extract([]byte(`<!-- Slide 1: Open --><div class="slide"><p>tail`))
	require.Len(t, slides, 1)
	assert.Equal(t, "<p>tail", slides[0].Body)
}

func TestTreeExtractor_NoSlides(t *testing.T) {
	assert.Empty(t, TreeExtractor{}.Extract([]byte("<html><body></body></html>")))
	assert.Empty(t, TreeExtractor{}.Extract(nil))
}

func TestPatternExtractor_TwoSlides(t *testing.T) {
	slides := PatternExtractor{}.Extract([]byte(twoSlideDeck))
	require.Len(t, slides, 2)
	assert.Equal(t, "Intro", slides[0].Marker)
	assert.Equal(t, "End", slides[1].Marker)
	assert.Contains(t, slides[0].Body, "<h1>Welcome</h1>")
	assert.Contains(t, slides[1].Body, "<p>Thanks</p>")
	assert.NotContains(t, slides[1].Body, "</div>")
}

func TestPatternExtractor_NestedContainerTruncatesAtTerminator(t *testing.T) {
	src := `<!-- Slide 1: Grid -->
<div class="slide"><div class="row">inner</div>
<!-- Slide 2: Next -->
<div class="slide">two</div>`
	slides := PatternExtractor{}.Extract([]byte(src))
	require.Len(t, slides, 2)
	// The inner </div> is taken as the slide's end.
	assert.Equal(t, `<div class="row">inner`, slides[0].Body)
	assert.Equal(t, "two", slides[1].Body)
}

func TestStrategiesAgreeOnFlatDecks(t *testing.T) {
	deck := makeDeck(5, 3)
	tree := TreeExtractor{}.Extract(deck)
	pattern := PatternExtractor{}.Extract(deck)
	require.Len(t, tree, 5)
	require.Len(t, pattern, 5)
	for i := range tree {
		assert.Equal(t, strings.TrimSpace(tree[i].Body), strings.TrimSpace(pattern[i].Body), "slide %d", i+1)
		assert.Equal(t, tree[i].Marker, pattern[i].Marker)
	}
}

func TestForStrategy(t *testing.T) {
	e, err := ForStrategy("")
	require.NoError(t, err)
	assert.IsType(t, TreeExtractor{}, e)

	e, err = ForStrategy(" Pattern ")
	require.NoError(t, err)
	assert.IsType(t, PatternExtractor{}, e)

	_, err = ForStrategy("dom")
	assert.Error(t, err)
}

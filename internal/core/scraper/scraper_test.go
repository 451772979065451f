package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonLDPage = `<!doctype html>
<html><head><title>Site</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"Recipe","name":"Skillet Onions &amp; Peppers",
 "recipeIngredient":["2 onions","1 tbsp olive oil"],
 "recipeInstructions":[{"@type":"HowToStep","text":"Heat a cast iron skillet."},{"@type":"HowToStep","text":"Cook the onions."}],
 "totalTime":"PT1H30M","recipeYield":["4","4 servings"],"image":{"url":"https://img.example.com/a.jpg"}}
</script></head><body></body></html>`

const graphPage = `<html><head>
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[{"@type":"WebPage","name":"x"},
 {"@type":["Recipe","NewsArticle"],"name":"Graph Cake","recipeIngredient":["flour"],
  "recipeInstructions":[{"@type":"HowToSection","name":"Batter","itemListElement":[{"@type":"HowToStep","text":"Whisk."},{"@type":"HowToStep","text":"Bake."}]}]}]}
</script></head></html>`

const markupPage = `<html><head><meta property="og:title" content="Markup Soup"></head><body>
<h1>Heading Title</h1>
<ul class="recipe-ingredients"><li>1 carrot</li><li> 2 cups <b>stock</b></li></ul>
<ol class="recipe-directions"><li>Chop the carrot.</li><li>Simmer in a pot.</li></ol>
</body></html>`

func newTestScraper() *Scraper {
	return New(config.ScraperConfig{
		Timeout:      2 * time.Second,
		UserAgent:    "test-agent",
		MaxBodyBytes: 1 << 20,
	})
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParse_JSONLD(t *testing.T) {
	recipe, err := Parse([]byte(jsonLDPage), "https://example.com/recipe")
	require.NoError(t, err)

	assert.Equal(t, "Skillet Onions & Peppers", recipe.Title)
	assert.Equal(t, []string{"2 onions", "1 tbsp olive oil"}, recipe.Ingredients)
	assert.Equal(t, []string{"Heat a cast iron skillet.", "Cook the onions."}, recipe.Instructions)
	assert.Equal(t, "1 hr 30 min", recipe.TotalTime)
	assert.Equal(t, "4 servings", recipe.Servings)
	assert.Equal(t, "https://img.example.com/a.jpg", recipe.Image)
	assert.Equal(t, "https://example.com/recipe", recipe.URL)
}

func TestParse_Graph(t *testing.T) {
	recipe, err := Parse([]byte(graphPage), "https://example.com/cake")
	require.NoError(t, err)

	assert.Equal(t, "Graph Cake", recipe.Title)
	assert.Equal(t, []string{"Whisk.", "Bake."}, recipe.Instructions)
	assert.Equal(t, "Unknown", recipe.TotalTime)
	assert.Equal(t, "Unknown", recipe.Servings)
}

func TestParse_MarkupFallback(t *testing.T) {
	recipe, err := Parse([]byte(markupPage), "https://example.com/soup")
	require.NoError(t, err)

	assert.Equal(t, "Markup Soup", recipe.Title)
	assert.Equal(t, []string{"1 carrot", "2 cups stock"}, recipe.Ingredients)
	assert.Equal(t, []string{"Chop the carrot.", "Simmer in a pot."}, recipe.Instructions)
}

func TestParse_NoRecipe(t *testing.T) {
	_, err := Parse([]byte(`<html><body><p>hello</p></body></html>`), "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamParse))
}

func TestParse_DefaultTitle(t *testing.T) {
	page := `<script type="application/ld+json">{"@type":"Recipe","recipeIngredient":["salt"]}</script>`
	recipe, err := Parse([]byte(page), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Recipe", recipe.Title)
	assert.Empty(t, recipe.Instructions)
}

func TestSplitInstructions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"numbered", "1. Boil water. 2. Add pasta. 3. Drain.", []string{"Boil water.", "Add pasta.", "Drain."}},
		{"newlines", "Boil water\n\nAdd pasta\nDrain", []string{"Boil water", "Add pasta", "Drain"}},
		{"sentences", "Boil water. Add pasta. Drain it", []string{"Boil water", "Add pasta", "Drain it"}},
		{"single", "just stir", []string{"just stir"}},
		{"lowercase after period", "stir well. then serve", []string{"stir well. then serve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitInstructions(tt.in))
		})
	}
}

func TestNormalizeInstructions(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeInstructions(nil))
	assert.Equal(t, []string{"a", "b"}, NormalizeInstructions([]any{"a", "", "  ", "b"}))
	assert.Equal(t, []string{"Mix", "Bake"}, NormalizeInstructions(map[string]any{"text": "Mix\nBake"}))
	assert.Equal(t, []string{"Stir & serve"}, NormalizeInstructions("Stir &amp; <b>serve</b>"))
}

func TestFormatISODuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatISODuration("PT45M"))
	assert.Equal(t, "2 hr", FormatISODuration("PT2H"))
	assert.Equal(t, "25 hr 5 min", FormatISODuration("P1DT1H5M"))
	assert.Equal(t, "about an hour", FormatISODuration("about an hour"))
	assert.Equal(t, "", FormatISODuration(""))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://example.com/recipe"))
	assert.NoError(t, ValidateURL("HTTP://example.com"))
	assert.ErrorIs(t, ValidateURL("ftp://example.com"), common.ErrInvalidURL)
	assert.ErrorIs(t, ValidateURL("not a url"), common.ErrInvalidURL)
}

func TestIsLikelyRecipeURL(t *testing.T) {
	assert.True(t, IsLikelyRecipeURL("https://www.allrecipes.com/x"))
	assert.True(t, IsLikelyRecipeURL("https://blog.example.com/recipes/soup"))
	assert.False(t, IsLikelyRecipeURL("https://example.com/about"))
}

func TestScrape(t *testing.T) {
	srv := serve(t, http.StatusOK, jsonLDPage)

	recipe, err := newTestScraper().Scrape(context.Background(), srv.URL+"/recipe")
	require.NoError(t, err)
	assert.Equal(t, "Skillet Onions & Peppers", recipe.Title)
	assert.Equal(t, srv.URL+"/recipe", recipe.URL)
}

func TestScrape_Non200(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "missing")

	_, err := newTestScraper().Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamFetch))
}

func TestScrape_BodyTooLarge(t *testing.T) {
	srv := serve(t, http.StatusOK, jsonLDPage)

	s := newTestScraper()
	s.maxBodyBytes = 10
	_, err := s.Scrape(context.Background(), srv.URL)
	assert.True(t, errors.Is(err, common.ErrUpstreamFetch))
}

func TestScrape_InvalidURL(t *testing.T) {
	_, err := newTestScraper().Scrape(context.Background(), "javascript:alert(1)")
	assert.ErrorIs(t, err, common.ErrInvalidURL)
}

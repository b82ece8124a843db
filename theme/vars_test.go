package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeplane/storage"
)

func TestVariableName(t *testing.T) {
	assert.Equal(t, "--accent", VariableName("accent"))
	assert.Equal(t, "--text-primary", VariableName("textPrimary"))
	assert.Equal(t, "--mobile-menu-background", VariableName("mobileMenuBackground"))
	assert.Equal(t, "--h1-font-family", VariableName("h1", "fontFamily"))
}

func TestVariables(t *testing.T) {
	vars := VariableMap(Variables(DefaultTheme()))
	assert.Len(t, vars, 11+3*5)
	assert.Equal(t, "#D4AF37", vars["--accent"])
	assert.Equal(t, "#FFFFFF", vars["--text-primary"])
	assert.Equal(t, "Playfair Display", vars["--h1-font-family"])
	assert.Equal(t, "400", vars["--body-font-weight"])
	assert.Equal(t, "uppercase", vars["--h4-text-transform"])
}

func TestCSS(t *testing.T) {
	css := CSS([]Variable{
		{Name: "--accent", Value: "#D4AF37"},
		{Name: "--button-bg", Value: "red;} body{display:none"},
	})
	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --accent: #D4AF37;\n")
	assert.Contains(t, css, "  --button-bg: red body display:none;\n")
	assert.True(t, strings.HasSuffix(css, "}\n"))
}

func TestHandleCSS(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	_, err := s.Update(SectionColors, map[string]string{"accent": "#123456"})
	require.NoError(t, err)

	h := NewHandler(s)
	rec := httptest.NewRecorder()
	h.HandleCSS(rec, httptest.NewRequest(http.MethodGet, "/api/theme.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "--accent: #123456;")

	rec = httptest.NewRecorder()
	h.HandleVariables(rec, httptest.NewRequest(http.MethodGet, "/api/theme/variables", nil))
	assert.Contains(t, rec.Body.String(), `"--accent":"#123456"`)
}

func TestPreviewListsEveryRole(t *testing.T) {
	out := Preview(DefaultTheme())
	for _, key := range []string{"accent", "mobileMenuAccent", "h4", "Playfair Display", "sidepanel"} {
		assert.Contains(t, out, key)
	}
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SupportedLanguages(t *testing.T) {
	for _, code := range Supported() {
		t.Run(code, func(t *testing.T) {
			tr, err := New(code)
			require.NoError(t, err)
			assert.Equal(t, code, tr.Language())
			assert.NotEqual(t, "ui.loading.default", tr.T("ui.loading.default"))
		})
	}
}

func TestNew_UnsupportedFallsBackToEnglish(t *testing.T) {
	fr, err := New("fr")
	require.NoError(t, err)
	en, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", fr.Language())
	for _, key := range []string{
		"app.java.label",
		"wab.path.not.set",
		"ui.locator.invalid",
		"ui.properties.col.key",
	} {
		assert.Equal(t, en.T(key), fr.T(key), "key %s", key)
	}
}

func TestTranslator_LanguagesDiffer(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	pt, err := New("pt")
	require.NoError(t, err)

	assert.Equal(t, "Java application:", en.T("app.java.label"))
	assert.Equal(t, "Aplicação Java:", pt.T("app.java.label"))
}

func TestTranslator_UnknownKeyReturnsKey(t *testing.T) {
	tr, err := New("pt")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestTranslator_TemplateData(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	got := tr.TData("ui.locator.many_found", map[string]any{"Count": 3})
	assert.Equal(t, "3 elements match the locator", got)

	got = tr.TData("errors.load_tree.body", map[string]any{"Error": "boom"})
	assert.Contains(t, got, "boom")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"pt", "pt"},
		{"PT", "pt"},
		{" En ", "en"},
		{"fr", "en"},
		{"", "en"},
		{"pt-BR", "en"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Same(t, c, Default(), "默认语言表只构建一次")

	codes := c.SupportedCodes()
	require.NotEmpty(t, codes)
	assert.Equal(t, CodeAuto, codes[0])

	for _, code := range []string{CodeClassicalChinese, CodeCantonese, CodeSimplifiedChinese, CodeTraditionalChinese, "en", "ja"} {
		assert.True(t, c.Supports(code), code)
	}

	name, ok := c.DisplayNameOf(CodeCantonese)
	assert.True(t, ok)
	assert.Equal(t, "Cantonese", name)
}

func TestCatalog_NameOrCode(t *testing.T) {
	c := NewCatalog([]Entry{{Code: "en", Name: "English"}})

	assert.Equal(t, "English", c.NameOrCode("en"))
	assert.Equal(t, "xx", c.NameOrCode("xx"))

	_, ok := c.DisplayNameOf("xx")
	assert.False(t, ok)
}

func TestNewCatalog_SkipsDuplicatesAndBlank(t *testing.T) {
	c := NewCatalog([]Entry{
		{Code: "en", Name: "English"},
		{Code: "", Name: "Nothing"},
		{Code: "en", Name: "Anglais"},
		{Code: "fr", Name: "French"},
		{Code: "xx", Name: ""},
	})

	assert.Equal(t, []string{"en", "fr", "xx"}, c.SupportedCodes())
	assert.Equal(t, "English", c.NameOrCode("en"))
	// 名称为空视为不支持
	assert.False(t, c.Supports("xx"))
}

func TestCatalog_EntriesIsCopy(t *testing.T) {
	c := NewCatalog([]Entry{{Code: "en", Name: "English"}})

	entries := c.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "English", c.NameOrCode("en"))
}

func TestCatalog_Canonical(t *testing.T) {
	c := Default()

	assert.Equal(t, "zh-Hans", c.Canonical("zh-hans"))
	assert.Equal(t, "zh-Hant", c.Canonical("ZH-HANT"))
	assert.Equal(t, "en", c.Canonical(" en "))
	assert.Equal(t, "yue", c.Canonical("yue"))
	// 不在语言表中时原样返回
	assert.Equal(t, "xx-YY", c.Canonical("xx-YY"))
	assert.Equal(t, "not a tag", c.Canonical("not a tag"))
}

func TestCatalog_Suggest(t *testing.T) {
	c := Default()

	suggestions := c.Suggest("englsh", 3)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "en", suggestions[0])
	assert.LessOrEqual(t, len(suggestions), 3)

	assert.Contains(t, c.Suggest("zh-han", 5), "zh-Hans")
	assert.Nil(t, c.Suggest("", 3))
	assert.Nil(t, c.Suggest("en", 0))
	assert.NotContains(t, c.Suggest("aut", 5), CodeAuto)
}

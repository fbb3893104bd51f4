// Package languages 提供插件语言代码与 Cohere 可识别语言名称之间的只读映射
package languages

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/language"
)

// 需要特殊处理的语言代码
const (
	CodeAuto               = "auto"
	CodeClassicalChinese   = "wyw"
	CodeCantonese          = "yue"
	CodeSimplifiedChinese  = "zh-Hans"
	CodeTraditionalChinese = "zh-Hant"
)

// Entry 语言表中的一项
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog 不可变的语言表，可在多个请求间共享
type Catalog struct {
	entries []Entry
	names   map[string]string
}

// NewCatalog 根据给定的语言项创建语言表，重复的代码以第一次出现为准
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		names:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Code == "" {
			continue
		}
		if _, exists := c.names[e.Code]; exists {
			continue
		}
		c.entries = append(c.entries, e)
		c.names[e.Code] = e.Name
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(defaultEntries)
})

// Default 返回内置语言表
func Default() *Catalog {
	return defaultCatalog()
}

// DisplayNameOf 返回语言代码对应的名称
func (c *Catalog) DisplayNameOf(code string) (string, bool) {
	name, ok := c.names[code]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// NameOrCode 返回语言名称，语言表中没有时原样返回代码
func (c *Catalog) NameOrCode(code string) string {
	if name, ok := c.DisplayNameOf(code); ok {
		return name
	}
	return code
}

// Supports 判断语言代码是否在语言表中
func (c *Catalog) Supports(code string) bool {
	_, ok := c.DisplayNameOf(code)
	return ok
}

// SupportedCodes 按语言表顺序返回全部语言代码
func (c *Catalog) SupportedCodes() []string {
	codes := make([]string, len(c.entries))
	for i, e := range c.entries {
		codes[i] = e.Code
	}
	return codes
}

// Entries 返回语言表的副本
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Canonical 规范化用户输入的语言代码，例如 zh-hans -> zh-Hans。
// 只有规范化结果存在于语言表中时才会替换，否则原样返回。
func (c *Catalog) Canonical(code string) string {
	code = strings.TrimSpace(code)
	if c.Supports(code) {
		return code
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.Code, code) {
			return e.Code
		}
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if canonical := tag.String(); c.Supports(canonical) {
		return canonical
	}
	return code
}

// Suggest 为不支持的语言代码给出最多 n 个相近的候选代码
func (c *Catalog) Suggest(code string, n int) []string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || n <= 0 {
		return nil
	}

	type candidate struct {
		code     string
		distance int
		index    int
	}

	maxDistance := len(code) / 2
	if maxDistance < 2 {
		maxDistance = 2
	}

	var candidates []candidate
	for i, e := range c.entries {
		if e.Code == CodeAuto {
			continue
		}
		distance := fuzzy.LevenshteinDistance(code, strings.ToLower(e.Code))
		if fuzzy.MatchFold(code, e.Name) {
			// 名称包含输入的全部字符，视为很接近
			distance = 0
		} else if d := fuzzy.LevenshteinDistance(code, strings.ToLower(e.Name)); d < distance {
			distance = d
		}
		if distance <= maxDistance {
			candidates = append(candidates, candidate{code: e.Code, distance: distance, index: i})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].index < candidates[j].index
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.code
	}
	return out
}

package pattern

import (
	"regexp"

	"github.com/tsawler/outliner/lang"
)

// mustAll compiles a list of pattern strings.
func mustAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Numeric section prefixes are shared across languages; structural markers
// like "Chapter" or "अध्याय" are per-language. The English table doubles as
// the default for any language without its own entry.
var tables = map[lang.Code]Table{
	lang.English: {
		H1: mustAll(
			`(?i)^(chapter|section|part|unit|book)\s+\d+`,
			`(?i)^appendix\s+[a-z0-9]`,
			`^\d+\.?\s+\S`,
			`^[IVXLCDM]+\.\s`,
		),
		H2: mustAll(
			`^\d+\.\d+\.?\s+\S`,
			`^[A-Z]\.\s`,
		),
		H3: mustAll(
			`^\d+\.\d+\.\d+\.?\s+\S`,
			`^[a-z][.)]\s`,
			`^[ivx]+[.)]\s`,
		),
		Keywords: []string{
			"introduction", "overview", "summary", "abstract", "background",
			"conclusion", "references", "bibliography", "appendix",
			"acknowledgements", "contents", "index", "preface", "glossary",
			"methodology", "results", "discussion", "table of contents",
		},
	},
	lang.Hindi: {
		H1: mustAll(
			`^(अध्याय|भाग|खंड|इकाई)\s*\d+`,
			`^\d+\.?\s+\S`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"परिचय", "प्रस्तावना", "सारांश", "निष्कर्ष", "अवलोकन",
			"विषय-सूची", "अनुक्रमणिका", "संदर्भ", "परिशिष्ट",
		},
	},
	lang.Bengali: {
		H1: mustAll(
			`^(অধ্যায়|খণ্ড|ভাগ)\s*\d+`,
			`^\d+\.?\s+\S`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"ভূমিকা", "সারসংক্ষেপ", "উপসংহার", "সূচিপত্র", "তথ্যসূত্র", "পরিশিষ্ট",
		},
	},
	lang.Tamil: {
		H1: mustAll(
			`^(அத்தியாயம்|பகுதி)\s*\d+`,
			`^\d+\.?\s+\S`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"அறிமுகம்", "சுருக்கம்", "முடிவுரை", "பொருளடக்கம்", "குறிப்புகள்",
		},
	},
	lang.Telugu: {
		H1: mustAll(
			`^(అధ్యాయం|భాగం)\s*\d+`,
			`^\d+\.?\s+\S`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"పరిచయం", "సారాంశం", "ముగింపు", "విషయసూచిక", "అనుబంధం",
		},
	},
	lang.Spanish: {
		H1: mustAll(
			`(?i)^(capítulo|sección|parte|unidad)\s+\d+`,
			`^\d+\.?\s+\S`,
			`^[IVXLCDM]+\.\s`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"introducción", "resumen", "conclusión", "índice", "referencias",
			"apéndice", "prólogo", "contenido",
		},
	},
	lang.French: {
		H1: mustAll(
			`(?i)^(chapitre|section|partie)\s+\d+`,
			`^\d+\.?\s+\S`,
			`^[IVXLCDM]+\.\s`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"introduction", "résumé", "conclusion", "sommaire", "références",
			"annexe", "préface", "table des matières",
		},
	},
	lang.German: {
		H1: mustAll(
			`(?i)^(kapitel|abschnitt|teil)\s+\d+`,
			`^\d+\.?\s+\S`,
			`^[IVXLCDM]+\.\s`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"einleitung", "zusammenfassung", "fazit", "inhaltsverzeichnis",
			"literaturverzeichnis", "anhang", "vorwort", "überblick",
		},
	},
	lang.Japanese: {
		H1: mustAll(
			`^第[0-9０-９一二三四五六七八九十百]+[章部編]`,
			`^\d+\.?\s*\S`,
		),
		H2: mustAll(
			`^第[0-9０-９一二三四五六七八九十百]+節`,
			`^\d+\.\d+`,
		),
		H3: mustAll(`^\d+\.\d+\.\d+`),
		Keywords: []string{
			"はじめに", "序論", "概要", "要約", "結論", "目次", "参考文献", "付録",
		},
	},
	lang.Chinese: {
		H1: mustAll(
			`^第[0-9一二三四五六七八九十百]+[章篇部]`,
			`^\d+\.?\s*\S`,
		),
		H2: mustAll(
			`^第[0-9一二三四五六七八九十百]+节`,
			`^\d+\.\d+`,
		),
		H3: mustAll(`^\d+\.\d+\.\d+`),
		Keywords: []string{
			"引言", "简介", "摘要", "概述", "结论", "目录", "参考文献", "附录",
		},
	},
	lang.Russian: {
		H1: mustAll(
			`(?i)^(глава|часть|раздел)\s+\d+`,
			`^\d+\.?\s+\S`,
			`^[IVXLCDM]+\.\s`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"введение", "аннотация", "заключение", "содержание", "оглавление",
			"литература", "приложение", "обзор",
		},
	},
	lang.Arabic: {
		H1: mustAll(
			`^(الفصل|الباب|الجزء)\s*\d*`,
			`^\d+\.?\s+\S`,
		),
		H2: mustAll(`^\d+\.\d+\.?\s+\S`),
		H3: mustAll(`^\d+\.\d+\.\d+\.?\s+\S`),
		Keywords: []string{
			"مقدمة", "ملخص", "خاتمة", "المحتويات", "المراجع", "ملحق",
		},
	},
}

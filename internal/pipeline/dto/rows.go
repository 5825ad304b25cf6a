package dto

import "strings"

// ReviewRow is a validated, schema-complete base row handed to the base load:
// the exact shape the row-source collaborator produces.
type ReviewRow struct {
	Bank   string `json:"bank"`
	Review string `json:"review"`
	Rating int    `json:"rating"`
	Date   string `json:"date"` // YYYY-MM-DD
	Source string `json:"source"`
}

// EnrichedRow carries the same identity-determining fields as ReviewRow plus
// the enrichment values produced by the sentiment labeler and theme
// classifier. Themes is already parsed into an ordered list; the primary
// theme is its first element when present.
type EnrichedRow struct {
	ReviewRow
	SentimentLabel string   `json:"sentiment_label"`
	SentimentScore float64  `json:"sentiment_score"`
	ThemePrimary   string   `json:"theme_primary"`
	Themes         []string `json:"themes"`
}

// ParseThemeList decodes the string-encoded multi-theme field found in
// exported enrichment data. Separator precedence is deterministic:
// bracket-enclosed list, then pipe, then comma, then the whole trimmed string
// as a single item. Unparseable input degrades to an empty list, never an
// error.
func ParseThemeList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return nil
		}
		return splitThemes(inner, ",")
	}
	if strings.Contains(s, "|") {
		return splitThemes(s, "|")
	}
	if strings.Contains(s, ",") {
		return splitThemes(s, ",")
	}
	return []string{s}
}

func splitThemes(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

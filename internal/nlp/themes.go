package nlp

import (
	"sort"
	"strings"
)

// ThemeOther is the catch-all theme assigned when no lexicon theme reaches
// the scoring threshold.
const ThemeOther = "OTHER"

// ThemeEntry maps a theme name to its lexicon terms. Phrases are multi-word
// and carry a higher weight than single words. The order of entries in the
// lexicon slice is the tie-break key for equal scores and must not change.
type ThemeEntry struct {
	Name    string
	Phrases []string
	Words   []string
}

// ThemeLexicon is the fixed rule-based lexicon. Declaration order matters.
var ThemeLexicon = []ThemeEntry{
	{
		Name:    "ACCESS_AUTH",
		Phrases: []string{"login error", "sign in", "reset password", "wrong pin", "otp code", "verification code"},
		Words:   []string{"login", "signin", "password", "pin", "otp", "verify", "verification", "biometric", "fingerprint"},
	},
	{
		Name:    "TXN_RELIABILITY",
		Phrases: []string{"slow transfer", "transfer failed", "payment failed", "transaction failed", "pending transaction", "money not received", "network error"},
		Words:   []string{"transfer", "transaction", "failed", "pending", "timeout", "reversal", "reversed", "declined", "delay", "slow"},
	},
	{
		Name:    "STABILITY_BUGS",
		Phrases: []string{"keeps crashing", "app crashes", "after update", "not working"},
		Words:   []string{"crash", "crashes", "bug", "freeze", "stuck", "hang", "loading", "error", "update"},
	},
	{
		Name:    "UX_UI",
		Phrases: []string{"user interface", "easy to use", "good ui", "bad ui"},
		Words:   []string{"ui", "ux", "interface", "design", "layout", "navigation", "simple", "confusing", "language"},
	},
	{
		Name:    "SUPPORT_SERVICE",
		Phrases: []string{"customer service", "call center", "no response", "not helpful"},
		Words:   []string{"support", "service", "help", "agent", "branch", "complaint", "respond", "response"},
	},
}

// ThemeConfig holds the four scoring knobs of the classifier.
type ThemeConfig struct {
	PhraseWeight    float64
	WordWeight      float64
	Threshold       float64
	AllowMultilabel bool
	MaxThemes       int
}

// DefaultThemeConfig returns the production knobs.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		PhraseWeight:    2.0,
		WordWeight:      1.0,
		Threshold:       2.0,
		AllowMultilabel: true,
		MaxThemes:       2,
	}
}

// ThemeScore is a theme with its lexicon score and declaration rank.
type ThemeScore struct {
	Name  string
	Score float64
	rank  int
}

func countHits(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		// Substring containment on purpose: a lexicon word inside a longer
		// word still counts.
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// ScoreThemes computes the weighted lexicon score of every theme for the
// given raw text. Results come back ranked by score descending with lexicon
// declaration order breaking ties.
func ScoreThemes(text string, cfg ThemeConfig) []ThemeScore {
	t := CleanForMatching(text)

	scores := make([]ThemeScore, 0, len(ThemeLexicon))
	for i, entry := range ThemeLexicon {
		score := cfg.PhraseWeight*float64(countHits(t, entry.Phrases)) +
			cfg.WordWeight*float64(countHits(t, entry.Words))
		scores = append(scores, ThemeScore{Name: entry.Name, Score: score, rank: i})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].rank < scores[j].rank
	})
	return scores
}

// AssignThemes classifies a review text into a primary theme and an ordered
// multi-label list. The list always contains the primary; when multilabel is
// disabled it is exactly [primary]. A top score below the threshold yields
// OTHER as the one and only theme.
func AssignThemes(text string, cfg ThemeConfig) (string, []string) {
	ranked := ScoreThemes(text, cfg)

	top := ranked[0]
	if top.Score < cfg.Threshold {
		return ThemeOther, []string{ThemeOther}
	}

	if !cfg.AllowMultilabel {
		return top.Name, []string{top.Name}
	}

	picked := []string{top.Name}
	for _, ts := range ranked[1:] {
		if len(picked) >= cfg.MaxThemes {
			break
		}
		if ts.Score >= cfg.Threshold {
			picked = append(picked, ts.Name)
		}
	}
	return top.Name, picked
}

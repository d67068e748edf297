package entity

import (
	"sort"
	"strconv"
	"strings"
)


// LeadInsight is the structured form of the free-text comments field.
// The sheet feed packs sub-fields into comments using emoji markers
// ("📍Bangalore 💼Engineer ... ⭐78"); manual edits use plain labels
// ("location: Bangalore"). Parsing is best effort: a field that cannot
// be found is simply left empty, never guessed from position.
type LeadInsight struct {
	Location   string `json:"location,omitempty"`
	Profession string `json:"profession,omitempty"`
	TheyAre    string `json:"theyAre,omitempty"`
	ChildAge   string `json:"childAge,omitempty"`
	Score      int    `json:"score"`
	HasScore   bool   `json:"hasScore"`
}


type insightMarker struct {
	field   string
	aliases []string
}

var insightMarkers = []insightMarker{
	{"location", []string{"📍", "location:"}},
	{"profession", []string{"💼", "profession:"}},
	{"theyAre", []string{"👥", "👤", "they are:"}},
	{"childAge", []string{"🧒", "👶", "child age:", "child's age:"}},
	{"score", []string{"⭐", "🎯", "lead score:", "score:"}},
}


func ParseInsight(comments string) LeadInsight {
	var insight LeadInsight
	if comments == "" {
		return insight
	}

	type hit struct {
		field string
		start int // where the marker begins
		value int // where the value begins
	}

	lower := strings.ToLower(comments)
	var hits []hit
	for _, m := range insightMarkers {
		for _, alias := range m.aliases {
			idx := strings.Index(lower, strings.ToLower(alias))
			if idx >= 0 {
				hits = append(hits, hit{m.field, idx, idx + len(alias)})
				break
			}
		}
	}
	if len(hits) == 0 {
		return insight
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	for i, h := range hits {
		end := len(comments)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		value := strings.Trim(comments[h.value:end], " \t\n|,;-")

		switch h.field {
		case "location":
			insight.Location = value
		case "profession":
			insight.Profession = value
		case "theyAre":
			insight.TheyAre = value
		case "childAge":
			insight.ChildAge = value
		case "score":
			if n, ok := leadingInt(value); ok {
				insight.Score = n
				insight.HasScore = true
			}
		}
	}

	return insight
}


// ScoreBand buckets a lead score for display: below 50 is low,
// 50 to 70 inclusive is medium, above 70 is high.
func ScoreBand(score int) string {
	switch {
	case score < 50:
		return "low"
	case score <= 70:
		return "medium"
	default:
		return "high"
	}
}


func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

package api

import "time"

// MatchFilters задает фильтры для списка потенциальных кандидатов
type MatchFilters struct {
	Religion     string
	Caste        string
	City         string
	Education    string
	Occupation   string
	MotherTongue string
	Pagination
	AgeMin    int
	AgeMax    int
	HeightMin int
	HeightMax int
}

// Match представляет взаимную симпатию или кандидата
type Match struct {
	MatchedAt time.Time   `json:"matchedAt,omitempty"`
	ID        string      `json:"id"`
	Profile   UserProfile `json:"profile"`
	Score     float64     `json:"compatibilityScore,omitempty"`
}

// MatchList представляет страницу совпадений
type MatchList struct {
	Matches    []Match `json:"matches"`
	TotalCount int     `json:"totalCount"`
	HasMore    bool    `json:"hasMore"`
}

// SwipeResult возвращается на like/dislike
type SwipeResult struct {
	MatchID   string `json:"matchId,omitempty"`
	IsMatched bool   `json:"isMatch"` // true если симпатия взаимная
}

package testserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (s *Backend) handlePotentialMatches(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())
	q := r.URL.Query()

	s.mu.Lock()
	var matches []api.Match
	for _, u := range s.sortedUsersLocked() {
		p := u.profile
		if p.ID == me || s.likes[me][p.ID] || !matchesFilters(p, q) {
			continue
		}
		p.Email = ""
		matches = append(matches, api.Match{ID: p.ID, Profile: p})
	}
	s.mu.Unlock()

	page, total, more := paginate(matches, r)
	writeOK(w, &api.MatchList{Matches: page, TotalCount: total, HasMore: more})
}

func (s *Backend) handleMatches(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())

	s.mu.Lock()
	var matches []api.Match
	for _, u := range s.sortedUsersLocked() {
		if s.likes[me][u.profile.ID] && s.likes[u.profile.ID][me] {
			p := u.profile
			p.Email = ""
			matches = append(matches, api.Match{ID: p.ID, Profile: p})
		}
	}
	s.mu.Unlock()

	page, total, more := paginate(matches, r)
	writeOK(w, &api.MatchList{Matches: page, TotalCount: total, HasMore: more})
}

func (s *Backend) handleSwipe(like bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := userIDFrom(r.Context())
		target := chi.URLParam(r, "id")

		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.users[target]; !ok || target == me {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		if s.likes[me] == nil {
			s.likes[me] = make(map[string]bool)
		}
		s.likes[me][target] = like

		result := &api.SwipeResult{}
		if like && s.likes[target][me] {
			result.IsMatched = true
			result.MatchID = s.ensureConversationLocked(me, target).id
		}
		writeOK(w, result)
	}
}

// ensureConversationLocked возвращает диалог двух пользователей, создавая его при необходимости
func (s *Backend) ensureConversationLocked(a, b string) *conversation {
	for _, c := range s.conversations {
		if (c.participants[0] == a && c.participants[1] == b) || (c.participants[0] == b && c.participants[1] == a) {
			return c
		}
	}
	c := &conversation{id: uuid.NewString(), participants: [2]string{a, b}}
	s.conversations[c.id] = c
	return c
}

func matchesFilters(p api.UserProfile, q map[string][]string) bool {
	get := func(key string) string {
		if v := q[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	atoi := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}

	for key, value := range map[string]string{
		"religion":     p.Religion,
		"caste":        p.Caste,
		"city":         p.City,
		"education":    p.Education,
		"occupation":   p.Occupation,
		"motherTongue": p.MotherTongue,
	} {
		if want := get(key); want != "" && want != value {
			return false
		}
	}

	outside := func(v int, lo, hi string) bool {
		return (atoi(lo) > 0 && v < atoi(lo)) || (atoi(hi) > 0 && v > atoi(hi))
	}
	return !outside(p.Age, "ageMin", "ageMax") && !outside(p.Height, "heightMin", "heightMax")
}

func now() time.Time {
	return time.Now().UTC()
}

package testserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (s *Backend) handleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	profile := s.users[userIDFrom(r.Context())].profile
	s.mu.Unlock()

	writeOK(w, &profile)
}

func (s *Backend) handleUpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	var update api.ProfileUpdate
	if !decode(r, &update) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	u := s.users[userIDFrom(r.Context())]
	applyUpdate(&u.profile, update)
	u.profile.UpdatedAt = time.Now().UTC()
	profile := u.profile
	s.mu.Unlock()

	writeOK(w, &profile)
}

// SetProfile заменяет анкету пользователя на стороне сервера
func (s *Backend) SetProfile(profile api.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[profile.ID]; ok {
		u.profile = profile
	}
}

func (s *Backend) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.users[chi.URLParam(r, "id")]
	var profile api.UserProfile
	if ok {
		profile = u.profile
		profile.Email = ""
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeOK(w, &profile)
}

func (s *Backend) handleSameCity(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())

	s.mu.Lock()
	city := s.users[me].profile.City
	var users []api.UserProfile
	for _, u := range s.sortedUsersLocked() {
		if u.profile.ID != me && city != "" && u.profile.City == city {
			users = append(users, u.profile)
		}
	}
	s.mu.Unlock()

	page, total, more := paginate(users, r)
	writeOK(w, &api.UserList{Users: page, TotalCount: total, HasMore: more})
}

func (s *Backend) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	settings := s.users[userIDFrom(r.Context())].settings
	s.mu.Unlock()

	writeOK(w, &settings)
}

func (s *Backend) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings api.Settings
	if !decode(r, &settings) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	s.users[userIDFrom(r.Context())].settings = settings
	s.mu.Unlock()

	writeOK(w, &settings)
}

func applyUpdate(p *api.UserProfile, u api.ProfileUpdate) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.FirstName, u.FirstName)
	set(&p.LastName, u.LastName)
	set(&p.Gender, u.Gender)
	set(&p.DateOfBirth, u.DateOfBirth)
	set(&p.MaritalStatus, u.MaritalStatus)
	set(&p.Religion, u.Religion)
	set(&p.Caste, u.Caste)
	set(&p.MotherTongue, u.MotherTongue)
	set(&p.Education, u.Education)
	set(&p.Occupation, u.Occupation)
	set(&p.AnnualIncome, u.AnnualIncome)
	set(&p.City, u.City)
	set(&p.State, u.State)
	set(&p.Country, u.Country)
	set(&p.About, u.About)
	if u.Photos != nil {
		p.Photos = u.Photos
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
}

// sortedUsersLocked возвращает пользователей в стабильном порядке
func (s *Backend) sortedUsersLocked() []*user {
	users := make([]*user, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].profile.Email < users[j].profile.Email
	})
	return users
}

// paginate применяет limit/offset из query к срезу
func paginate[T any](items []T, r *http.Request) (page []T, total int, hasMore bool) {
	total = len(items)
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page = items[offset:end]
	if page == nil {
		page = []T{}
	}
	return page, total, end < total
}

package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// paginationQuery добавляет limit/offset только если они заданы
func paginationQuery(p api.Pagination) url.Values {
	q := url.Values{}
	setInt(q, "limit", p.Limit)
	setInt(q, "offset", p.Offset)
	return q
}

func matchQuery(f api.MatchFilters) url.Values {
	q := paginationQuery(f.Pagination)
	setInt(q, "ageMin", f.AgeMin)
	setInt(q, "ageMax", f.AgeMax)
	setInt(q, "heightMin", f.HeightMin)
	setInt(q, "heightMax", f.HeightMax)
	setString(q, "religion", f.Religion)
	setString(q, "caste", f.Caste)
	setString(q, "city", f.City)
	setString(q, "education", f.Education)
	setString(q, "occupation", f.Occupation)
	setString(q, "motherTongue", f.MotherTongue)
	return q
}

func requestQuery(f api.RequestFilters) url.Values {
	q := paginationQuery(f.Pagination)
	setString(q, "status", string(f.Status))
	return q
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

// idPath подставляет экранированный id в шаблон пути
func idPath(format, id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	return fmt.Sprintf(format, url.PathEscape(id)), nil
}

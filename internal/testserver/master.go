package testserver

import (
	"net/http"

	"github.com/iudanet/matrimony-client/pkg/api"
)

var (
	religions = []api.MasterItem{
		{ID: "hindu", Name: "Hindu"},
		{ID: "muslim", Name: "Muslim"},
		{ID: "christian", Name: "Christian"},
		{ID: "sikh", Name: "Sikh"},
	}
	educationLevels = []api.MasterItem{
		{ID: "bachelors", Name: "Bachelor's degree"},
		{ID: "masters", Name: "Master's degree"},
		{ID: "doctorate", Name: "Doctorate"},
	}
	occupations = []api.MasterItem{
		{ID: "engineer", Name: "Engineer"},
		{ID: "doctor", Name: "Doctor"},
		{ID: "teacher", Name: "Teacher"},
	}
	castes = []api.Caste{
		{ID: "brahmin", Name: "Brahmin", ReligionID: "hindu"},
		{ID: "nair", Name: "Nair", ReligionID: "hindu"},
		{ID: "sunni", Name: "Sunni", ReligionID: "muslim"},
		{ID: "jat", Name: "Jat", ReligionID: "sikh"},
	}
	incomeRanges = []api.IncomeRange{
		{ID: "0-5", Label: "Up to 5 LPA", Min: 0, Max: 500000},
		{ID: "5-10", Label: "5-10 LPA", Min: 500000, Max: 1000000},
		{ID: "10+", Label: "Above 10 LPA", Min: 1000000},
	}
)

func (s *Backend) handleMaster(items []api.MasterItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := append([]api.MasterItem(nil), items...)
		writeOK(w, &out)
	}
}

func (s *Backend) handleCastes(w http.ResponseWriter, r *http.Request) {
	religionID := r.URL.Query().Get("religionId")

	out := []api.Caste{}
	for _, c := range castes {
		if religionID == "" || c.ReligionID == religionID {
			out = append(out, c)
		}
	}
	writeOK(w, &out)
}

func (s *Backend) handleIncomeRanges(w http.ResponseWriter, r *http.Request) {
	out := append([]api.IncomeRange(nil), incomeRanges...)
	writeOK(w, &out)
}

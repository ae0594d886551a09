package api

// MasterItem представляет элемент справочника
type MasterItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Caste элемент справочника каст, привязанный к религии
type Caste struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ReligionID string `json:"religionId"`
}

// IncomeRange элемент справочника диапазонов дохода
type IncomeRange struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max,omitempty"`
}

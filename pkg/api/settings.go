package api

// Settings представляет пользовательские настройки
type Settings struct {
	Notifications      NotificationSettings `json:"notifications"`
	Privacy            PrivacySettings      `json:"privacy"`
	PartnerPreferences PartnerPreferences   `json:"partnerPreferences"`
}

// NotificationSettings настройки уведомлений
type NotificationSettings struct {
	Email    bool `json:"email"`
	Push     bool `json:"push"`
	Matches  bool `json:"matches"`
	Messages bool `json:"messages"`
	Requests bool `json:"requests"`
}

// PrivacySettings настройки приватности
type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"` // all, matches, none
	ShowPhotos        bool   `json:"showPhotos"`
	ShowContactInfo   bool   `json:"showContactInfo"`
}

// PartnerPreferences предпочтения к партнеру
type PartnerPreferences struct {
	Religions []string `json:"religions,omitempty"`
	Cities    []string `json:"cities,omitempty"`
	AgeMin    int      `json:"ageMin,omitempty"`
	AgeMax    int      `json:"ageMax,omitempty"`
	HeightMin int      `json:"heightMin,omitempty"`
	HeightMax int      `json:"heightMax,omitempty"`
}

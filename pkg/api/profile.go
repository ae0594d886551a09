package api

import "time"

// UserProfile представляет анкету пользователя
type UserProfile struct {
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	ID            string    `json:"id"`
	Email         string    `json:"email,omitempty"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Gender        string    `json:"gender,omitempty"`
	DateOfBirth   string    `json:"dateOfBirth,omitempty"`
	MaritalStatus string    `json:"maritalStatus,omitempty"`
	Religion      string    `json:"religion,omitempty"`
	Caste         string    `json:"caste,omitempty"`
	MotherTongue  string    `json:"motherTongue,omitempty"`
	Education     string    `json:"education,omitempty"`
	Occupation    string    `json:"occupation,omitempty"`
	AnnualIncome  string    `json:"annualIncome,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Country       string    `json:"country,omitempty"`
	About         string    `json:"about,omitempty"`
	Photos        []string  `json:"photos,omitempty"`
	Age           int       `json:"age,omitempty"`
	Height        int       `json:"height,omitempty"` // в сантиметрах
	IsVerified    bool      `json:"isVerified"`
	IsPremium     bool      `json:"isPremium"`
}

// ProfileUpdate представляет частичное обновление анкеты
// nil поля не отправляются на сервер
type ProfileUpdate struct {
	FirstName     *string  `json:"firstName,omitempty"`
	LastName      *string  `json:"lastName,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	DateOfBirth   *string  `json:"dateOfBirth,omitempty"`
	MaritalStatus *string  `json:"maritalStatus,omitempty"`
	Religion      *string  `json:"religion,omitempty"`
	Caste         *string  `json:"caste,omitempty"`
	MotherTongue  *string  `json:"motherTongue,omitempty"`
	Education     *string  `json:"education,omitempty"`
	Occupation    *string  `json:"occupation,omitempty"`
	AnnualIncome  *string  `json:"annualIncome,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	Country       *string  `json:"country,omitempty"`
	About         *string  `json:"about,omitempty"`
	Photos        []string `json:"photos,omitempty"`
	Height        *int     `json:"height,omitempty"`
}

// UserList представляет страницу анкет (например, из того же города)
type UserList struct {
	Users      []UserProfile `json:"users"`
	TotalCount int           `json:"totalCount"`
	HasMore    bool          `json:"hasMore"`
}

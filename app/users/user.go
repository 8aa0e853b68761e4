package users

type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	CountryCode string `json:"country_code"`
}

func (u *User) String() string {
	if u == nil || u.Username == "" {
		return "Unknown user"
	}

	return u.Username
}

package domain

// PersonalInfo is the owner's identity block shown across the site.
type PersonalInfo struct {
	Name      string
	Title     string
	Subtitle  string
	Bio       string
	Email     string
	Phone     string
	Location  string
	LinkedIn  string
	GitHub    string
	AvatarURL string
}

// NewPersonalInfo checks that name, bio and email are present.
func NewPersonalInfo(info PersonalInfo) (PersonalInfo, error) {
	if err := required("name", "Name", info.Name); err != nil {
		return PersonalInfo{}, err
	}
	if err := required("bio", "Bio", info.Bio); err != nil {
		return PersonalInfo{}, err
	}
	if err := required("email", "Email", info.Email); err != nil {
		return PersonalInfo{}, err
	}
	return info, nil
}

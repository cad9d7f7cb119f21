package entities

// Communication holds the contact channels of a customer or user.
type Communication struct {
	Email         string `json:"email"`
	PhoneLandline string `json:"phone_landline,omitempty"`
	PhoneMobile   string `json:"phone_mobile,omitempty"`
	Fax           string `json:"fax,omitempty"`
	URL           string `json:"url,omitempty"`
}

func (c Communication) Tuple() []string {
	return nonEmpty(c.Email, c.PhoneLandline, c.PhoneMobile, c.Fax, c.URL)
}

func (c Communication) String(sep string) string {
	return joinLines(c.Tuple(), sep)
}

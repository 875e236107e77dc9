package model

import "strings"

// ContactInfo is the site's single record of contact channels.
type ContactInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Kakao    string `json:"kakao"`
	Zalo     string `json:"zalo"`
	Telegram string `json:"telegram"`
}

// Trimmed returns a copy with surrounding whitespace stripped from
// every field.
func (c ContactInfo) Trimmed() ContactInfo {
	return ContactInfo{
		Name:     strings.TrimSpace(c.Name),
		Phone:    strings.TrimSpace(c.Phone),
		Kakao:    strings.TrimSpace(c.Kakao),
		Zalo:     strings.TrimSpace(c.Zalo),
		Telegram: strings.TrimSpace(c.Telegram),
	}
}

package entities

import (
	"net/url"
	"strings"
)

// Profile is the account profile shown and edited on the profile page
type Profile struct {
	Name            string
	Surname         string
	Email           string
	Phone           string
	Whatsapp        string
	Creci           string
	City            string
	Bio             string
	Specialties     []string
	PropertiesSold  int
	ActiveListings  int
	YearsExperience int
	Rating          float64
}

// FullName joins name and surname
func (p Profile) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// ProfileUpdate is the edit form of the profile page
type ProfileUpdate struct {
	Name        string `form:"name" validate:"required"`
	Surname     string `form:"surname" validate:"required"`
	Phone       string `form:"phone"`
	Whatsapp    string `form:"whatsapp"`
	City        string `form:"city"`
	Bio         string `form:"bio"`
	Specialties string `form:"specialties"`
}

// Normalize trims the text fields of the form
func (u ProfileUpdate) Normalize() ProfileUpdate {
	return ProfileUpdate{
		Name:        strings.TrimSpace(u.Name),
		Surname:     strings.TrimSpace(u.Surname),
		Phone:       strings.TrimSpace(u.Phone),
		Whatsapp:    strings.TrimSpace(u.Whatsapp),
		City:        strings.TrimSpace(u.City),
		Bio:         strings.TrimSpace(u.Bio),
		Specialties: u.Specialties,
	}
}

// SpecialtyList splits the comma separated specialties field
func (u ProfileUpdate) SpecialtyList() []string {
	specialties := []string{}
	for _, specialty := range strings.Split(u.Specialties, ",") {
		specialty = strings.TrimSpace(specialty)
		if specialty != "" {
			specialties = append(specialties, specialty)
		}
	}
	return specialties
}

// ProfileUpdateFrom prefills the edit form with the current profile
func ProfileUpdateFrom(p Profile) ProfileUpdate {
	return ProfileUpdate{
		Name:        p.Name,
		Surname:     p.Surname,
		Phone:       p.Phone,
		Whatsapp:    p.Whatsapp,
		City:        p.City,
		Bio:         p.Bio,
		Specialties: strings.Join(p.Specialties, ", "),
	}
}

// PasswordChange is the change password form of the profile page.
// The current password is collected but not checked against anything.
type PasswordChange struct {
	Current string `form:"current_password" validate:"required"`
	New     string `form:"new_password" validate:"required,min=6"`
	Confirm string `form:"confirm_password" validate:"required,eqfield=New"`
}

const (
	editQueryParam     = "edit"
	passwordQueryParam = "password"
)

// ProfileEditState holds the two independent toggles of the profile page
type ProfileEditState struct {
	Editing          bool
	ChangingPassword bool
}

// ParseProfileEditState reads the toggles from the query string
func ParseProfileEditState(query url.Values) ProfileEditState {
	return ProfileEditState{
		Editing:          query.Get(editQueryParam) == "1",
		ChangingPassword: query.Get(passwordQueryParam) == "1",
	}
}

// Query encodes the state back into a query string, empty when both toggles are off
func (s ProfileEditState) Query() string {
	values := url.Values{}
	if s.Editing {
		values.Set(editQueryParam, "1")
	}
	if s.ChangingPassword {
		values.Set(passwordQueryParam, "1")
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// ToggleEditing flips the editing toggle leaving the password toggle untouched
func (s ProfileEditState) ToggleEditing() ProfileEditState {
	s.Editing = !s.Editing
	return s
}

// TogglePassword flips the password toggle leaving the editing toggle untouched
func (s ProfileEditState) TogglePassword() ProfileEditState {
	s.ChangingPassword = !s.ChangingPassword
	return s
}

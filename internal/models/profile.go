package models

// ProfilePatch carries a partial profile update. Nil leaves a field
// unchanged; a pointer to the empty string clears it.
type ProfilePatch struct {
	Name    *string `json:"name"`
	Bio     *string `json:"bio"`
	AboutMe *string `json:"aboutMe"`
	Avatar  *string `json:"avatar"`
}

// LinkView is a link as shown on the public profile page, with explicit
// overrides already merged over the brand defaults.
type LinkView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	URL             string `json:"url"`
	Icon            string `json:"icon,omitempty"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	IconColor       string `json:"iconColor"`
	IsGradient      bool   `json:"isGradient,omitempty"`
}

// ProfileView is the rendered public profile.
type ProfileView struct {
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Bio         string     `json:"bio,omitempty"`
	AboutMeHTML string     `json:"aboutMeHtml,omitempty"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	Links       []LinkView `json:"links"`
}

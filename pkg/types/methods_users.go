package types

// UsersListArguments are the arguments of users.list
type UsersListArguments struct {
	Cursor        string `json:"cursor,omitempty"`
	IncludeLocale bool   `json:"include_locale,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	TeamID        string `json:"team_id,omitempty"`
}

// UsersListResponse is the response of users.list
type UsersListResponse struct {
	APICallResult
	Members []User `json:"members,omitempty"`
	CacheTS int64  `json:"cache_ts,omitempty"`
}

// User is a workspace member
type User struct {
	ID                string       `json:"id"`
	TeamID            string       `json:"team_id,omitempty"`
	Name              string       `json:"name,omitempty"`
	RealName          string       `json:"real_name,omitempty"`
	Deleted           bool         `json:"deleted,omitempty"`
	Color             string       `json:"color,omitempty"`
	TZ                string       `json:"tz,omitempty"`
	TZLabel           string       `json:"tz_label,omitempty"`
	TZOffset          int          `json:"tz_offset,omitempty"`
	Profile           *UserProfile `json:"profile,omitempty"`
	IsAdmin           bool         `json:"is_admin,omitempty"`
	IsOwner           bool         `json:"is_owner,omitempty"`
	IsPrimaryOwner    bool         `json:"is_primary_owner,omitempty"`
	IsRestricted      bool         `json:"is_restricted,omitempty"`
	IsUltraRestricted bool         `json:"is_ultra_restricted,omitempty"`
	IsBot             bool         `json:"is_bot,omitempty"`
	IsAppUser         bool         `json:"is_app_user,omitempty"`
	Updated           int64        `json:"updated,omitempty"`
}

// UserProfile is the profile section of a User
type UserProfile struct {
	Title                 string `json:"title,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Skype                 string `json:"skype,omitempty"`
	RealName              string `json:"real_name,omitempty"`
	RealNameNormalized    string `json:"real_name_normalized,omitempty"`
	DisplayName           string `json:"display_name,omitempty"`
	DisplayNameNormalized string `json:"display_name_normalized,omitempty"`
	StatusText            string `json:"status_text,omitempty"`
	StatusEmoji           string `json:"status_emoji,omitempty"`
	StatusExpiration      int64  `json:"status_expiration,omitempty"`
	AvatarHash            string `json:"avatar_hash,omitempty"`
	Email                 string `json:"email,omitempty"`
	Team                  string `json:"team,omitempty"`
}

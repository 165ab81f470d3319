package types

// FilesListArguments are the arguments of files.list, which still paginates by offset
type FilesListArguments struct {
	Channel string `json:"channel,omitempty"`
	User    string `json:"user,omitempty"`
	Count   int    `json:"count,omitempty"`
	Page    int    `json:"page,omitempty"`
	TSFrom  string `json:"ts_from,omitempty"`
	TSTo    string `json:"ts_to,omitempty"`
	Types   string `json:"types,omitempty"`
	TeamID  string `json:"team_id,omitempty"`
}

// FilesListResponse is the response of files.list
type FilesListResponse struct {
	OffsetPaginatedResponse
	Files []File `json:"files,omitempty"`
}

// FilesInfoResponse is the response of files.info
type FilesInfoResponse struct {
	APICallResult
	File *File `json:"file,omitempty"`
}

// File is an uploaded or external file
type File struct {
	ID                 string   `json:"id"`
	Created            int64    `json:"created,omitempty"`
	Timestamp          int64    `json:"timestamp,omitempty"`
	Name               string   `json:"name,omitempty"`
	Title              string   `json:"title,omitempty"`
	Mimetype           string   `json:"mimetype,omitempty"`
	Filetype           string   `json:"filetype,omitempty"`
	PrettyType         string   `json:"pretty_type,omitempty"`
	User               string   `json:"user,omitempty"`
	Mode               string   `json:"mode,omitempty"`
	Editable           bool     `json:"editable,omitempty"`
	IsExternal         bool     `json:"is_external,omitempty"`
	ExternalType       string   `json:"external_type,omitempty"`
	Size               int64    `json:"size,omitempty"`
	URLPrivate         string   `json:"url_private,omitempty"`
	URLPrivateDownload string   `json:"url_private_download,omitempty"`
	Permalink          string   `json:"permalink,omitempty"`
	PermalinkPublic    string   `json:"permalink_public,omitempty"`
	CommentsCount      int      `json:"comments_count,omitempty"`
	IsPublic           bool     `json:"is_public,omitempty"`
	PublicURLShared    bool     `json:"public_url_shared,omitempty"`
	Channels           []string `json:"channels,omitempty"`
	Groups             []string `json:"groups,omitempty"`
	IMs                []string `json:"ims,omitempty"`
}

// AdminTeamsListArguments are the arguments of admin.teams.list
type AdminTeamsListArguments struct {
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// AdminTeamsListResponse is the response of admin.teams.list
type AdminTeamsListResponse struct {
	APICallResult
	Teams []Team `json:"teams,omitempty"`
}

// Team is a workspace in an Enterprise organisation
type Team struct {
	ID              string     `json:"id"`
	Name            string     `json:"name,omitempty"`
	Discoverability string     `json:"discoverability,omitempty"`
	PrimaryOwner    *TeamOwner `json:"primary_owner,omitempty"`
	TeamURL         string     `json:"team_url,omitempty"`
}

// TeamOwner identifies a workspace's primary owner
type TeamOwner struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

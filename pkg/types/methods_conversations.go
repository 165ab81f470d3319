package types

// ConversationsListArguments are the arguments of conversations.list. Every field is optional.
type ConversationsListArguments struct {
	Cursor          string `json:"cursor,omitempty"`
	ExcludeArchived bool   `json:"exclude_archived,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	Types           string `json:"types,omitempty"` // e.g. "public_channel,private_channel"
	TeamID          string `json:"team_id,omitempty"`
}

// ConversationsListResponse is the response of conversations.list
type ConversationsListResponse struct {
	APICallResult
	Channels []Channel `json:"channels,omitempty"`
}

// Channel is a conversation object
type Channel struct {
	ID                      string       `json:"id"`
	Name                    string       `json:"name,omitempty"`
	NameNormalized          string       `json:"name_normalized,omitempty"`
	IsChannel               bool         `json:"is_channel,omitempty"`
	IsGroup                 bool         `json:"is_group,omitempty"`
	IsIM                    bool         `json:"is_im,omitempty"`
	IsMPIM                  bool         `json:"is_mpim,omitempty"`
	IsPrivate               bool         `json:"is_private,omitempty"`
	IsArchived              bool         `json:"is_archived,omitempty"`
	IsGeneral               bool         `json:"is_general,omitempty"`
	IsShared                bool         `json:"is_shared,omitempty"`
	IsOrgShared             bool         `json:"is_org_shared,omitempty"`
	IsExtShared             bool         `json:"is_ext_shared,omitempty"`
	IsMember                bool         `json:"is_member,omitempty"`
	Created                 int64        `json:"created,omitempty"`
	Updated                 int64        `json:"updated,omitempty"`
	Creator                 string       `json:"creator,omitempty"`
	ContextTeamID           string       `json:"context_team_id,omitempty"`
	SharedTeamIDs           []string     `json:"shared_team_ids,omitempty"`
	Topic                   *ChannelText `json:"topic,omitempty"`
	Purpose                 *ChannelText `json:"purpose,omitempty"`
	NumMembers              int          `json:"num_members,omitempty"`
	PreviousNames           []string     `json:"previous_names,omitempty"`
	PendingShared           []string     `json:"pending_shared,omitempty"`
	PendingConnectedTeamIDs []string     `json:"pending_connected_team_ids,omitempty"`
}

// ChannelText is a channel's topic or purpose
type ChannelText struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

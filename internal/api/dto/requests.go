package dto

// SlashCommandRequest is the form payload Slack posts for a slash command.
type SlashCommandRequest struct {
	Token       string `form:"token"`
	TeamID      string `form:"team_id"`
	ChannelID   string `form:"channel_id"`
	UserID      string `form:"user_id" binding:"required"`
	UserName    string `form:"user_name"`
	Command     string `form:"command"`
	Text        string `form:"text"`
	ResponseURL string `form:"response_url"`
}

// OAuthCallbackRequest is the query payload of the provider's OAuth redirect.
// State carries the Slack user id the authorization flow started from.
type OAuthCallbackRequest struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

// Error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

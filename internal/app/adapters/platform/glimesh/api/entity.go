package api

type channelResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	Views       int64  `json:"views"`
	Tier        string `json:"tier"`
	CreatedAt   string `json:"created_at"`
}

type livestreamResponse struct {
	Title        string `json:"title"`
	GameName     string `json:"game_name"`
	ViewerCount  int    `json:"viewer_count"`
	StartedAt    string `json:"started_at"`
	Language     string `json:"language"`
	ThumbnailURL string `json:"thumbnail_url"`
}

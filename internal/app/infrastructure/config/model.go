package config

type Config struct {
	App       App       `json:"app"`
	Roster    Roster    `json:"roster"`
	Platforms Platforms `json:"platforms"`
	Fetch     Fetch     `json:"fetch"`
	Cache     Cache     `json:"cache"`
}

type App struct {
	LogLevel       string `json:"log_level"`
	GinMode        string `json:"gin_mode"`
	ListenAddr     string `json:"listen_addr"`
	AuthToken      string `json:"auth_token"`
	RefreshSeconds int    `json:"refresh_seconds"` // 0 disables the background poller
}

// Roster names the streamers to watch. Source is one of "inline", "file"
// or "env"; Logins is only read in inline mode.
type Roster struct {
	Source string   `json:"source"`
	Path   string   `json:"path"`
	Logins []string `json:"logins"`
}

type Platforms struct {
	Twitch  *Platform `json:"twitch"`
	Glimesh *Platform `json:"glimesh"`
}

type Platform struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	BaseURL      string `json:"base_url"`
	TokenURL     string `json:"token_url"`
	BatchSize    int    `json:"batch_size"`
}

type Fetch struct {
	BatchDelaySeconds int `json:"batch_delay_seconds"`
	MaxRetries        int `json:"max_retries"`
}

type Cache struct {
	TTLSeconds int `json:"ttl_seconds"`
}

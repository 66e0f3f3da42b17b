package model

// Material is a markdown study note identified by its file name.
type Material struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Markdown string `json:"markdown,omitempty"`
}

type Video struct {
	Topic string `yaml:"topic" json:"topic"`
	URL   string `yaml:"url" json:"url"`
}

// VideoCatalog maps class level to chapter to videos.
type VideoCatalog map[int]map[string][]Video

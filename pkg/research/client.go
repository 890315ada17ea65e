package research

type Update struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

type Client interface {
	Search(window Window) ([]Update, error)
	Name() string
}

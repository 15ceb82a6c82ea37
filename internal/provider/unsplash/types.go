package unsplash

// Raw API response types (internal).

type searchResponse struct {
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Results    []rawPhoto `json:"results"`
}

type rawPhoto struct {
	ID       string   `json:"id"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Color    string   `json:"color"`
	BlurHash string   `json:"blur_hash"`
	URLs     rawURLs  `json:"urls"`
	Tags     []rawTag `json:"tags"`
	User     rawUser  `json:"user"`
}

type rawURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

type rawTag struct {
	Title string `json:"title"`
}

type rawUser struct {
	Name  string `json:"name"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
}

package model

// Board is the full vision-board document owned by one account. The JSON
// tags match the durable form the original web client wrote to localStorage,
// so exported files and share links from it decode unchanged.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	IsPublic  bool      `json:"isPublic"`
	ShareSlug string    `json:"shareSlug"`
	ThemeID   string    `json:"themeId,omitempty"`
	Sections  []Section `json:"sections"`
}

// Section is a named grouping of items. Order within Board.Sections is
// meaningful: it drives display order and the cyclic accent assignment.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one image+caption goal entry. ImageURL holds either a remote URL
// or a data URL with embedded image bytes; the model does not distinguish.
type Item struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

package mods

import "fmt"

// Item is one entry of the mods upgrade list.
// - Filename: name the client saves the downloaded file under.
// - Action: what the client does with the file.
// - DownloadLink: direct link to the file.
type Item struct {
	Filename     string `json:"mod_filename" yaml:"mod_filename"`
	Action       Action `json:"action" yaml:"action"`
	DownloadLink string `json:"download_link" yaml:"download_link"`
}

// String renders the item with its field names, as shown in the numbered listing.
func (it Item) String() string {
	return fmt.Sprintf("Item{Filename: %q, Action: %s, DownloadLink: %q}", it.Filename, it.Action, it.DownloadLink)
}

// Items is the ordered list being built. Positions are 0-based here and 1-based on the console.
type Items []Item

// Remove deletes the item at idx, shifting the following items down by one.
func (items *Items) Remove(idx int) {
	s := *items
	*items = append(s[:idx], s[idx+1:]...)
}

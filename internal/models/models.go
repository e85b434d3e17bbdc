package models

// VideoResult is a normalized search hit returned to the client. VideoID is
// an opaque platform identifier and the only key used to correlate a result
// with a download or preview action.
type VideoResult struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle,omitempty"`
}

type SearchResponse struct {
	Videos []VideoResult `json:"videos"`
}

// VideoDetails carries the metadata shown in the preview overlay.
type VideoDetails struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

package model

// Entry is the sole persisted record: a dated journal note carrying
// free text, a canned encouragement, or both.
type Entry struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Text          string `json:"text,omitempty"`
	Encouragement string `json:"encouragement,omitempty"`
}

// EntryPreview is the trimmed listing row returned by the gateway.
type EntryPreview struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Preview string `json:"preview"`
}

// CreateEntryRequest carries the fields accepted when creating an
// entry. Date and Time are optional; blanks fall back to the current
// UTC date and time.
type CreateEntryRequest struct {
	Text          string
	Encouragement string
	Date          string
	Time          string
}

// UpdateEntryRequest carries a partial update. Nil means "leave the
// field alone"; a pointer to a blank string clears text/encouragement.
type UpdateEntryRequest struct {
	Text          *string
	Encouragement *string
	Date          *string
	Time          *string
}

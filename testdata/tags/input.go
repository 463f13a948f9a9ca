package tags

type Message struct {
	Text *struct {
		Body   string `json:"body" db:"body" validate:"required"`
		Sender string `json:"sender,omitempty"`
	}
}

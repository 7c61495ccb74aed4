package models

type SlackMessage struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments"`
	Username    string       `json:"username"`
	Mrkdwn      bool         `json:"mrkdwn"`
	IconURL     string       `json:"icon_url"`
}

type Attachment struct {
	Fallback  string   `json:"fallback"`
	Pretext   string   `json:"pretext"`
	Title     string   `json:"title"`
	TitleLink string   `json:"title_link"`
	Text      string   `json:"text"`
	Fields    []Field  `json:"fields"`
	MrkdwnIn  []string `json:"mrkdwn_in"`
	Color     string   `json:"color"`
}

type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cloudboostingservice/client-sm-lambdaGD/shared/models"
)

const (
	consoleURL = "https://console.aws.amazon.com/guardduty"
	botName    = "GuardDuty"
	botIconURL = "https://raw.githubusercontent.com/aws-samples/amazon-guardduty-to-slack/master/images/gd_logo.png"
)

func findingLink(region, findingID string) string {
	return fmt.Sprintf("%s/home?region=%s#/findings?search=id%%3D%s",
		consoleURL, url.QueryEscape(region), url.QueryEscape(findingID))
}

// lastSeen renders updatedAt through Slack's date macro so each reader sees
// their local time. Unparseable timestamps are shown verbatim.
func lastSeen(updatedAt string) string {
	t, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return updatedAt
	}
	return fmt.Sprintf("<!date^%d^{date} at {time} | %s>", t.Unix(), updatedAt)
}

func buildMessage(cfg Config, region string, f models.Finding, c classification) models.SlackMessage {
	link := findingLink(region, f.ID)

	return models.SlackMessage{
		Channel: cfg.Channel,
		Text:    "",
		Attachments: []models.Attachment{
			{
				Fallback:  f.Type + " - " + link,
				Pretext:   fmt.Sprintf("*Finding in %s for Acct: %s*", region, f.AccountID),
				Title:     f.Type,
				TitleLink: link,
				Text:      f.Description,
				Fields: []models.Field{
					{Title: "Severity", Value: string(c.Level), Short: true},
					{Title: "Region", Value: region, Short: true},
					{Title: "Last Seen", Value: lastSeen(f.UpdatedAt), Short: true},
				},
				MrkdwnIn: []string{"pretext"},
				Color:    c.Color,
			},
		},
		Username: botName,
		Mrkdwn:   true,
		IconURL:  botIconURL,
	}
}

package main

import (
	"encoding/json"
	"testing"

	"github.com/cloudboostingservice/client-sm-lambdaGD/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	WebhookURL:  "https://hooks.slack.test/services/T/B/X",
	Channel:     "#security",
	MinSeverity: ThresholdLow,
}

func testFinding(score float64) models.Finding {
	return models.Finding{
		Type:        "UnauthorizedAccess:EC2/SSHBruteForce",
		Description: "198.51.100.7 is performing SSH brute force attacks against i-0abc.",
		UpdatedAt:   "2021-03-04T05:06:07.123Z",
		AccountID:   "123456789012",
		Region:      "us-east-1",
		ID:          "a2bd2e5d9cb1b1a4f3a8c7d6e5f4a3b2",
		Severity:    models.SeverityScore(score),
	}
}

func TestFindingLink(t *testing.T) {
	assert.Equal(t,
		"https://console.aws.amazon.com/guardduty/home?region=eu-west-1#/findings?search=id%3Dabc123",
		findingLink("eu-west-1", "abc123"))
}

func TestLastSeen(t *testing.T) {
	t.Run("rfc3339 timestamp gets the date macro", func(t *testing.T) {
		assert.Equal(t,
			"<!date^1614834367^{date} at {time} | 2021-03-04T05:06:07.123Z>",
			lastSeen("2021-03-04T05:06:07.123Z"))
	})

	t.Run("unparseable timestamp is shown verbatim", func(t *testing.T) {
		assert.Equal(t, "yesterday", lastSeen("yesterday"))
	})
}

func TestBuildMessage(t *testing.T) {
	f := testFinding(8.5)
	msg := buildMessage(testConfig, "us-east-1", f, classify(f.Severity, testConfig.MinSeverity))

	assert.Equal(t, "#security", msg.Channel)
	assert.Equal(t, "", msg.Text)
	assert.Equal(t, "GuardDuty", msg.Username)
	assert.True(t, msg.Mrkdwn)
	assert.Equal(t, botIconURL, msg.IconURL)
	require.Len(t, msg.Attachments, 1)

	a := msg.Attachments[0]
	link := "https://console.aws.amazon.com/guardduty/home?region=us-east-1#/findings?search=id%3Da2bd2e5d9cb1b1a4f3a8c7d6e5f4a3b2"
	assert.Equal(t, "UnauthorizedAccess:EC2/SSHBruteForce - "+link, a.Fallback)
	assert.Equal(t, "*Finding in us-east-1 for Acct: 123456789012*", a.Pretext)
	assert.Equal(t, f.Type, a.Title)
	assert.Equal(t, link, a.TitleLink)
	assert.Equal(t, f.Description, a.Text)
	assert.Equal(t, []string{"pretext"}, a.MrkdwnIn)
	assert.Equal(t, colorHigh, a.Color)
	assert.Equal(t, []models.Field{
		{Title: "Severity", Value: "High", Short: true},
		{Title: "Region", Value: "us-east-1", Short: true},
		{Title: "Last Seen", Value: "<!date^1614834367^{date} at {time} | 2021-03-04T05:06:07.123Z>", Short: true},
	}, a.Fields)
}

func TestBuildMessageIsDeterministic(t *testing.T) {
	f := testFinding(5.0)
	c := classify(f.Severity, testConfig.MinSeverity)

	first, err := json.Marshal(buildMessage(testConfig, "us-east-1", f, c))
	require.NoError(t, err)
	second, err := json.Marshal(buildMessage(testConfig, "us-east-1", f, c))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestBuildMessageWireShape(t *testing.T) {
	f := testFinding(2.0)
	b, err := json.Marshal(buildMessage(testConfig, "us-east-1", f, classify(f.Severity, ThresholdLow)))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	for _, k := range []string{"channel", "text", "attachments", "username", "mrkdwn", "icon_url"} {
		assert.Contains(t, got, k)
	}

	a := got["attachments"].([]interface{})[0].(map[string]interface{})
	for _, k := range []string{"fallback", "pretext", "title", "title_link", "text", "fields", "mrkdwn_in", "color"} {
		assert.Contains(t, a, k)
	}
	assert.Equal(t, "#e2d43b", a["color"])
}

package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/pkg/email"
)

func validConfig() email.Config {
	return email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	client, err := email.NewPostmarkClient(validConfig())
	require.NoError(t, err)
	assert.NotNil(t, client)

	tests := []struct {
		name   string
		mutate func(*email.Config)
		want   string
	}{
		{"no server token", func(c *email.Config) { c.PostmarkServerToken = "" }, "PostmarkServerToken"},
		{"no account token", func(c *email.Config) { c.PostmarkAccountToken = "" }, "PostmarkAccountToken"},
		{"bad sender", func(c *email.Config) { c.SenderEmail = "nope" }, "SenderEmail"},
		{"bad support", func(c *email.Config) { c.SupportEmail = "" }, "SupportEmail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			client, err := email.NewPostmarkClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	ok := email.SendEmailParams{SendTo: "owner@example.com", Subject: "s", BodyHTML: "<p>b</p>"}
	assert.NoError(t, ok.Validate())

	for name, p := range map[string]email.SendEmailParams{
		"no recipient":  {Subject: "s", BodyHTML: "b"},
		"bad recipient": {SendTo: "owner", Subject: "s", BodyHTML: "b"},
		"no subject":    {SendTo: "owner@example.com", BodyHTML: "b"},
		"no body":       {SendTo: "owner@example.com", Subject: "s"},
	} {
		assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams, name)
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "owner@example.com",
		Subject:  "New download request",
		BodyHTML: "<p>jane@example.com</p>",
		Tag:      "lead notification",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		assert.Contains(t, e.Name(), "lead_notification")
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		if strings.HasSuffix(e.Name(), ".json") {
			var meta map[string]string
			require.NoError(t, json.Unmarshal(data, &meta))
			assert.Equal(t, "owner@example.com", meta["send_to"])
			assert.Equal(t, "lead notification", meta["tag"])
		} else {
			assert.Equal(t, "<p>jane@example.com</p>", string(data))
		}
	}

	err = sender.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

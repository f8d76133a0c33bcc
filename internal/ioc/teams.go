package ioc

import (
	"net/http"
	"time"

	"gitee.com/flycash/review-reminder/internal/service/channel"
)

func InitTeamsClient() channel.TeamsClient {
	const timeout = 10 * time.Second
	return channel.NewTeamsWebhookClient(&http.Client{Timeout: timeout})
}

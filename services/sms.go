// services/sms.go
package services

import (
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewSMSSenderFromEnv builds the SMS capability from TWILIO_* env vars.
// Without credentials the simulated sender is returned and messages are
// logged instead of sent.
func NewSMSSenderFromEnv() SMSSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid == "" || authToken == "" {
		log.Println("Twilio credentials not set, SMS will be simulated")
		return &simulatedSMSSender{}
	}

	return &twilioSMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *twilioSMSSender) Send(msg SMSMessage) ChannelResult {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.from)
	params.SetBody(msg.Message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS to %s: %v", msg.To, err)
		return ChannelResult{Error: err.Error()}
	}
	if resp.Sid != nil {
		return ChannelResult{Success: true, ID: *resp.Sid}
	}
	return ChannelResult{Success: true}
}

type simulatedSMSSender struct{}

func (s *simulatedSMSSender) Send(msg SMSMessage) ChannelResult {
	log.Printf("Simulated SMS to %s: %s", msg.To, msg.Message)
	return ChannelResult{Success: true, Simulated: true}
}

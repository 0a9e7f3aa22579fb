package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	resend "github.com/resend/resend-go/v2"
)

// Service sends league emails through resend.
type Service struct {
	resendClient *resend.Client
	recipients   []string
}

// NewService creates a new empty service.
func NewService(apiKey string, recipients []string) *Service {
	return &Service{
		resendClient: resend.NewClient(apiKey),
		recipients:   recipients,
	}
}

// SendResults mails the current standings to the configured recipients.
func (s Service) SendResults(ctx context.Context, eventName string, standings []Standing) error {
	if len(s.recipients) == 0 {
		log.Printf("No notification recipients configured, skipping results mail\n")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    "results@wrestlepicks.dev",
		To:      s.recipients,
		Subject: fmt.Sprintf("Results are in: %s", eventName),
		Html:    resultsTemplate(eventName, standings),
	}

	if _, err := s.resendClient.Emails.Send(params); err != nil {
		log.Printf("Failed to send results mail: %v\n", err)
		return err
	}
	return nil
}

func resultsTemplate(eventName string, standings []Standing) string {
	var rows strings.Builder
	for _, standing := range standings {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%d</td><td>%s</td><td>%d</td></tr>",
			standing.Rank, standing.Name, standing.Points,
		))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f4f4f4;
            margin: 0;
            padding: 20px;
        }
        .container {
            background-color: #ffffff;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        table {
            width: 100%%;
            border-collapse: collapse;
        }
        td, th {
            padding: 8px;
            border-bottom: 1px solid #dddddd;
            text-align: left;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>%s is in the books</h2>
        <p>Here are the standings after the event:</p>
        <table>
            <tr><th>#</th><th>Player</th><th>Points</th></tr>
            %s
        </table>
    </div>
</body>
</html>`, eventName, rows.String())
}

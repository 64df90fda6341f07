// Package email delivers parent notifications through Amazon SES
package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"moxiedash/internal/models"
)

// Service sends safety alerts and weekly summaries to the parent's inbox
type Service struct {
	client      *sesv2.Client
	fromEmail   string
	fromName    string
	parentEmail string
	enabled     bool
	debug       bool
}

// NewService creates the email service. An empty fromEmail or parentEmail
// yields a disabled service that logs instead of sending.
func NewService(awsRegion, fromEmail, fromName, parentEmail string, debug bool) (*Service, error) {
	if fromEmail == "" || parentEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL or PARENT_EMAIL not configured")
		if debug {
			log.Println("[DEBUG] Email service will skip sending all emails")
		}
		return &Service{enabled: false, debug: debug}, nil
	}

	if debug {
		log.Printf("[DEBUG] Initializing email service with AWS SES")
		log.Printf("[DEBUG] AWS Region: %s", awsRegion)
		log.Printf("[DEBUG] From Email: %s", fromEmail)
		log.Printf("[DEBUG] Parent Email: %s", parentEmail)
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &Service{
		client:      client,
		fromEmail:   fromEmail,
		fromName:    fromName,
		parentEmail: parentEmail,
		enabled:     true,
		debug:       debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// SendSafetyAlert emails the parent about a content flag
func (s *Service) SendSafetyAlert(flag models.ContentFlag) error {
	if s.debug {
		log.Printf("[DEBUG] SendSafetyAlert called: category=%s, severity=%s", flag.Category, flag.Severity)
	}

	if !s.enabled {
		log.Printf("Skipping email send (service disabled): safety alert %s", flag.Category.DisplayName())
		return nil
	}

	subject := fmt.Sprintf("Moxie Safety Alert: %s (%s)", flag.Category.DisplayName(), flag.Severity.DisplayName())

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: %s; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.quote { border-left: 4px solid #ccc; padding-left: 15px; color: #555; font-style: italic; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>%s</h1>
		</div>
		<div class="content">
			<p><strong>Severity:</strong> %s</p>
			<p>%s</p>
			<p class="quote">%s</p>
			<p><strong>Recommended action:</strong> %s</p>
			<p>Open the Moxie dashboard to review the full conversation.</p>
		</div>
		<div class="footer">
			<p>This is an automated email from your Moxie dashboard. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, flag.Severity.Color(), flag.Category.DisplayName(), flag.Severity.DisplayName(),
		flag.Category.Description(), flag.MessageContent, flag.Category.RecommendedAction())

	textBody := fmt.Sprintf(`Moxie Safety Alert: %s

Severity: %s

%s

"%s"

Recommended action: %s

Open the Moxie dashboard to review the full conversation.

---
This is an automated email from your Moxie dashboard. Please do not reply.
`, flag.Category.DisplayName(), flag.Severity.DisplayName(),
		flag.Category.Description(), flag.MessageContent, flag.Category.RecommendedAction())

	return s.sendEmail(context.Background(), subject, htmlBody, textBody)
}

// SendWeeklySummary emails the parent the weekly report card
func (s *Service) SendWeeklySummary(report models.WeeklyReportData) error {
	if s.debug {
		log.Printf("[DEBUG] SendWeeklySummary called: week=%s", report.WeekStartDate.Format("2006-01-02"))
	}

	if !s.enabled {
		log.Println("Skipping email send (service disabled): weekly summary")
		return nil
	}

	subject := fmt.Sprintf("Moxie Weekly Report: %s - %s",
		report.WeekStartDate.Format("Jan 2"), report.WeekEndDate.Format("Jan 2"))

	var topicLines []string
	for _, t := range report.TopTopics {
		topicLines = append(topicLines, fmt.Sprintf("%s (%d mentions)", t.Topic, t.Count))
	}
	topics := strings.Join(topicLines, ", ")
	hours := report.TotalScreenTime / 3600

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.grade { font-size: 48px; font-weight: bold; text-align: center; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>This Week with Moxie</h1>
		</div>
		<div class="content">
			<p class="grade">%s</p>
			<p><strong>Conversations:</strong> %d</p>
			<p><strong>Screen time:</strong> %.1f hours</p>
			<p><strong>Top topics:</strong> %s</p>
			<p><strong>Lessons completed:</strong> %d</p>
			<p><strong>Safety flags:</strong> %d</p>
		</div>
		<div class="footer">
			<p>This is an automated email from your Moxie dashboard. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, report.OverallGrade(), report.TotalConversations, hours, topics,
		report.LearningProgress.LessonsCompleted, report.SafetyFlags)

	textBody := fmt.Sprintf(`This Week with Moxie

Overall grade: %s

Conversations: %d
Screen time: %.1f hours
Top topics: %s
Lessons completed: %d
Safety flags: %d

---
This is an automated email from your Moxie dashboard. Please do not reply.
`, report.OverallGrade(), report.TotalConversations, hours, topics,
		report.LearningProgress.LessonsCompleted, report.SafetyFlags)

	return s.sendEmail(context.Background(), subject, htmlBody, textBody)
}

// sendEmail sends an email to the parent using Amazon SES
func (s *Service) sendEmail(ctx context.Context, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	if s.debug {
		log.Printf("[DEBUG] Sending email: from=%s, to=%s, subject=%s", fromAddress, s.parentEmail, subject)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.parentEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", s.parentEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Message ID: %s", *result.MessageId)
	}
	log.Printf("Email sent successfully: to=%s, subject=%s", s.parentEmail, subject)
	return nil
}

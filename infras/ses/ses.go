package ses

//go:generate go run go.uber.org/mock/mockgen -source=./ses.go -destination=./mocks/ses_mock.go -package=mocks

import (
	"context"
	"fmt"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsSes "github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

const (
	charsetUTF8 = "UTF-8"

	otelAttrRecipient = "email.to"
	otelAttrSubject   = "email.subject"
)

// Message is one transactional notification. HTML and Text are alternative
// bodies of the same content.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailerImpl struct {
	Client *awsSes.Client
	otel   otel.Otel
}

func (svc *mailerImpl) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: msg.To,
		otelAttrSubject:   msg.Subject,
	})

	_, err = svc.Client.SendEmail(ctx, &awsSes.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String(charsetUTF8),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(msg.HTML),
					Charset: aws.String(charsetUTF8),
				},
				Text: &types.Content{
					Data:    aws.String(msg.Text),
					Charset: aws.String(charsetUTF8),
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email via SES")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) Mailer {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.Store.Region),
	}

	if config.Store.AccessKeyID != "" {
		staticProvider := credentials.NewStaticCredentialsProvider(
			config.Store.AccessKeyID,
			config.Store.SecretAccessKey,
			"",
		)
		opts = append(opts, awsConfig.WithCredentialsProvider(staticProvider))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading AWS configuration")
	}

	return &mailerImpl{
		Client: awsSes.NewFromConfig(cfg),
		otel:   otel,
	}
}

package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the slice of the SES v2 client the transport uses
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfig selects the region and, optionally, static credentials. Without
// keys the default AWS credential chain applies.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// SESTransport submits pre-built MIME messages through SendEmail raw content
type SESTransport struct {
	client SESAPI
	now    func() time.Time
}

func NewSESTransport(ctx context.Context, cfg SESConfig) (*SESTransport, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESTransportWithClient(sesv2.NewFromConfig(awsCfg)), nil
}

func NewSESTransportWithClient(client SESAPI) *SESTransport {
	return &SESTransport{client: client, now: time.Now}
}

func (t *SESTransport) Name() string {
	return "ses"
}

func (t *SESTransport) Send(ctx context.Context, msg *Message) error {
	raw, err := Build(msg, t.now())
	if err != nil {
		return err
	}
	to, err := envelopeAddress(msg.To)
	if err != nil {
		return err
	}

	_, err = t.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES send to %s: %w", to, err)
	}
	return nil
}

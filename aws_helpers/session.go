package aws_helpers

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	log "github.com/sirupsen/logrus"

	federated_identity "github.com/tempuslabs/globre/federated_identity"
	options "github.com/tempuslabs/globre/options"
	utils "github.com/tempuslabs/globre/utils"
)

// GetAwsSession builds a session for the configured profile and region. With
// a role ARN it prefers pod web identity and falls back to AssumeRole.
func GetAwsSession(opts options.Options) *session.Session {
	sess, err := session.NewSessionWithOptions(session.Options{
		Profile:           opts.AwsProfile,
		Config:            aws.Config{Region: aws.String(opts.Region)},
		SharedConfigState: session.SharedConfigEnable,
	})
	utils.PanicIfError("Unable to create AWS session - ", err)

	if opts.AwsRoleArn == "" {
		return sess
	}

	cfg, err := federated_identity.WebIdentityConfig(opts.AwsRoleArn, opts.Region)
	if err == nil {
		log.Debugf("Using web identity for role '%s'", opts.AwsRoleArn)
		return sess.Copy(cfg)
	}
	log.Debugf("Web identity unavailable (%v); assuming role '%s'", err, opts.AwsRoleArn)
	return sess.Copy(&aws.Config{Credentials: stscreds.NewCredentials(sess, opts.AwsRoleArn)})
}

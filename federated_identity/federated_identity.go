package federatedidentity

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	log "github.com/sirupsen/logrus"
)

const sessionName = "globre-federated-identity"

type NotInKubernetesError struct{}

func (e *NotInKubernetesError) Error() string {
	return "not in Kubernetes"
}

type NoRoleArnError struct{}

func (e *NoRoleArnError) Error() string {
	return "neither role nor $AWS_ROLE_ARN provided"
}

type NoTokenFileError struct{}

func (e *NoTokenFileError) Error() string {
	return "$AWS_WEB_IDENTITY_TOKEN_FILE not set"
}

// WebIdentityConfig builds an aws.Config whose credentials come from the
// projected service account token of a Kubernetes pod. Empty arguments fall
// back to $AWS_ROLE_ARN and $AWS_REGION.
func WebIdentityConfig(roleArn, region string) (*aws.Config, error) {
	if _, inK8s := os.LookupEnv("KUBERNETES_SERVICE_HOST"); !inK8s {
		return nil, &NotInKubernetesError{}
	}

	if roleArn == "" {
		envArn, ok := os.LookupEnv("AWS_ROLE_ARN")
		if !ok {
			return nil, &NoRoleArnError{}
		}
		roleArn = envArn
	}

	tokenFile, ok := os.LookupEnv("AWS_WEB_IDENTITY_TOKEN_FILE")
	if !ok {
		return nil, &NoTokenFileError{}
	}

	if region == "" {
		if envRegion, ok := os.LookupEnv("AWS_REGION"); ok {
			region = envRegion
		} else {
			log.Warn("Neither region nor $AWS_REGION defined; defaulting to 'us-east-1'")
			region = "us-east-1"
		}
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}

	creds := stscreds.NewWebIdentityCredentials(sess, roleArn, sessionName, tokenFile)
	return aws.NewConfig().WithRegion(region).WithCredentials(creds), nil
}

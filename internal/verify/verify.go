package verify

import (
	"context"
	"fmt"
	"io"

	"github.com/BerryBytes/ccactl/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI is the seam over the SDK's sts client.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// EC2API is the seam over the SDK's ec2 client.
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// ClientFactory builds API clients from a cached credential record.
type ClientFactory func(ctx context.Context, record *models.CachedCredentials) (STSAPI, EC2API, error)

// Verifier exercises cached credentials against live AWS APIs. Each check
// reports independently; one failure does not stop the rest.
type Verifier struct {
	Clients ClientFactory
	Out     io.Writer
}

func NewVerifier(out io.Writer) *Verifier {
	return &Verifier{Clients: sdkClients, Out: out}
}

func sdkClients(ctx context.Context, record *models.CachedCredentials) (STSAPI, EC2API, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(record.SSORegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			record.Credentials.AccessKeyID,
			record.Credentials.SecretAccessKey,
			record.Credentials.SessionToken,
		)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sts.NewFromConfig(cfg), ec2.NewFromConfig(cfg), nil
}

// Run performs the credential checks. It returns an error only when no
// check could run at all.
func (v *Verifier) Run(ctx context.Context, record *models.CachedCredentials) error {
	stsClient, ec2Client, err := v.Clients(ctx, record)
	if err != nil {
		return err
	}

	fmt.Fprintln(v.Out, "Test 1: STS GetCallerIdentity")
	if identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err != nil {
		fmt.Fprintf(v.Out, "  Failed: %v\n", err)
	} else {
		fmt.Fprintln(v.Out, "  Success")
		fmt.Fprintf(v.Out, "    User ARN: %s\n", aws.ToString(identity.Arn))
		fmt.Fprintf(v.Out, "    Account: %s\n", aws.ToString(identity.Account))
	}

	fmt.Fprintln(v.Out, "\nTest 2: EC2 DescribeRegions")
	if regions, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{}); err != nil {
		fmt.Fprintf(v.Out, "  Failed: %v\n", err)
	} else {
		fmt.Fprintln(v.Out, "  Success")
		fmt.Fprintf(v.Out, "    Regions available: %d\n", len(regions.Regions))
	}

	fmt.Fprintln(v.Out, "\nAll tests completed")
	return nil
}

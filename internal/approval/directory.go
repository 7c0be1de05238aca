package approval

import (
	"context"
	"fmt"

	"github.com/BerryBytes/ccactl/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/identitystore"
	idstypes "github.com/aws/aws-sdk-go-v2/service/identitystore/types"
)

// Directory is the user-directory collaborator. Approve resolutions look
// up, create and group users through it.
type Directory interface {
	// FindUserByUsername returns the user id, or "" when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (string, error)
	CreateUser(ctx context.Context, reg *models.Registration) (string, error)
	AddUserToGroup(ctx context.Context, groupID, userID string) error
}

// IdentityStoreAPI is the seam over the SDK's identitystore client.
type IdentityStoreAPI interface {
	ListUsers(ctx context.Context, params *identitystore.ListUsersInput, optFns ...func(*identitystore.Options)) (*identitystore.ListUsersOutput, error)
	CreateUser(ctx context.Context, params *identitystore.CreateUserInput, optFns ...func(*identitystore.Options)) (*identitystore.CreateUserOutput, error)
	CreateGroupMembership(ctx context.Context, params *identitystore.CreateGroupMembershipInput, optFns ...func(*identitystore.Options)) (*identitystore.CreateGroupMembershipOutput, error)
}

// IdentityStoreDirectory implements Directory on AWS IAM Identity Center's
// identity store.
type IdentityStoreDirectory struct {
	api     IdentityStoreAPI
	storeID string
}

func NewIdentityStoreDirectory(api IdentityStoreAPI, storeID string) *IdentityStoreDirectory {
	return &IdentityStoreDirectory{api: api, storeID: storeID}
}

func (d *IdentityStoreDirectory) FindUserByUsername(ctx context.Context, username string) (string, error) {
	out, err := d.api.ListUsers(ctx, &identitystore.ListUsersInput{
		IdentityStoreId: aws.String(d.storeID),
		Filters: []idstypes.Filter{{
			AttributePath:  aws.String("UserName"),
			AttributeValue: aws.String(username),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to list users: %w", err)
	}
	if len(out.Users) == 0 {
		return "", nil
	}
	return aws.ToString(out.Users[0].UserId), nil
}

func (d *IdentityStoreDirectory) CreateUser(ctx context.Context, reg *models.Registration) (string, error) {
	out, err := d.api.CreateUser(ctx, &identitystore.CreateUserInput{
		IdentityStoreId: aws.String(d.storeID),
		UserName:        aws.String(reg.Username),
		DisplayName:     aws.String(reg.FullName()),
		Name: &idstypes.Name{
			GivenName:  aws.String(reg.FirstName),
			FamilyName: aws.String(reg.LastName),
			Formatted:  aws.String(reg.FullName()),
		},
		Emails: []idstypes.Email{{
			Value:   aws.String(reg.Email),
			Type:    aws.String("work"),
			Primary: true,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return aws.ToString(out.UserId), nil
}

func (d *IdentityStoreDirectory) AddUserToGroup(ctx context.Context, groupID, userID string) error {
	_, err := d.api.CreateGroupMembership(ctx, &identitystore.CreateGroupMembershipInput{
		IdentityStoreId: aws.String(d.storeID),
		GroupId:         aws.String(groupID),
		MemberId:        &idstypes.MemberIdMemberUserId{Value: userID},
	})
	if err != nil {
		return fmt.Errorf("failed to create group membership: %w", err)
	}
	return nil
}

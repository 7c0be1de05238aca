package approval_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/ccactl/internal/approval"
	"github.com/BerryBytes/ccactl/models"
	mock_ccactl "github.com/BerryBytes/ccactl/tests/mock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/identitystore"
	idstypes "github.com/aws/aws-sdk-go-v2/service/identitystore/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestFindUserByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockIdentityStoreAPI(ctrl)
	api.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *identitystore.ListUsersInput, _ ...func(*identitystore.Options)) (*identitystore.ListUsersOutput, error) {
			assert.Equal(t, "d-1234567890", aws.ToString(params.IdentityStoreId))
			assert.Len(t, params.Filters, 1)
			assert.Equal(t, "UserName", aws.ToString(params.Filters[0].AttributePath))
			assert.Equal(t, "jdoe", aws.ToString(params.Filters[0].AttributeValue))
			return &identitystore.ListUsersOutput{
				Users: []idstypes.User{{UserId: aws.String("user-id-1")}},
			}, nil
		})

	directory := approval.NewIdentityStoreDirectory(api, "d-1234567890")
	id, err := directory.FindUserByUsername(context.Background(), "jdoe")

	assert.NoError(t, err)
	assert.Equal(t, "user-id-1", id)
}

func TestFindUserByUsernameAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockIdentityStoreAPI(ctrl)
	api.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		Return(&identitystore.ListUsersOutput{}, nil)

	directory := approval.NewIdentityStoreDirectory(api, "d-1234567890")
	id, err := directory.FindUserByUsername(context.Background(), "nobody")

	assert.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := &models.Registration{
		Username:    "jdoe",
		Email:       "jdoe@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		SubmittedAt: time.Now().UTC(),
	}

	api := mock_ccactl.NewMockIdentityStoreAPI(ctrl)
	api.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *identitystore.CreateUserInput, _ ...func(*identitystore.Options)) (*identitystore.CreateUserOutput, error) {
			assert.Equal(t, "jdoe", aws.ToString(params.UserName))
			assert.Equal(t, "Jane Doe", aws.ToString(params.DisplayName))
			assert.Equal(t, "Jane", aws.ToString(params.Name.GivenName))
			assert.Equal(t, "Doe", aws.ToString(params.Name.FamilyName))
			assert.Len(t, params.Emails, 1)
			assert.Equal(t, "jdoe@example.com", aws.ToString(params.Emails[0].Value))
			assert.True(t, params.Emails[0].Primary)
			return &identitystore.CreateUserOutput{UserId: aws.String("user-id-1")}, nil
		})

	directory := approval.NewIdentityStoreDirectory(api, "d-1234567890")
	id, err := directory.CreateUser(context.Background(), reg)

	assert.NoError(t, err)
	assert.Equal(t, "user-id-1", id)
}

func TestAddUserToGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockIdentityStoreAPI(ctrl)
	api.EXPECT().
		CreateGroupMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *identitystore.CreateGroupMembershipInput, _ ...func(*identitystore.Options)) (*identitystore.CreateGroupMembershipOutput, error) {
			assert.Equal(t, "group-1234", aws.ToString(params.GroupId))
			member, ok := params.MemberId.(*idstypes.MemberIdMemberUserId)
			assert.True(t, ok)
			assert.Equal(t, "user-id-1", member.Value)
			return &identitystore.CreateGroupMembershipOutput{}, nil
		})

	directory := approval.NewIdentityStoreDirectory(api, "d-1234567890")
	err := directory.AddUserToGroup(context.Background(), "group-1234", "user-id-1")

	assert.NoError(t, err)
}

func TestAddUserToGroupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockIdentityStoreAPI(ctrl)
	api.EXPECT().
		CreateGroupMembership(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("access denied"))

	directory := approval.NewIdentityStoreDirectory(api, "d-1234567890")
	err := directory.AddUserToGroup(context.Background(), "group-1234", "user-id-1")

	assert.ErrorContains(t, err, "failed to create group membership")
}

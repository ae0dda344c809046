package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fittrackhq/fittrack/internal/common"
	sc "github.com/fittrackhq/fittrack/internal/server/config"
	"github.com/fittrackhq/fittrack/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return cfg
}

// stubPresign replaces the SDK seams for one test.
func stubPresign(t *testing.T, putURL, getURL string, putErr, getErr error) {
	t.Helper()

	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() { presignPutObject, presignGetObject = origPut, origGet })

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if putErr != nil {
			return nil, putErr
		}
		return &v4.PresignedHTTPRequest{URL: putURL + "/" + aws.ToString(in.Key)}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if getErr != nil {
			return nil, getErr
		}
		return &v4.PresignedHTTPRequest{URL: getURL + "/" + aws.ToString(in.Key)}, nil
	}
}

func TestUploadURL_KeyIsUserScoped(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t, "https://s3.test/put", "https://s3.test/get", nil, nil)

	s := NewAvatarService(db, &fakeRepoManager{u: &fakeUsersRepo{}}, testConfig())

	url, key, err := s.UploadURL(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "avatars/u1/"), "key %q", key)
	assert.Contains(t, url, key)
}

func TestUploadURL_PresignFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t, "", "", errors.New("endpoint down"), nil)

	s := NewAvatarService(db, &fakeRepoManager{u: &fakeUsersRepo{}}, testConfig())

	_, _, err := s.UploadURL(context.Background(), "u1")
	require.Error(t, err)
}

func TestConfirm_RecordsAvatar(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewAvatarService(db, &fakeRepoManager{u: &fakeUsersRepo{}}, testConfig())
	require.NoError(t, s.Confirm(context.Background(), "u1", "avatars/u1/abc"))
}

func TestConfirm_UnknownUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{setAvatarErr: common.ErrorNotFound}}
	s := NewAvatarService(db, rm, testConfig())

	err := s.Confirm(context.Background(), "ghost", "avatars/ghost/abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestViewURL_NoAvatarSet(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t, "https://s3.test/put", "https://s3.test/get", nil, nil)

	rm := &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{ID: "u1", Email: "a@b.com"}}}
	s := NewAvatarService(db, rm, testConfig())

	_, err := s.ViewURL(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestViewURL_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresign(t, "https://s3.test/put", "https://s3.test/get", nil, nil)

	key := "avatars/u1/pic"
	rm := &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{ID: "u1", Avatar: &key}}}
	s := NewAvatarService(db, rm, testConfig())

	url, err := s.ViewURL(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, url, key)
}

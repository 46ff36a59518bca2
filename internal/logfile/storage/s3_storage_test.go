package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(
	ctx context.Context,
	in *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *mockS3) GetObject(
	ctx context.Context,
	in *s3.GetObjectInput,
	_ ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *mockS3) DeleteObject(
	ctx context.Context,
	in *s3.DeleteObjectInput,
	_ ...func(*s3.Options),
) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func TestS3Storage_Put(t *testing.T) {
	ctx := context.Background()
	client := &mockS3{}
	store := newS3StorageWithClient(client, "logs")

	client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		rs, ok := in.Body.(io.ReadSeeker)
		if !ok {
			return false
		}
		_, _ = rs.Seek(0, io.SeekStart)
		body, _ := io.ReadAll(rs)
		return aws.ToString(in.Bucket) == "logs" &&
			aws.ToString(in.Key) == "abc.json" &&
			aws.ToInt64(in.ContentLength) == 2 &&
			string(body) == "{}"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	require.NoError(t, store.Put(ctx, "abc.json", []byte("{}")))
	client.AssertExpectations(t)
}

func TestS3Storage_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := &mockS3{}
		store := newS3StorageWithClient(client, "logs")

		client.On("GetObject", ctx, &s3.GetObjectInput{Bucket: aws.String("logs"), Key: aws.String("a.log")}).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString("content"))}, nil).Once()

		data, err := store.Get(ctx, "a.log")
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("Error_NoSuchKey", func(t *testing.T) {
		client := &mockS3{}
		store := newS3StorageWithClient(client, "logs")

		client.On("GetObject", ctx, mock.Anything).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Get(ctx, "a.log")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("Error_Upstream", func(t *testing.T) {
		client := &mockS3{}
		store := newS3StorageWithClient(client, "logs")
		boom := errors.New("timeout")

		client.On("GetObject", ctx, mock.Anything).Return(nil, boom).Once()

		_, err := store.Get(ctx, "a.log")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrObjectNotFound)
	})
}

func TestS3Storage_Delete(t *testing.T) {
	ctx := context.Background()
	client := &mockS3{}
	store := newS3StorageWithClient(client, "logs")

	client.On("DeleteObject", ctx, &s3.DeleteObjectInput{Bucket: aws.String("logs"), Key: aws.String("a.log")}).
		Return(&s3.DeleteObjectOutput{}, nil).Once()

	require.NoError(t, store.Delete(ctx, "a.log"))
	client.AssertExpectations(t)
}

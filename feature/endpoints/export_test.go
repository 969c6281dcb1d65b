package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"autoscan/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	svc, _ := setupService(t)
	mockClient := new(mocks.Client)
	svc.client = mockClient
	ctx := context.Background()

	_, err := svc.Process(ctx, "T10123456789", loc("PN12340V5"))
	require.NoError(t, err)
	_, err = svc.Process(ctx, "0000000001", loc("S42"))
	require.NoError(t, err)

	var uploaded Snapshot
	mockClient.On("BucketExists", mock.Anything, "inventory").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "inventory", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "inventory", "exports/endpoints-20260504T101112Z.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(data, &uploaded))
		}).
		Return(minio.UploadInfo{Size: 512}, nil)

	report, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "inventory", report.Bucket)
	assert.Equal(t, 2, report.Count)
	assert.EqualValues(t, 512, report.Size)

	require.Len(t, uploaded.Endpoints, 2)
	assert.Equal(t, "0000000001", uploaded.Endpoints[0].NetworkID)
	assert.Equal(t, "0123456789", uploaded.Endpoints[1].NetworkID)
	assert.Equal(t, "12N34", uploaded.Endpoints[1].Location)
	mockClient.AssertExpectations(t)
}

func TestExport_Errors(t *testing.T) {
	t.Run("No client", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Export(context.Background())
		assert.Error(t, err)
	})

	t.Run("Bucket check fails", func(t *testing.T) {
		svc, _ := setupService(t)
		mockClient := new(mocks.Client)
		svc.client = mockClient
		mockClient.On("BucketExists", mock.Anything, "inventory").Return(false, errors.New("access denied"))

		_, err := svc.Export(context.Background())
		assert.ErrorContains(t, err, "access denied")
		mockClient.AssertNotCalled(t, "PutObject")
	})

	t.Run("Upload fails", func(t *testing.T) {
		svc, _ := setupService(t)
		mockClient := new(mocks.Client)
		svc.client = mockClient
		mockClient.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection reset"))

		_, err := svc.Export(context.Background())
		assert.ErrorContains(t, err, "failed to upload snapshot")
	})
}

package s3

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUploadFile(t *testing.T) {
	t.Run("宛先フォルダ配下のキーでアップロードする", func(t *testing.T) {
		mock := &mockS3API{}
		uploader := manager.NewUploader(mock)
		localPath := writeTempFile(t, "x.txt", "hello")

		key, err := UploadFile(context.Background(), uploader, localPath, "my-bucket", "s3://my-bucket/dest")
		require.NoError(t, err)
		assert.Equal(t, "dest/x.txt", key)

		require.Len(t, mock.putInputs, 1)
		assert.Equal(t, "my-bucket", aws.ToString(mock.putInputs[0].Bucket))
		assert.Equal(t, "dest/x.txt", aws.ToString(mock.putInputs[0].Key))
	})

	t.Run("不正な宛先はリクエスト前にエラー", func(t *testing.T) {
		mock := &mockS3API{}
		uploader := manager.NewUploader(mock)

		_, err := UploadFile(context.Background(), uploader, "x.txt", "my-bucket", "dest")
		assert.ErrorIs(t, err, ErrInvalidDestination)
		assert.Empty(t, mock.putInputs)
	})

	t.Run("存在しないローカルファイルはエラーでもキーを返す", func(t *testing.T) {
		mock := &mockS3API{}
		uploader := manager.NewUploader(mock)

		key, err := UploadFile(context.Background(), uploader, "missing.txt", "my-bucket", "s3://my-bucket/dest")
		assert.Error(t, err)
		assert.Equal(t, "dest/missing.txt", key)
	})
}

func TestUploadFiles(t *testing.T) {
	t.Run("途中で失敗しても残りを続行する", func(t *testing.T) {
		mock := &mockS3API{}
		uploader := manager.NewUploader(mock)
		okPath := writeTempFile(t, "y.txt", "world")
		localPaths := []string{"missing.txt", okPath}

		results := UploadFiles(context.Background(), uploader, localPaths, "my-bucket", "s3://my-bucket/dest")
		require.Len(t, results, 2)

		// 1件目は失敗するが2件目はアップロードされる
		assert.Error(t, results[0].Err)
		assert.Equal(t, "dest/missing.txt", results[0].Key)
		assert.NoError(t, results[1].Err)
		assert.Equal(t, "dest/y.txt", results[1].Key)
		assert.Len(t, mock.putInputs, 1)
	})

	t.Run("結果は入力順で返す", func(t *testing.T) {
		mock := &mockS3API{}
		uploader := manager.NewUploader(mock)
		a := writeTempFile(t, "a.txt", "a")
		b := writeTempFile(t, "b.txt", "b")

		results := UploadFiles(context.Background(), uploader, []string{a, b}, "my-bucket", "s3://my-bucket/dest")
		require.Len(t, results, 2)
		assert.Equal(t, "dest/a.txt", results[0].Key)
		assert.Equal(t, "dest/b.txt", results[1].Key)
	})
}

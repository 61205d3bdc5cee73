package s3

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetObjectInfo(t *testing.T) {
	modified := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("メタデータがマッピングされる", func(t *testing.T) {
		mock := &mockS3API{
			headOutput: &s3.HeadObjectOutput{
				ContentLength: aws.Int64(2048),
				LastModified:  aws.Time(modified),
				ETag:          aws.String(`"abc123"`),
				ContentType:   aws.String("text/csv"),
			},
		}

		meta, err := GetObjectInfo(context.Background(), mock, "my-bucket", "s3://my-bucket/reports/2024.csv")
		require.NoError(t, err)
		assert.Equal(t, &ObjectMeta{
			Key:          "reports/2024.csv",
			Size:         2048,
			LastModified: modified,
			ETag:         "abc123",
			ContentType:  "text/csv",
		}, meta)
	})

	t.Run("存在しないオブジェクトは見つからないエラー", func(t *testing.T) {
		mock := &mockS3API{
			headErr: &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"},
		}

		meta, err := GetObjectInfo(context.Background(), mock, "my-bucket", "missing.csv")
		assert.Nil(t, meta)
		assert.ErrorContains(t, err, "見つかりません")
	})

	t.Run("その他のエラーは取得エラーとして返す", func(t *testing.T) {
		mock := &mockS3API{headErr: errors.New("connection refused")}

		meta, err := GetObjectInfo(context.Background(), mock, "my-bucket", "x.csv")
		assert.Nil(t, meta)
		assert.ErrorContains(t, err, "オブジェクト情報取得エラー")
	})
}

package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// GetObjectInfo はオブジェクトのメタデータを取得します
func GetObjectInfo(ctx context.Context, api HeadObjectAPI, bucketName, bucketPath string) (*ObjectMeta, error) {
	key := StripBucketURL(bucketPath, bucketName)

	out, err := api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, fmt.Errorf("オブジェクト %s が見つかりません: %w", key, err)
		}
		return nil, fmt.Errorf("オブジェクト情報取得エラー: %w", err)
	}

	return &ObjectMeta{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		LastModified: aws.ToTime(out.LastModified),
		ETag:         strings.Trim(aws.ToString(out.ETag), `"`),
		ContentType:  aws.ToString(out.ContentType),
	}, nil
}

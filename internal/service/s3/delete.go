package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DeleteObject はバケット内のオブジェクトを削除します
func DeleteObject(ctx context.Context, api DeleteObjectAPI, bucketName, bucketPath string) error {
	key := StripBucketURL(bucketPath, bucketName)

	_, err := api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("オブジェクト削除エラー: %w", err)
	}
	return nil
}

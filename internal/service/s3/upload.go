package s3

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadResult は1ファイル分のアップロード結果
type UploadResult struct {
	LocalPath string // アップロード元のローカルパス
	Key       string // バケット内に保存されたキー
	Err       error  // 失敗した場合のエラー
}

// UploadFile はローカルファイルをバケットへアップロードしてキーを返します
func UploadFile(ctx context.Context, uploader *manager.Uploader, localPath, bucketName, destFolder string) (string, error) {
	key, err := ResolveUploadKey(localPath, destFolder, bucketName)
	if err != nil {
		return "", err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return key, fmt.Errorf("ローカルファイルを開けません: %w", err)
	}
	defer f.Close()

	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return key, fmt.Errorf("アップロードエラー: %w", err)
	}
	return key, nil
}

// UploadFiles は複数ファイルを入力順に1つずつアップロードします
// 途中で失敗しても残りのファイルは続行し、結果を入力順で返す
func UploadFiles(ctx context.Context, uploader *manager.Uploader, localPaths []string, bucketName, destFolder string) []UploadResult {
	results := make([]UploadResult, 0, len(localPaths))
	for _, localPath := range localPaths {
		key, err := UploadFile(ctx, uploader, localPath, bucketName, destFolder)
		results = append(results, UploadResult{LocalPath: localPath, Key: key, Err: err})
	}
	return results
}

package s3

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ProgressFunc は転送済みバイト数と合計サイズを受け取る進捗コールバック
// 転送制御には影響しない
type ProgressFunc func(transferred, total int64)

// progressWriter は書き込み量をProgressFuncへ同期的に通知するWriter
type progressWriter struct {
	w           io.Writer
	total       int64
	transferred int64
	fn          ProgressFunc
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	pw.transferred += int64(n)
	if pw.fn != nil {
		pw.fn(pw.transferred, pw.total)
	}
	return n, err
}

// DownloadObject はオブジェクトをローカルディレクトリへダウンロードして保存先パスを返します
// progress はnil可
func DownloadObject(ctx context.Context, api DownloadAPI, bucketName, bucketPath, localDir string, progress ProgressFunc) (string, error) {
	key, localPath, err := ResolveDownloadTarget(bucketPath, localDir, bucketName)
	if err != nil {
		return "", err
	}

	// 進捗表示用に合計サイズを先に取得
	head, err := api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return localPath, fmt.Errorf("オブジェクト情報取得エラー: %w", err)
	}
	total := aws.ToInt64(head.ContentLength)

	out, err := api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return localPath, fmt.Errorf("ダウンロードエラー: %w", err)
	}
	defer out.Body.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return localPath, fmt.Errorf("保存先ファイル作成エラー: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(&progressWriter{w: f, total: total, fn: progress}, out.Body); err != nil {
		return localPath, fmt.Errorf("ファイル書き込みエラー: %w", err)
	}
	return localPath, nil
}

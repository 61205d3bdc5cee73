package s3

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidDestination は宛先パスの指定が不正な場合のエラー
var ErrInvalidDestination = errors.New("宛先の指定が不正です")

// BucketURL は s3://bucket/ 形式のバケットルートURLを返す
func BucketURL(bucketName string) string {
	return "s3://" + bucketName + "/"
}

// StripBucketURL はバケットルートURLプレフィックスを取り除いてキーに正規化する
// キーは先頭スラッシュを持たない
func StripBucketURL(bucketPath, bucketName string) string {
	key := strings.TrimPrefix(bucketPath, BucketURL(bucketName))
	return strings.TrimPrefix(key, "/")
}

// ResolveUploadKey はローカルファイルと宛先フォルダからアップロード先キーを決定する
//
// 宛先フォルダ省略時はローカルパス全体（スラッシュ区切りに正規化したもの）を
// そのままキーとして使う。宛先フォルダ指定時は s3://bucket/ で始まる必要があり、
// プレフィックスを除いたフォルダにファイル名（ベースネーム）を連結する。
func ResolveUploadKey(localPath, destFolder, bucketName string) (string, error) {
	if destFolder == "" {
		key := filepath.ToSlash(localPath)
		key = strings.TrimPrefix(key, "./")
		key = strings.TrimPrefix(key, "/")
		return key, nil
	}

	if !strings.HasPrefix(destFolder, BucketURL(bucketName)) {
		return "", fmt.Errorf("%w: 宛先フォルダは %s で始めてください", ErrInvalidDestination, BucketURL(bucketName))
	}

	folder := strings.Trim(StripBucketURL(destFolder, bucketName), "/")
	base := filepath.Base(localPath)
	if folder == "" {
		return base, nil
	}
	return folder + "/" + base, nil
}

// ResolveDownloadTarget はバケットパスと保存先ディレクトリから
// 正規化済みキーとローカル保存先パスを決定する
func ResolveDownloadTarget(bucketPath, localDir, bucketName string) (key, localPath string, err error) {
	if localDir == "" {
		return "", "", fmt.Errorf("%w: 保存先ディレクトリを指定してください", ErrInvalidDestination)
	}
	key = StripBucketURL(bucketPath, bucketName)
	localPath = strings.TrimSuffix(localDir, "/") + "/" + path.Base(key)
	return key, localPath, nil
}

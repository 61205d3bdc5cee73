package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context は接続情報を保持
type Context struct {
	Profile  string
	Region   string
	Endpoint string      // S3互換エンドポイント（空の場合はAWS標準）
	config   *aws.Config // AWS設定のキャッシュ（非公開）
}

package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client は認証情報からS3クライアントを生成
// エンドポイント指定時はS3互換ストレージ向けにパススタイルでアクセスする
func NewS3Client(ctx Context) (*s3.Client, error) {
	cfg, err := ctx.GetConfig()
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if url := ctx.EndpointURL(); url != "" {
			o.BaseEndpoint = aws.String(url)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Object はバケット内のオブジェクト1件の情報を格納する構造体
type Object struct {
	Key          string    `yaml:"key"`
	Size         int64     `yaml:"size"`
	LastModified time.Time `yaml:"last_modified"`
	ETag         string    `yaml:"etag"`
}

// ObjectMeta は単一オブジェクトのメタデータ
type ObjectMeta struct {
	Key          string    `yaml:"key"`
	Size         int64     `yaml:"size"`
	LastModified time.Time `yaml:"last_modified"`
	ETag         string    `yaml:"etag"`
	ContentType  string    `yaml:"content_type"`
}

// ListOptions は一覧取得時のオプション
type ListOptions struct {
	Prefix     string // キープレフィックスで絞り込み
	MaxKeys    int32  // 1回のリクエストで取得する最大件数（0は無指定）
	StartAfter string // このキーより後から一覧を開始
}

// ListObjectsAPI はオブジェクト一覧取得に必要なクライアント操作
type ListObjectsAPI interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// HeadObjectAPI はメタデータ取得に必要なクライアント操作
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// DeleteObjectAPI はオブジェクト削除に必要なクライアント操作
type DeleteObjectAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// DownloadAPI はダウンロードに必要なクライアント操作
type DownloadAPI interface {
	HeadObjectAPI
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

package s3

import (
	"context"

	"s3cli/internal/service/common"
)

// FindObjects はバケット全体から名前がパターンに一致するオブジェクトを探します
// 一覧の並び順（ストア定義、通常はキーの辞書順）をそのまま保持する
func FindObjects(ctx context.Context, client ListObjectsAPI, bucketName, pattern string) ([]Object, error) {
	objects, err := ListObjects(ctx, client, bucketName, ListOptions{})
	if err != nil {
		return nil, err
	}

	found := make([]Object, 0)
	for _, obj := range objects {
		if common.MatchesFilter(obj.Key, pattern) {
			found = append(found, obj)
		}
	}
	return found, nil
}

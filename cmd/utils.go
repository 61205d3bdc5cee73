package cmd

import (
	"fmt"

	"s3cli/internal/service/common"
	s3svc "s3cli/internal/service/s3"
)

// printObjects はオブジェクト一覧を指定形式で表示する共通処理
// extraInfo が false の場合はキーのみ、true の場合はサイズなどの詳細付きで表示する
func printObjects(objects []s3svc.Object, title string, extraInfo bool, output string) error {
	if output == "yaml" {
		if extraInfo {
			return common.PrintYaml(objects)
		}
		return common.PrintYaml(objectKeys(objects))
	}

	if extraInfo {
		if len(objects) == 0 {
			fmt.Println("オブジェクトが見つかりませんでした")
			return nil
		}
		columns := []common.TableColumn{
			{Header: "キー"},
			{Header: "サイズ"},
			{Header: "更新日時"},
			{Header: "ETag"},
		}
		data := make([][]string, 0, len(objects))
		for _, obj := range objects {
			data = append(data, []string{
				obj.Key,
				common.FormatBytes(obj.Size),
				common.FormatTime(obj.LastModified),
				obj.ETag,
			})
		}
		common.PrintTable(title, columns, data)
		fmt.Printf("\n合計: %d個のオブジェクト\n", len(objects))
		return nil
	}

	common.PrintSimpleList(common.ListOutput{
		Title:        title,
		Items:        objectKeys(objects),
		ResourceName: "オブジェクト",
		ShowCount:    true,
	})
	return nil
}

func objectKeys(objects []s3svc.Object) []string {
	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}
	return keys
}

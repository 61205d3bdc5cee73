package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	s3svc "s3cli/internal/service/s3"
)

var (
	findExtraInfo bool
	findOutput    string
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <ファイル名>",
	Short: "バケット内のオブジェクトを名前で検索するコマンド",
	Long: `バケット内のオブジェクトを名前で検索します。
ファイル名の部分一致（大文字小文字を区別）で検索し、
ワイルドカード（*）を含む場合はglobパターンとして扱います。

【使い方】
  ` + AppName + ` find report.csv             # 名前に report.csv を含むオブジェクトを検索
  ` + AppName + ` find "logs/*.gz"            # globパターンで検索
  ` + AppName + ` find report -x              # 詳細付きで表示

【例】
  ` + AppName + ` find .csv
  → キーに .csv を含む全オブジェクトを一覧表示します。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		objects, err := s3svc.FindObjects(context.Background(), s3Client, bucketName, args[0])
		if err != nil {
			return fmt.Errorf("❌ オブジェクト検索でエラー: %w", err)
		}

		title := fmt.Sprintf("'%s' に一致するオブジェクト一覧", args[0])
		return printObjects(objects, title, findExtraInfo, findOutput)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().BoolVarP(&findExtraInfo, "extra-info", "x", false, "サイズ・更新日時・ETagも表示")
	findCmd.Flags().StringVarP(&findOutput, "output", "o", "", "出力形式（yaml）")
}

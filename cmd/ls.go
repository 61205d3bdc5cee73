package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	s3svc "s3cli/internal/service/s3"
)

var (
	lsPrefix     string
	lsMaxKeys    int32
	lsStartAfter string
	lsExtraInfo  bool
	lsOutput     string
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "バケット内のオブジェクト一覧を表示するコマンド",
	Long: `バケット内のオブジェクト一覧を表示します。
1回のリクエストで取得できる範囲のみを表示し、続きを見る場合は
--start-after に最後のキーを指定してください。

【使い方】
  ` + AppName + ` ls                          # バケット内の全オブジェクトを表示
  ` + AppName + ` ls -p logs/                 # プレフィックスで絞り込み
  ` + AppName + ` ls -x                       # サイズ・更新日時・ETag付きで表示
  ` + AppName + ` ls --max-keys 100           # 最大100件まで取得
  ` + AppName + ` ls -o yaml                  # YAML形式で出力

【例】
  ` + AppName + ` ls -p reports/ -x
  → reports/ 配下のオブジェクトを詳細付きで一覧表示します。`,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		opts := s3svc.ListOptions{
			Prefix:     lsPrefix,
			MaxKeys:    lsMaxKeys,
			StartAfter: lsStartAfter,
		}
		objects, err := s3svc.ListObjects(context.Background(), s3Client, bucketName, opts)
		if err != nil {
			return fmt.Errorf("❌ オブジェクト一覧取得でエラー: %w", err)
		}

		title := fmt.Sprintf("バケット %s のオブジェクト一覧", bucketName)
		return printObjects(objects, title, lsExtraInfo, lsOutput)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringVarP(&lsPrefix, "prefix", "p", "", "キープレフィックスで絞り込み")
	lsCmd.Flags().Int32Var(&lsMaxKeys, "max-keys", 0, "取得する最大件数")
	lsCmd.Flags().StringVar(&lsStartAfter, "start-after", "", "このキーより後から一覧を開始")
	lsCmd.Flags().BoolVarP(&lsExtraInfo, "extra-info", "x", false, "サイズ・更新日時・ETagも表示")
	lsCmd.Flags().StringVarP(&lsOutput, "output", "o", "", "出力形式（yaml）")
}

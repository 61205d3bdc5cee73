package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"s3cli/internal/service/common"
	s3svc "s3cli/internal/service/s3"
)

var infoOutput string

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <バケットパス>",
	Short: "オブジェクトのメタデータを表示するコマンド",
	Long: `オブジェクトのメタデータ（サイズ・更新日時・ETag・Content-Type）を表示します。
バケットパスは s3://バケット名/キー 形式でもキーだけでも指定できます。

【使い方】
  ` + AppName + ` info reports/2024.csv
  ` + AppName + ` info s3://my-bucket/reports/2024.csv
  ` + AppName + ` info reports/2024.csv -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		meta, err := s3svc.GetObjectInfo(context.Background(), s3Client, bucketName, args[0])
		if err != nil {
			return fmt.Errorf("❌ オブジェクト情報取得でエラー: %w", err)
		}

		if infoOutput == "yaml" {
			return common.PrintYaml(meta)
		}

		fmt.Println("📋 オブジェクト情報:")
		fmt.Printf("  キー: %s\n", meta.Key)
		fmt.Printf("  サイズ: %s\n", common.FormatBytes(meta.Size))
		fmt.Printf("  更新日時: %s\n", common.FormatTime(meta.LastModified))
		fmt.Printf("  ETag: %s\n", meta.ETag)
		fmt.Printf("  Content-Type: %s\n", meta.ContentType)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", "", "出力形式（yaml）")
}

package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/spf13/cobra"

	s3svc "s3cli/internal/service/s3"
)

var uploadDest string

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <ローカルファイル>...",
	Short: "ローカルファイルをバケットへアップロードするコマンド",
	Long: `ローカルファイルをバケットへアップロードします。
複数ファイルを指定した場合は1つずつ順番にアップロードし、
途中で失敗しても残りのファイルは続行します。

-d を省略した場合はローカルパスがそのままキーになります。
-d には s3://バケット名/フォルダ 形式で保存先フォルダを指定します。

【使い方】
  ` + AppName + ` upload data.csv
  ` + AppName + ` upload data.csv -d s3://my-bucket/reports
  ` + AppName + ` upload a.txt b.txt c.txt -d s3://my-bucket/docs

【例】
  ` + AppName + ` upload data.csv -d s3://my-bucket/reports
  → reports/data.csv として保存されます。`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		uploader := manager.NewUploader(s3Client)
		results := s3svc.UploadFiles(context.Background(), uploader, args, bucketName, uploadDest)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Printf("❌ %s のアップロードに失敗: %v\n", r.LocalPath, r.Err)
			} else {
				fmt.Printf("✅ %s をアップロードしました: %s\n", r.LocalPath, r.Key)
			}
		}

		if failed > 0 {
			return fmt.Errorf("❌ %d個のファイルのアップロードに失敗しました", failed)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVarP(&uploadDest, "dest", "d", "", "保存先フォルダ（s3://バケット名/フォルダ 形式）")
}

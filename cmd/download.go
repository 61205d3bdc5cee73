package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	s3svc "s3cli/internal/service/s3"
)

var downloadLocalDir string

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <バケットパス>",
	Short: "オブジェクトをローカルへダウンロードするコマンド",
	Long: `オブジェクトをローカルディレクトリへダウンロードします。
バケットパスは s3://バケット名/キー 形式でもキーだけでも指定でき、
保存先のファイル名はキーの末尾部分になります。

【使い方】
  ` + AppName + ` download reports/2024.csv -l /tmp
  ` + AppName + ` download s3://my-bucket/reports/2024.csv -l ./data

【例】
  ` + AppName + ` download s3://my-bucket/a/b/report.csv -l /tmp
  → /tmp/report.csv として保存されます。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		progress := newDownloadProgress(args[0])
		localPath, err := s3svc.DownloadObject(context.Background(), s3Client, bucketName, args[0], downloadLocalDir, progress)
		if err != nil {
			return fmt.Errorf("❌ ダウンロードでエラー: %w", err)
		}

		fmt.Printf("\n✅ %s をダウンロードしました: %s\n", args[0], localPath)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringVarP(&downloadLocalDir, "local-dir", "l", "", "保存先のローカルディレクトリ")
	_ = downloadCmd.MarkFlagRequired("local-dir")
}

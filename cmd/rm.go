package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	s3svc "s3cli/internal/service/s3"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <バケットパス>",
	Short: "バケット内のオブジェクトを削除するコマンド",
	Long: `バケット内のオブジェクトを削除します。
バケットパスは s3://バケット名/キー 形式でもキーだけでも指定できます。

【使い方】
  ` + AppName + ` rm reports/2024.csv
  ` + AppName + ` rm s3://my-bucket/reports/2024.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		err := s3svc.DeleteObject(context.Background(), s3Client, bucketName, args[0])
		if err != nil {
			return fmt.Errorf("❌ オブジェクト削除でエラー: %w", err)
		}

		fmt.Printf("✅ %s を削除しました\n", args[0])
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(rmCmd)
}

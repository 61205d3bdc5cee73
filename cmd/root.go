package cmd

import (
	"errors"
	"fmt"
	"os"

	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"s3cli/internal/aws"
)

// AppName はコマンド名
const AppName = "s3cli"

var (
	bucketName string
	endpoint   string
	region     string
	profile    string

	s3Client *s3sdk.Client
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "S3互換オブジェクトストレージ操作CLI",
	Long: `S3互換オブジェクトストレージのオブジェクトを操作するCLIツールです。
一覧表示・検索・情報取得・アップロード・ダウンロード・削除ができます。

バケット名とエンドポイントは環境変数でも指定できます:
  S3_BUCKET_NAME        バケット名
  S3_ENDPOINT           S3互換エンドポイント
  AWS_ACCESS_KEY_ID     アクセスキー
  AWS_SECRET_ACCESS_KEY シークレットキー`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "B", "", "バケット名（環境変数 S3_BUCKET_NAME でも指定可）")
	RootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "E", "", "S3互換エンドポイント（環境変数 S3_ENDPOINT でも指定可）")
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "us-east-1", "リージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")

	// コマンド実行前に共通でバケット名解決とクライアント生成を行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとversionコマンドの場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if err := resolveBucketName(cmd); err != nil {
			return err
		}
		resolveEndpoint(cmd)

		awsCtx := aws.Context{
			Profile:  profile,
			Region:   region,
			Endpoint: endpoint,
		}
		client, err := aws.NewS3Client(awsCtx)
		if err != nil {
			cmd.SilenceUsage = true
			return fmt.Errorf("❌ S3クライアント生成でエラー: %w", err)
		}
		s3Client = client
		return nil
	}
}

// resolveBucketName はコマンドライン引数または環境変数からバケット名を決定する
func resolveBucketName(cmd *cobra.Command) error {
	if bucketName != "" {
		return nil
	}
	envBucket := os.Getenv("S3_BUCKET_NAME")
	if envBucket == "" {
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: バケット名が指定されていません。-Bオプションまたは S3_BUCKET_NAME 環境変数を指定してください")
	}
	bucketName = envBucket
	return nil
}

// resolveEndpoint は環境変数からエンドポイントを補完する（任意項目）
func resolveEndpoint(cmd *cobra.Command) {
	if endpoint != "" {
		return
	}
	envEndpoint := os.Getenv("S3_ENDPOINT")
	if envEndpoint != "" {
		cmd.Println("🔍 環境変数 S3_ENDPOINT の値 '" + envEndpoint + "' を使用します")
		endpoint = envEndpoint
	}
}

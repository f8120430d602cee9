package cmd

import (
	"cdnkit/internal/awsctx"
	"cdnkit/internal/service/cfn"
	s3svc "cdnkit/internal/service/s3"
	"fmt"

	"github.com/spf13/cobra"
)

// LogsCmd represents the logs command
var LogsCmd = &cobra.Command{
	Use:          "logs",
	Short:        "CloudFrontアクセスログ操作コマンド",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 親のPersistentPreRunEを実行（プロファイル確認とawsCtx設定）
		if err := RootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}

		var err error
		clients, err = awsctx.NewClients(&awsCtx)
		return err
	},
}

// logsCleanupCmd represents the cleanup command
var logsCleanupCmd = &cobra.Command{
	Use:   "cleanup [bucket|s3://bucket/prefix/]",
	Short: "古いアクセスログオブジェクトを削除するコマンド",
	Long: `ロギングバケットから指定日数より古いアクセスログオブジェクトを削除します。
バケットを直接指定するか、CloudFormationスタック名からロギングバケットを自動検出できます。

【使い方】
  ` + AppName + ` logs cleanup my-logging-bucket --days 90
  ` + AppName + ` logs cleanup s3://my-logging-bucket/cf-logs/ --days 30
  ` + AppName + ` logs cleanup -S my-stack --days 30 --pattern "*.gz"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		resolveStackName()
		days, _ := cmdCobra.Flags().GetInt("days")
		pattern, _ := cmdCobra.Flags().GetString("pattern")

		var bucket, prefix string
		var err error

		if len(args) > 0 {
			bucket, prefix, err = s3svc.ParseS3Url(args[0])
			if err != nil {
				return err
			}
		} else if stackName != "" {
			// スタックからロギングバケットを検出
			buckets, err := cfn.GetLogBucketsFromStack(clients.Cfn(), stackName)
			if err != nil {
				return fmt.Errorf("❌ CloudFormationスタックからロギングバケットの取得に失敗: %w", err)
			}
			if len(buckets) == 0 {
				return fmt.Errorf("❌ スタック '%s' にロギングバケットが見つかりませんでした", stackName)
			}
			bucket = buckets[0]
			fmt.Printf("✅ CloudFormationスタック '%s' からロギングバケット '%s' を検出しました\n", stackName, bucket)
		} else {
			return fmt.Errorf("❌ エラー: バケット名 またはスタック名 (-S) を指定してください")
		}

		return s3svc.CleanupLogObjects(clients.S3(), s3svc.CleanupOptions{
			Bucket:  bucket,
			Prefix:  prefix,
			Days:    days,
			Pattern: pattern,
		})
	},
}

func init() {
	RootCmd.AddCommand(LogsCmd)
	LogsCmd.AddCommand(logsCleanupCmd)

	logsCleanupCmd.Flags().Int("days", 90, "この日数より古いログを削除（デフォルト: 90）")
	logsCleanupCmd.Flags().String("pattern", "", "削除対象キーのglobパターン（例: \"*.gz\"）")
}

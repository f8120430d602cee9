package s3

import (
	"cdnkit/internal/service/common"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/schollz/progressbar/v3"
)

// deleteBatchSize はDeleteObjectsの1回あたりの上限
const deleteBatchSize = 1000

// CleanupOptions はアクセスログ削除のオプション
type CleanupOptions struct {
	Bucket  string // 必須: 対象バケット名
	Prefix  string // オプション: キープレフィックス
	Days    int    // 必須: この日数より古いオブジェクトを削除
	Pattern string // オプション: キーのglobパターン（例: "*.gz"）
}

// CleanupLogObjects は指定日数より古いアクセスログオブジェクトを削除します
func CleanupLogObjects(s3Client *s3.Client, opts CleanupOptions) error {
	cutoff := time.Now().AddDate(0, 0, -opts.Days)
	fmt.Printf("🔍 バケット '%s' から %s より古いログオブジェクトを検索中...\n",
		opts.Bucket, cutoff.Format("2006-01-02"))

	expired, err := listExpiredObjects(s3Client, opts, cutoff)
	if err != nil {
		return err
	}

	if len(expired) == 0 {
		fmt.Println("✅ 削除対象のログオブジェクトはありませんでした")
		return nil
	}

	fmt.Printf("🚀 %d件のログオブジェクトを削除します...\n", len(expired))
	bar := progressbar.NewOptions(len(expired),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("削除中..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	failed := 0
	for _, batch := range ChunkObjects(expired, deleteBatchSize) {
		output, err := s3Client.DeleteObjects(context.Background(), &s3.DeleteObjectsInput{
			Bucket: aws.String(opts.Bucket),
			Delete: &types.Delete{
				Objects: batch,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("オブジェクトの一括削除エラー: %w", err)
		}

		for _, deleteErr := range output.Errors {
			failed++
			fmt.Printf("\n  ⚠️  オブジェクト削除エラー: %s - %s\n",
				aws.ToString(deleteErr.Key), aws.ToString(deleteErr.Message))
		}
		bar.Add(len(batch))
	}
	bar.Finish()

	fmt.Printf("\n✅ 削除完了: 成功 %d件, 失敗 %d件\n", len(expired)-failed, failed)
	return nil
}

// listExpiredObjects は削除対象（cutoffより古く、パターンに一致する）の
// オブジェクト一覧をページネーションしながら収集します
func listExpiredObjects(s3Client *s3.Client, opts CleanupOptions, cutoff time.Time) ([]types.ObjectIdentifier, error) {
	var expired []types.ObjectIdentifier
	var continuationToken *string

	for {
		input := &s3.ListObjectsV2Input{
			Bucket:            aws.String(opts.Bucket),
			ContinuationToken: continuationToken,
		}
		if opts.Prefix != "" {
			input.Prefix = aws.String(opts.Prefix)
		}

		output, err := s3Client.ListObjectsV2(context.Background(), input)
		if err != nil {
			return nil, fmt.Errorf("バケット内のオブジェクト一覧取得エラー: %w", err)
		}

		for _, object := range output.Contents {
			if !IsExpiredObject(object, cutoff, opts.Pattern) {
				continue
			}
			expired = append(expired, types.ObjectIdentifier{Key: object.Key})
		}

		if !aws.ToBool(output.IsTruncated) {
			break
		}
		continuationToken = output.NextContinuationToken
	}

	return expired, nil
}

// IsExpiredObject はオブジェクトが削除対象かどうかを判定します
func IsExpiredObject(object types.Object, cutoff time.Time, pattern string) bool {
	if object.Key == nil || object.LastModified == nil {
		return false
	}
	if !object.LastModified.Before(cutoff) {
		return false
	}
	return common.MatchKeyPattern(*object.Key, pattern)
}

// ChunkObjects はオブジェクト一覧を指定サイズごとに分割します
func ChunkObjects(objects []types.ObjectIdentifier, size int) [][]types.ObjectIdentifier {
	if size <= 0 || len(objects) == 0 {
		return nil
	}
	var chunks [][]types.ObjectIdentifier
	for start := 0; start < len(objects); start += size {
		end := start + size
		if end > len(objects) {
			end = len(objects)
		}
		chunks = append(chunks, objects[start:end])
	}
	return chunks
}

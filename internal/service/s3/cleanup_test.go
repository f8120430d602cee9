package s3_test

import (
	"testing"
	"time"

	s3svc "cdnkit/internal/service/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestIsExpiredObject(t *testing.T) {
	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	old := cutoff.AddDate(0, 0, -10)
	recent := cutoff.AddDate(0, 0, 10)

	tests := []struct {
		name    string
		object  types.Object
		pattern string
		want    bool
	}{
		{
			name:   "cutoffより古い",
			object: types.Object{Key: aws.String("cf-logs/E1.2026-05-20.gz"), LastModified: &old},
			want:   true,
		},
		{
			name:   "cutoffより新しい",
			object: types.Object{Key: aws.String("cf-logs/E1.2026-06-10.gz"), LastModified: &recent},
			want:   false,
		},
		{
			name:    "パターンに一致する古いオブジェクト",
			object:  types.Object{Key: aws.String("cf-logs/E1.2026-05-20.gz"), LastModified: &old},
			pattern: "*.gz",
			want:    true,
		},
		{
			name:    "パターンに一致しない古いオブジェクト",
			object:  types.Object{Key: aws.String("cf-logs/index.html"), LastModified: &old},
			pattern: "*.gz",
			want:    false,
		},
		{
			name:   "LastModifiedなし",
			object: types.Object{Key: aws.String("cf-logs/E1.gz")},
			want:   false,
		},
		{
			name:   "Keyなし",
			object: types.Object{LastModified: &old},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s3svc.IsExpiredObject(tt.object, cutoff, tt.pattern); got != tt.want {
				t.Errorf("IsExpiredObject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunkObjects(t *testing.T) {
	objects := make([]types.ObjectIdentifier, 2500)
	for i := range objects {
		objects[i] = types.ObjectIdentifier{Key: aws.String("key")}
	}

	chunks := s3svc.ChunkObjects(objects, 1000)

	if len(chunks) != 3 {
		t.Fatalf("チャンク数 = %d, want 3", len(chunks))
	}
	if len(chunks[0]) != 1000 || len(chunks[1]) != 1000 || len(chunks[2]) != 500 {
		t.Errorf("チャンクサイズ = %d, %d, %d, want 1000, 1000, 500",
			len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}

	if got := s3svc.ChunkObjects(nil, 1000); got != nil {
		t.Errorf("空入力のチャンク = %v, want nil", got)
	}
	if got := s3svc.ChunkObjects(objects, 0); got != nil {
		t.Errorf("サイズ0のチャンク = %v, want nil", got)
	}
}

func TestParseS3Url(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{
			name:       "バケット名のみ",
			target:     "my-logging-bucket",
			wantBucket: "my-logging-bucket",
		},
		{
			name:       "s3形式（プレフィックスなし）",
			target:     "s3://my-logging-bucket",
			wantBucket: "my-logging-bucket",
		},
		{
			name:       "s3形式（プレフィックス付き）",
			target:     "s3://my-logging-bucket/cf-logs/",
			wantBucket: "my-logging-bucket",
			wantPrefix: "cf-logs/",
		},
		{
			name:       "プレフィックス末尾のスラッシュを補完",
			target:     "s3://my-logging-bucket/cf-logs",
			wantBucket: "my-logging-bucket",
			wantPrefix: "cf-logs/",
		},
		{
			name:    "バケット名にスラッシュを含む",
			target:  "my-bucket/cf-logs",
			wantErr: true,
		},
		{
			name:    "バケット名が空",
			target:  "s3:///cf-logs/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, err := s3svc.ParseS3Url(tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseS3Url() error = %v, wantErr %v", err, tt.wantErr)
			}
			if bucket != tt.wantBucket || prefix != tt.wantPrefix {
				t.Errorf("ParseS3Url() = (%q, %q), want (%q, %q)",
					bucket, prefix, tt.wantBucket, tt.wantPrefix)
			}
		})
	}
}

package s3

import (
	"fmt"
	"strings"
)

// ParseS3Url は s3://bucket/prefix/ 形式をバケット名とプレフィックスに分解します。
// s3:// で始まらない場合はバケット名のみの指定として扱います
func ParseS3Url(target string) (bucket, prefix string, err error) {
	if !strings.HasPrefix(target, "s3://") {
		if strings.Contains(target, "/") {
			return "", "", fmt.Errorf("⚠️ プレフィックス付きの指定は s3://バケット名/プレフィックス/ 形式にしてください")
		}
		return target, "", nil
	}

	noScheme := strings.TrimPrefix(target, "s3://")
	parts := strings.SplitN(noScheme, "/", 2)
	bucket = parts[0]
	if bucket == "" {
		return "", "", fmt.Errorf("⚠️ バケット名が空です")
	}
	if len(parts) > 1 {
		prefix = parts[1]
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return bucket, prefix, nil
}

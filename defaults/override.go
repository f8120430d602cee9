package defaults

import "reflect"

// OverrideProps はデフォルト設定に呼び出し側の設定を浅いマージで重ねます。
// 上書き側でゼロ値でないトップレベルフィールドは、デフォルト側の値を
// フィールドごと置き換えます。ネストした構造体は再帰的にマージされないため、
// 例えば DefaultBehavior を部分的に指定すると、指定しなかったサブフィールドの
// デフォルト値は失われます（互換性のため意図的にこの挙動を維持しています）。
func OverrideProps[T any](defaultProps *T, overrides *T) *T {
	merged := new(T)
	if defaultProps != nil {
		*merged = *defaultProps
	}
	if overrides == nil {
		return merged
	}

	dst := reflect.ValueOf(merged).Elem()
	src := reflect.ValueOf(overrides).Elem()
	for i := 0; i < src.NumField(); i++ {
		field := src.Field(i)
		if field.IsZero() {
			continue
		}
		dst.Field(i).Set(field)
	}
	return merged
}

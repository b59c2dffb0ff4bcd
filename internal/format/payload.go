package format

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/pretty"
)

var dumpOptions = &pretty.Options{Width: -1, Prefix: "", Indent: "  ", SortKeys: true}

// isEmptyPayload 对应 "未附带" 的情况：nil 或空字符串。
func isEmptyPayload(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// isRecord 判断 v 是否为可按 JSON 转储的结构化记录（map/slice/struct）。
func isRecord(v any) bool {
	if _, ok := v.(json.RawMessage); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// DumpPayload 将结构化记录转成 2 空格缩进、键有序的 JSON；
// 无法识别或无法编码的值走 fmt 兜底。
func DumpPayload(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if !isRecord(v) {
		return fmt.Sprint(v)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Debug("payload is not json encodable, using fallback")
		return fmt.Sprintf("%+v", v)
	}
	out := pretty.PrettyOptions(raw, dumpOptions)
	for len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	return string(out)
}

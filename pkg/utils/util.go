package utils

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/speps/go-hashids/v2"
)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

// ObjectKey 截图在存储中的路径：<groupId>/<hashid>.<ext>，format 为 image.DecodeConfig 返回的格式名
func ObjectKey(groupId, salt string, id int64, format string) string {
	ext := "." + strings.ToLower(format)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%s%s", groupId, GenHashID(salt, id), ext)
}

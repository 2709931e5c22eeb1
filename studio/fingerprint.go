package studio

import (
	"crypto/sha256"
	"encoding/hex"
)

// cacheKeyVersion 在 prompt 或 schema 变化时递增，使旧缓存自然失效
const cacheKeyVersion = "v1"

// Fingerprint 计算生成请求的缓存键：gen:<version>:<operation>:<sha256(operation, model, prompt)>
func Fingerprint(op Operation, model, prompt string) string {
	h := sha256.New()
	// NUL 分隔，避免字段拼接产生歧义
	h.Write([]byte(op))
	h.Write([]byte{0})
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return "gen:" + cacheKeyVersion + ":" + string(op) + ":" + hex.EncodeToString(h.Sum(nil))
}

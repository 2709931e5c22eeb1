// Package tokenizer 提供统一的 Token 计数接口，
// 支持 tiktoken 近似计数与 CJK 估算器，用于 prompt token 指标。
package tokenizer

// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

// Package config 提供 CreatorStudio 的配置管理功能。
//
// 配置按 默认值 → YAML 文件 → 环境变量（前缀 CREATORSTUDIO_）的顺序叠加，
// 最后由 Validate 校验。Gemini API Key 未配置时回落到 GEMINI_API_KEY 或 API_KEY。
package config

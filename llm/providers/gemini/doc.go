// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
# 概述

包 gemini 提供 Google Gemini 模型的 Provider 适配实现。该包直接对接
Gemini REST API（generativelanguage.googleapis.com），自行处理请求构建、
结构化输出 schema 转换与响应解析。

# 核心结构体

  - GeminiProvider：持有 http.Client 与 GeminiConfig；使用 x-goog-api-key 请求头认证
  - geminiRequest / geminiResponse：Gemini 原生请求/响应结构
  - geminiSchema：responseSchema（大写类型名 + propertyOrdering）

# 构造函数

  - NewGeminiProvider(cfg, logger)：创建实例，默认模型 gemini-2.5-flash

# 支持能力

  - generateContent（/v1beta/models/{model}:generateContent）
  - JSON 模式：generationConfig.responseMimeType + responseSchema
  - promptFeedback.blockReason 映射为 LLM_CONTENT_FILTERED
  - HealthCheck（/v1beta/models）
*/
package gemini
